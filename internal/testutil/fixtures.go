package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/jobmatch/internal/db"
)

// Dataset is the deterministic baseline most tests start from.
//
//   - Cities: Sofia, Plovdiv
//   - Category: Software Development
//   - Skills: Go, SQL, Docker, Kubernetes
//   - Company: acme (in Sofia)
//   - Professional: jdoe (in Sofia, ACTIVE, no applications)
type Dataset struct {
	DB *gorm.DB

	Sofia    db.City
	Plovdiv  db.City
	Category db.Category
	Skills   map[string]db.Skill

	Company      db.Company
	Professional db.Professional
}

var skillNames = []string{"Go", "SQL", "Docker", "Kubernetes"}

// Seed inserts the baseline dataset.
func Seed(t *testing.T, gdb *gorm.DB) *Dataset {
	t.Helper()

	d := &Dataset{DB: gdb, Skills: map[string]db.Skill{}}

	d.Sofia = db.City{Name: "Sofia"}
	d.Plovdiv = db.City{Name: "Plovdiv"}
	require.NoError(t, gdb.Create(&d.Sofia).Error)
	require.NoError(t, gdb.Create(&d.Plovdiv).Error)

	d.Category = db.Category{Title: "Software Development", Description: "Building software"}
	require.NoError(t, gdb.Create(&d.Category).Error)

	for _, name := range skillNames {
		s := db.Skill{CategoryID: d.Category.ID, Name: name}
		require.NoError(t, gdb.Create(&s).Error)
		d.Skills[name] = s
	}

	d.Company = d.NewCompany(t, "acme")
	d.Professional = d.NewProfessional(t, "jdoe")
	return d
}

func (d *Dataset) NewCompany(t *testing.T, username string) db.Company {
	t.Helper()

	c := db.Company{
		CityID:       d.Sofia.ID,
		Username:     username,
		PasswordHash: "x",
		Name:         username + " Ltd",
		Description:  "We build things",
		AddressLine:  "1 Main St",
		Email:        username + "@example.com",
		PhoneNumber:  fmt.Sprintf("+359-%s", username),
	}
	require.NoError(t, d.DB.Omit("City").Create(&c).Error)
	return c
}

func (d *Dataset) NewProfessional(t *testing.T, username string) db.Professional {
	t.Helper()

	p := db.Professional{
		CityID:       d.Sofia.ID,
		Username:     username,
		PasswordHash: "x",
		FirstName:    "John",
		LastName:     "Doe",
		Description:  "Backend developer",
		Email:        username + "@example.com",
		Status:       db.ProfessionalActive,
	}
	require.NoError(t, d.DB.Omit("City", "JobApplications").Create(&p).Error)
	return p
}

// SkillSet resolves names against the seeded skills.
func (d *Dataset) SkillSet(t *testing.T, names ...string) []db.Skill {
	t.Helper()

	out := make([]db.Skill, 0, len(names))
	for _, n := range names {
		s, ok := d.Skills[n]
		require.Truef(t, ok, "unknown skill %q", n)
		out = append(out, s)
	}
	return out
}

// JobAd inserts an ACTIVE ad for the dataset company located in Sofia.
func (d *Dataset) JobAd(t *testing.T, title string, minSalary, maxSalary float64, skills ...string) db.JobAd {
	t.Helper()

	ad := db.JobAd{
		CompanyID:   d.Company.ID,
		CategoryID:  d.Category.ID,
		LocationID:  d.Sofia.ID,
		Title:       title,
		Description: title + " description",
		SkillLevel:  db.SkillLevelIntermediate,
		MinSalary:   minSalary,
		MaxSalary:   maxSalary,
		Status:      db.JobAdActive,
		Skills:      d.SkillSet(t, skills...),
	}
	require.NoError(t, d.DB.Omit("Skills.*").Create(&ad).Error)
	return ad
}

// JobApplication inserts an application owned by the dataset professional.
func (d *Dataset) JobApplication(t *testing.T, name string, status db.JobApplicationStatus, skills ...string) db.JobApplication {
	t.Helper()

	app := db.JobApplication{
		ProfessionalID: d.Professional.ID,
		CategoryID:     d.Category.ID,
		CityID:         d.Sofia.ID,
		Name:           name,
		Description:    name + " description",
		Status:         status,
		Skills:         d.SkillSet(t, skills...),
	}
	require.NoError(t, d.DB.Omit("Skills.*").Create(&app).Error)
	return app
}

// Stagger spreads the created_at of rows in table so ordering is deterministic:
// the first id gets the oldest timestamp.
func (d *Dataset) Stagger(t *testing.T, table string, ids ...any) {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range ids {
		ts := base.Add(time.Duration(i) * time.Minute)
		err := d.DB.Table(table).Where("id = ?", id).
			UpdateColumns(map[string]any{"created_at": ts, "updated_at": ts}).Error
		require.NoError(t, err)
	}
}

// Reload re-reads a row by primary key.
func Reload[T any](t *testing.T, gdb *gorm.DB, id any) T {
	t.Helper()

	var out T
	require.NoError(t, gdb.Where("id = ?", id).First(&out).Error)
	return out
}
