package db

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedTables lists every table in child-to-parent order for clearing.
var seedTables = []string{
	"matches",
	"job_ad_skills",
	"job_application_skills",
	"job_ads",
	"job_applications",
	"pending_skills",
	"professionals",
	"companies",
	"skills",
	"categories",
	"cities",
}

var seedCatalog = map[string][]string{
	"Software Development": {"Go", "Python", "Java", "SQL", "Docker", "Kubernetes", "React"},
	"Data":                 {"Spark", "Airflow", "Pandas", "Tableau"},
	"Design":               {"Figma", "Illustrator", "UX Research"},
}

// SeedTestData resets the database and populates it with a demo marketplace.
//
// Behavior:
//  1. Clears every jobmatch table.
//  2. Creates cities, categories and their skills.
//  3. Creates 5 companies and 10 professionals, all with password "password".
//  4. Gives each company 3 ACTIVE job ads and each professional 2 applications,
//     keeping the denormalized counters in step.
//  5. Opens ~20 match requests in both directions; none are accepted.
//
// Runs on mysql, postgres and sqlite. The random source is fixed, so two runs
// produce the same shape.
func SeedTestData(db *gorm.DB, log *slog.Logger) error {
	r := rand.New(rand.NewSource(42))

	// --- Fresh start ---
	for _, table := range seedTables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Info("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// --- Catalog ---
	var cities []City
	for _, name := range []string{"Sofia", "Plovdiv", "Varna", "Burgas"} {
		cities = append(cities, City{Name: name})
	}
	if err := db.Create(&cities).Error; err != nil {
		return fmt.Errorf("failed to seed cities: %w", err)
	}

	var (
		categories []Category
		skills     = map[uuid.UUID][]Skill{}
	)
	for _, title := range []string{"Software Development", "Data", "Design"} {
		c := Category{Title: title, Description: title + " roles"}
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}
		categories = append(categories, c)

		for _, name := range seedCatalog[title] {
			s := Skill{CategoryID: c.ID, Name: name}
			if err := db.Create(&s).Error; err != nil {
				return fmt.Errorf("failed to seed skill: %w", err)
			}
			skills[c.ID] = append(skills[c.ID], s)
		}
	}
	log.Info("Seeded catalog", "cities", len(cities), "categories", len(categories))

	pickSkills := func(categoryID uuid.UUID, n int) []Skill {
		pool := skills[categoryID]
		perm := r.Perm(len(pool))
		out := make([]Skill, 0, n)
		for _, i := range perm[:min(n, len(pool))] {
			out = append(out, pool[i])
		}
		return out
	}

	// --- Companies and their ads ---
	var ads []JobAd
	for i := 1; i <= 5; i++ {
		company := Company{
			CityID:         cities[r.Intn(len(cities))].ID,
			Username:       fmt.Sprintf("company%d", i),
			PasswordHash:   string(hash),
			Name:           fmt.Sprintf("Company %d", i),
			Description:    "We are hiring",
			AddressLine:    fmt.Sprintf("%d Industrial Rd", i),
			Email:          fmt.Sprintf("jobs@company%d.example.com", i),
			PhoneNumber:    fmt.Sprintf("+359-2-555-%04d", i),
			ActiveJobCount: 3,
		}
		if err := db.Omit("City").Create(&company).Error; err != nil {
			return fmt.Errorf("failed to seed company: %w", err)
		}

		for j := 1; j <= 3; j++ {
			category := categories[r.Intn(len(categories))]
			low := float64(800 + 100*r.Intn(20))
			ad := JobAd{
				CompanyID:   company.ID,
				CategoryID:  category.ID,
				LocationID:  cities[r.Intn(len(cities))].ID,
				Title:       fmt.Sprintf("%s position %d", category.Title, j),
				Description: "Join the team",
				SkillLevel:  []SkillLevel{SkillLevelIntern, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert}[r.Intn(4)],
				MinSalary:   low,
				MaxSalary:   low + float64(500+100*r.Intn(10)),
				Status:      JobAdActive,
				Skills:      pickSkills(category.ID, 1+r.Intn(3)),
			}
			if err := db.Omit("Company", "Category", "Location", "Skills.*").Create(&ad).Error; err != nil {
				return fmt.Errorf("failed to seed job ad: %w", err)
			}
			ads = append(ads, ad)
		}
	}
	log.Info("Seeded companies", "job_ads", len(ads))

	// --- Professionals and their applications ---
	var apps []JobApplication
	for i := 1; i <= 10; i++ {
		pro := Professional{
			CityID:                 cities[r.Intn(len(cities))].ID,
			Username:               fmt.Sprintf("pro%d", i),
			PasswordHash:           string(hash),
			FirstName:              fmt.Sprintf("First%d", i),
			LastName:               fmt.Sprintf("Last%d", i),
			Description:            "Looking for the next challenge",
			Email:                  fmt.Sprintf("pro%d@example.com", i),
			Status:                 ProfessionalActive,
			ActiveApplicationCount: 2,
			HasPrivateMatches:      i%4 == 0,
		}
		if err := db.Omit("City", "JobApplications").Create(&pro).Error; err != nil {
			return fmt.Errorf("failed to seed professional: %w", err)
		}

		for j := 1; j <= 2; j++ {
			category := categories[r.Intn(len(categories))]
			low := float64(900 + 100*r.Intn(20))
			high := low + 600
			app := JobApplication{
				ProfessionalID: pro.ID,
				CategoryID:     category.ID,
				CityID:         pro.CityID,
				Name:           fmt.Sprintf("%s profile", category.Title),
				Description:    "Experienced and curious",
				MinSalary:      &low,
				MaxSalary:      &high,
				IsMain:         j == 1,
				Status:         JobApplicationActive,
				Skills:         pickSkills(category.ID, 1+r.Intn(4)),
			}
			if err := db.Omit("Professional", "Category", "City", "Skills.*").Create(&app).Error; err != nil {
				return fmt.Errorf("failed to seed job application: %w", err)
			}
			apps = append(apps, app)
		}
	}
	log.Info("Seeded professionals", "job_applications", len(apps))

	// --- Match requests ---
	created := 0
	for k := 0; k < 25; k++ {
		status := MatchRequestedByJobApp
		if k%2 == 0 {
			status = MatchRequestedByJobAd
		}
		m := Match{
			JobAdID:          ads[r.Intn(len(ads))].ID,
			JobApplicationID: apps[r.Intn(len(apps))].ID,
			Status:           status,
		}
		// the same pair may be drawn twice
		res := db.Omit("JobAd", "JobApplication").Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
		if res.Error != nil {
			return fmt.Errorf("failed to seed match: %w", res.Error)
		}
		created += int(res.RowsAffected)
	}
	log.Info("Seeded match requests", "matches", created)

	return nil
}
