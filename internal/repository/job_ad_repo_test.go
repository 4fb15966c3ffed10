package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/repository"
	"github.com/oggyb/jobmatch/internal/testutil"
	"github.com/oggyb/jobmatch/internal/utils/pagination"
)

func setupJobAds(t *testing.T) (*repository.JobAdRepository, *testutil.Dataset) {
	t.Helper()
	gdb := testutil.NewDB(t)
	return repository.NewJobAdRepository(gdb), testutil.Seed(t, gdb)
}

func titles(ads []db.JobAd) []string {
	out := make([]string, len(ads))
	for i, a := range ads {
		out[i] = a.Title
	}
	return out
}

func ptr[T any](v T) *T { return &v }

var firstPage = pagination.Filter{Limit: pagination.MaxLimit}

func TestSearch_DefaultsToActive(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ds.JobAd(t, "Backend Engineer", 1000, 2000)
	archived := ds.JobAd(t, "Old Posting", 1000, 2000)
	require.NoError(t, ds.DB.Model(&archived).Update("status", db.JobAdArchived).Error)

	ads, err := repo.Search(ctx, firstPage, repository.JobAdSearch{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Engineer"}, titles(ads))

	ads, err = repo.Search(ctx, firstPage, repository.JobAdSearch{Status: db.JobAdArchived})
	require.NoError(t, err)
	assert.Equal(t, []string{"Old Posting"}, titles(ads))
}

func TestSearch_EqualityAndTitle(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ds.JobAd(t, "Senior Go Developer", 1000, 2000)
	plovdiv := ds.JobAd(t, "Go Intern", 500, 800)
	require.NoError(t, ds.DB.Model(&plovdiv).Update("location_id", ds.Plovdiv.ID).Error)

	other := ds.NewCompany(t, "globex")
	foreign := ds.JobAd(t, "Data Engineer", 1000, 2000)
	require.NoError(t, ds.DB.Model(&foreign).Update("company_id", other.ID).Error)

	ads, err := repo.Search(ctx, firstPage, repository.JobAdSearch{Title: "go DEV"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Senior Go Developer"}, titles(ads))

	ads, err = repo.Search(ctx, firstPage, repository.JobAdSearch{LocationID: &ds.Plovdiv.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Intern"}, titles(ads))

	ads, err = repo.Search(ctx, firstPage, repository.JobAdSearch{CompanyID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Engineer"}, titles(ads))
}

func TestSearch_SalaryOverlap(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ds.JobAd(t, "A", 1000, 2000)

	cases := []struct {
		name      string
		min, max  *float64
		threshold float64
		want      int
	}{
		{"no band", nil, nil, 0, 1},
		{"inside", ptr(1200.0), ptr(1500.0), 0, 1},
		{"wanted min above ad max", ptr(2100.0), nil, 0, 0},
		{"threshold reaches wanted min", ptr(2100.0), nil, 100, 1},
		{"wanted max below ad min", nil, ptr(900.0), 0, 0},
		{"threshold reaches wanted max", nil, ptr(900.0), 100, 1},
		{"touching edges", ptr(2000.0), ptr(3000.0), 0, 1},
		{"disjoint both sides", ptr(2500.0), ptr(3000.0), 400, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ads, err := repo.Search(ctx, firstPage, repository.JobAdSearch{
				MinSalary:       tc.min,
				MaxSalary:       tc.max,
				SalaryThreshold: tc.threshold,
			})
			require.NoError(t, err)
			assert.Len(t, ads, tc.want)
		})
	}
}

func TestSearch_SalaryThresholdNeverShrinks(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	bands := [][2]float64{{500, 800}, {1000, 2000}, {1900, 2600}, {3000, 4000}, {4500, 6000}}
	for i, b := range bands {
		ds.JobAd(t, fmt.Sprintf("ad-%d", i), b[0], b[1])
	}

	prev := -1
	for _, threshold := range []float64{0, 50, 200, 500, 1000, 5000} {
		ads, err := repo.Search(ctx, firstPage, repository.JobAdSearch{
			MinSalary:       ptr(2200.0),
			MaxSalary:       ptr(2800.0),
			SalaryThreshold: threshold,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(ads), prev, "threshold %v", threshold)
		prev = len(ads)
	}
	assert.Equal(t, len(bands), prev)
}

func TestSearch_SkillThreshold(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ds.JobAd(t, "all", 1000, 2000, "Go", "SQL", "Docker")
	ds.JobAd(t, "two", 1000, 2000, "Go", "SQL")
	ds.JobAd(t, "one", 1000, 2000, "Docker")
	ds.JobAd(t, "none", 1000, 2000)

	wanted := []string{"go", "Sql", "DOCKER"}
	cases := []struct {
		threshold int
		want      []string
	}{
		{0, []string{"all"}},
		{1, []string{"all", "two"}},
		{2, []string{"all", "one", "two"}},
		{3, []string{"all", "none", "one", "two"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("threshold=%d", tc.threshold), func(t *testing.T) {
			ads, err := repo.Search(ctx, firstPage, repository.JobAdSearch{
				Skills:          wanted,
				SkillsThreshold: tc.threshold,
			})
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, titles(ads))
		})
	}
}

func TestSearch_OrderingAndPagination(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ids := make([]any, 25)
	for i := range ids {
		ids[i] = ds.JobAd(t, fmt.Sprintf("ad-%02d", i), 1000, 2000).ID
	}
	ds.Stagger(t, "job_ads", ids...)

	page, err := repo.Search(ctx, pagination.Filter{Offset: 0, Limit: 10}, repository.JobAdSearch{})
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, "ad-24", page[0].Title)

	page, err = repo.Search(ctx, pagination.Filter{Offset: 20, Limit: 10}, repository.JobAdSearch{})
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, "ad-00", page[4].Title)

	page, err = repo.Search(ctx, pagination.Filter{Limit: 3}, repository.JobAdSearch{
		OrderBy: repository.OrderByCreatedAt,
		Order:   repository.OrderAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ad-00", "ad-01", "ad-02"}, titles(page))
}

func TestJobAdCreate(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ad, err := repo.Create(ctx, repository.JobAdCreate{
		CompanyID:   ds.Company.ID,
		CategoryID:  ds.Category.ID,
		LocationID:  ds.Sofia.ID,
		Title:       "Platform Engineer",
		Description: "Run the platform",
		SkillLevel:  db.SkillLevelAdvanced,
		MinSalary:   3000,
		MaxSalary:   4000,
		Skills:      []string{"Go", "Kubernetes"},
	})
	require.NoError(t, err)
	assert.Equal(t, db.JobAdActive, ad.Status)
	assert.Equal(t, ds.Company.Name, ad.Company.Name)
	assert.Len(t, ad.Skills, 2)

	company := testutil.Reload[db.Company](t, ds.DB, ds.Company.ID)
	assert.Equal(t, 1, company.ActiveJobCount)
}

func TestJobAdCreate_UnknownSkillRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	_, err := repo.Create(ctx, repository.JobAdCreate{
		CompanyID:  ds.Company.ID,
		CategoryID: ds.Category.ID,
		LocationID: ds.Sofia.ID,
		Title:      "Ghost",
		SkillLevel: db.SkillLevelIntern,
		Skills:     []string{"Go", "COBOL"},
	})
	require.Error(t, err)
	assert.True(t, svcErr.IsNotFound(err))

	var count int64
	require.NoError(t, ds.DB.Model(&db.JobAd{}).Count(&count).Error)
	assert.Zero(t, count)
	company := testutil.Reload[db.Company](t, ds.DB, ds.Company.ID)
	assert.Zero(t, company.ActiveJobCount)
}

func TestJobAdUpdate(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	created := ds.JobAd(t, "Backend", 1000, 2000)
	ds.Stagger(t, "job_ads", created.ID)
	before, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	same, err := repo.Update(ctx, created.ID, repository.JobAdUpdate{})
	require.NoError(t, err)
	assert.Equal(t, before.UpdatedAt, same.UpdatedAt)
	assert.Equal(t, before.Title, same.Title)

	after, err := repo.Update(ctx, created.ID, repository.JobAdUpdate{Title: ptr("Backend Lead"), MaxSalary: ptr(2500.0)})
	require.NoError(t, err)
	assert.Equal(t, "Backend Lead", after.Title)
	assert.Equal(t, 2500.0, after.MaxSalary)
	assert.Equal(t, 1000.0, after.MinSalary)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestAddSkillRequirement(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupJobAds(t)

	ad := ds.JobAd(t, "Backend", 1000, 2000, "Go")

	require.NoError(t, repo.AddSkillRequirement(ctx, ad.ID, ds.Skills["SQL"].ID))

	err := repo.AddSkillRequirement(ctx, ad.ID, ds.Skills["Go"].ID)
	assert.True(t, svcErr.IsConflict(err))

	got, err := repo.GetByID(ctx, ad.ID)
	require.NoError(t, err)
	assert.Len(t, got.Skills, 2)
}

func TestJobAdGetByID_NotFound(t *testing.T) {
	repo, _ := setupJobAds(t)
	id := uuid.New()

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)

	var nf *svcErr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "job ad", nf.Kind)
	assert.Equal(t, id.String(), nf.Key)
	assert.Contains(t, err.Error(), id.String())
}

func TestRequiredSkillMatches(t *testing.T) {
	assert.Equal(t, 3, repository.RequiredSkillMatches(3, 0))
	assert.Equal(t, 1, repository.RequiredSkillMatches(3, 2))
	assert.Equal(t, 0, repository.RequiredSkillMatches(3, 3))
	assert.Equal(t, 0, repository.RequiredSkillMatches(2, 5))
}
