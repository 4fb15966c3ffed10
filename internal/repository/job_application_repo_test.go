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

func setupApplications(t *testing.T) (*repository.JobApplicationRepository, *testutil.Dataset) {
	t.Helper()
	gdb := testutil.NewDB(t)
	return repository.NewJobApplicationRepository(gdb), testutil.Seed(t, gdb)
}

func names(apps []db.JobApplication) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.Name
	}
	return out
}

func TestGetAll_StatusAndSkills(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupApplications(t)

	ds.JobApplication(t, "go-sql", db.JobApplicationActive, "Go", "SQL")
	ds.JobApplication(t, "docker", db.JobApplicationActive, "Docker")
	ds.JobApplication(t, "bare", db.JobApplicationActive)
	ds.JobApplication(t, "private-go", db.JobApplicationPrivate, "Go")

	apps, err := repo.GetAll(ctx, firstPage, repository.JobApplicationSearch{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go-sql", "docker", "bare"}, names(apps))

	// any overlap is enough, and an application matching twice appears once
	apps, err = repo.GetAll(ctx, firstPage, repository.JobApplicationSearch{Skills: []string{"Go", "SQL", "Docker"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go-sql", "docker"}, names(apps))

	apps, err = repo.GetAll(ctx, firstPage, repository.JobApplicationSearch{Status: db.JobApplicationPrivate, Skills: []string{"Go"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"private-go"}, names(apps))
}

func TestGetAll_Pagination(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupApplications(t)

	ids := make([]any, 25)
	for i := range ids {
		ids[i] = ds.JobApplication(t, fmt.Sprintf("app-%02d", i), db.JobApplicationActive).ID
	}
	ds.Stagger(t, "job_applications", ids...)

	page, err := repo.GetAll(ctx, pagination.Filter{Offset: 0, Limit: 10}, repository.JobApplicationSearch{})
	require.NoError(t, err)
	assert.Len(t, page, 10)
	assert.Equal(t, "app-24", page[0].Name)

	page, err = repo.GetAll(ctx, pagination.Filter{Offset: 20, Limit: 10}, repository.JobApplicationSearch{})
	require.NoError(t, err)
	assert.Len(t, page, 5)

	page, err = repo.GetAll(ctx, pagination.Filter{Limit: 2}, repository.JobApplicationSearch{Order: repository.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"app-00", "app-01"}, names(page))
}

func TestJobApplicationCreate(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupApplications(t)

	app, err := repo.Create(ctx, repository.JobApplicationCreate{
		ProfessionalID: ds.Professional.ID,
		CategoryID:     ds.Category.ID,
		CityID:         ds.Sofia.ID,
		Name:           "Backend",
		Description:    "Go services",
		MinSalary:      ptr(1500.0),
		IsMain:         true,
		Skills:         []string{"Go", "SQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, db.JobApplicationActive, app.Status)
	assert.Len(t, app.Skills, 2)
	assert.Nil(t, app.MaxSalary)
	assert.Equal(t, 1, testutil.Reload[db.Professional](t, ds.DB, ds.Professional.ID).ActiveApplicationCount)
}

func TestJobApplicationCreate_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupApplications(t)

	_, err := repo.Create(ctx, repository.JobApplicationCreate{
		ProfessionalID: ds.Professional.ID,
		CategoryID:     ds.Category.ID,
		CityID:         ds.Sofia.ID,
		Name:           "Backend",
		Skills:         []string{"Go", "Fortran"},
	})
	require.True(t, svcErr.IsNotFound(err))

	var count int64
	require.NoError(t, ds.DB.Model(&db.JobApplication{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Zero(t, testutil.Reload[db.Professional](t, ds.DB, ds.Professional.ID).ActiveApplicationCount)

	_, err = repo.Create(ctx, repository.JobApplicationCreate{
		ProfessionalID: uuid.New(),
		CategoryID:     ds.Category.ID,
		CityID:         ds.Sofia.ID,
		Name:           "Orphan",
	})
	assert.True(t, svcErr.IsNotFound(err))
}

func TestJobApplicationUpdate(t *testing.T) {
	ctx := context.Background()
	repo, ds := setupApplications(t)

	created := ds.JobApplication(t, "Backend", db.JobApplicationActive, "Go")
	ds.Stagger(t, "job_applications", created.ID)
	before, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	t.Run("empty update is a no-op", func(t *testing.T) {
		got, err := repo.Update(ctx, created.ID, repository.JobApplicationUpdate{})
		require.NoError(t, err)
		assert.Equal(t, before.UpdatedAt, got.UpdatedAt)
		assert.Equal(t, before.Name, got.Name)
	})

	t.Run("skills alone touch updated_at but not the skill set", func(t *testing.T) {
		got, err := repo.Update(ctx, created.ID, repository.JobApplicationUpdate{Skills: []string{"Docker"}})
		require.NoError(t, err)
		assert.True(t, got.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.Name, got.Name)
		require.Len(t, got.Skills, 1)
		assert.Equal(t, "Go", got.Skills[0].Name)
	})

	t.Run("fields overwrite", func(t *testing.T) {
		status := db.JobApplicationHidden
		got, err := repo.Update(ctx, created.ID, repository.JobApplicationUpdate{
			Name:      ptr("Backend Lead"),
			MaxSalary: ptr(3000.0),
			Status:    &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "Backend Lead", got.Name)
		assert.Equal(t, db.JobApplicationHidden, got.Status)
		require.NotNil(t, got.MaxSalary)
		assert.Equal(t, 3000.0, *got.MaxSalary)
		assert.Equal(t, before.Description, got.Description)
		assert.True(t, got.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Update(ctx, uuid.New(), repository.JobApplicationUpdate{Name: ptr("x")})
		assert.True(t, svcErr.IsNotFound(err))
	})
}
