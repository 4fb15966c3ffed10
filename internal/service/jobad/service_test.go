package jobad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/db"
	"github.com/oggyb/jobmatch/internal/repository"
	"github.com/oggyb/jobmatch/internal/service/jobad"
	"github.com/oggyb/jobmatch/internal/testutil"
)

// setupService spins up an in-memory SQLite DB with the baseline dataset,
// starts a miniredis, and wires both into a JobAd service.
func setupService(t *testing.T) (*jobad.Service, *testutil.Dataset, *miniredis.Miniredis) {
	t.Helper()
	appCtx, mr := testutil.NewAppContext(t)
	ds := testutil.Seed(t, appCtx.DB)
	return jobad.NewJobAdService(appCtx), ds, mr
}

func ptr[T any](v T) *T { return &v }

func titles(list *jobmatch.JobAdList) []string {
	out := make([]string, len(list.JobAds))
	for i, a := range list.JobAds {
		out[i] = a.Title
	}
	return out
}

func TestSearchJobAds(t *testing.T) {
	ctx := context.Background()
	svc, ds, _ := setupService(t)

	ds.JobAd(t, "Go Backend", 1000, 2000, "Go", "SQL")
	ds.JobAd(t, "Ops", 3000, 4000, "Docker")

	list, err := svc.SearchJobAds(ctx, &jobmatch.SearchJobAdsRequest{
		Skills:          []string{"go", "sql", "docker"},
		SkillsThreshold: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Backend"}, titles(list))
	require.Len(t, list.JobAds[0].Skills, 2)
	assert.Equal(t, "Sofia", list.JobAds[0].Location)
	assert.Equal(t, ds.Company.Name, list.JobAds[0].CompanyName)

	list, err = svc.SearchJobAds(ctx, &jobmatch.SearchJobAdsRequest{
		MinSalary:       ptr(2200.0),
		SalaryThreshold: 300,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Go Backend", "Ops"}, titles(list))

	list, err = svc.SearchJobAds(ctx, &jobmatch.SearchJobAdsRequest{Title: "ops", CompanyId: ds.Company.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ops"}, titles(list))
}

func TestSearchJobAds_Validation(t *testing.T) {
	svc, _, _ := setupService(t)

	cases := map[string]*jobmatch.SearchJobAdsRequest{
		"threshold above skill count": {Skills: []string{"Go"}, SkillsThreshold: 2},
		"negative skills threshold":   {SkillsThreshold: -1},
		"negative salary threshold":   {SalaryThreshold: -5},
		"inverted band":               {MinSalary: ptr(3000.0), MaxSalary: ptr(1000.0)},
		"unknown status":              {Status: "DRAFT"},
		"bad company id":              {CompanyId: "acme"},
		"bad order":                   {Order: "random"},
		"limit too large":             {Limit: 101},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.SearchJobAds(context.Background(), req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestCreateAndUpdateJobAd(t *testing.T) {
	ctx := context.Background()
	svc, ds, _ := setupService(t)

	ad, err := svc.CreateJobAd(ctx, &jobmatch.CreateJobAdRequest{
		CompanyId:   ds.Company.ID.String(),
		CategoryId:  ds.Category.ID.String(),
		LocationId:  ds.Plovdiv.ID.String(),
		Title:       "Platform",
		Description: "Kubernetes all day",
		SkillLevel:  "ADVANCED",
		MinSalary:   3000,
		MaxSalary:   4000,
		Skills:      []string{"Kubernetes"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", ad.Status)
	assert.Equal(t, "Plovdiv", ad.Location)
	assert.Equal(t, 1, testutil.Reload[db.Company](t, ds.DB, ds.Company.ID).ActiveJobCount)

	_, err = svc.CreateJobAd(ctx, &jobmatch.CreateJobAdRequest{
		CompanyId:  ds.Company.ID.String(),
		CategoryId: ds.Category.ID.String(),
		LocationId: ds.Plovdiv.ID.String(),
		Title:      "Guru",
		SkillLevel: "GURU",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateJobAd(ctx, &jobmatch.CreateJobAdRequest{
		CompanyId:  uuid.NewString(),
		CategoryId: ds.Category.ID.String(),
		LocationId: ds.Plovdiv.ID.String(),
		Title:      "Orphan",
		SkillLevel: "INTERN",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	archived, err := svc.UpdateJobAd(ctx, &jobmatch.UpdateJobAdRequest{Id: ad.Id, Status: ptr("ARCHIVED")})
	require.NoError(t, err)
	assert.Equal(t, "ARCHIVED", archived.Status)
	assert.Equal(t, "Platform", archived.Title)

	_, err = svc.UpdateJobAd(ctx, &jobmatch.UpdateJobAdRequest{Id: ad.Id, SkillLevel: ptr("")})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.AddSkillRequirement(ctx, &jobmatch.AddSkillRequirementRequest{JobAdId: ad.Id, SkillId: ds.Skills["Go"].ID.String()})
	require.NoError(t, err)
	_, err = svc.AddSkillRequirement(ctx, &jobmatch.AddSkillRequirementRequest{JobAdId: ad.Id, SkillId: ds.Skills["Go"].ID.String()})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got, err := svc.GetJobAd(ctx, &jobmatch.IDRequest{Id: ad.Id})
	require.NoError(t, err)
	assert.Len(t, got.Skills, 2)
}

func TestCountReceivedMatches_CacheFirst(t *testing.T) {
	ctx := context.Background()
	svc, ds, mr := setupService(t)
	matches := repository.NewMatchRepository(ds.DB)

	ad := ds.JobAd(t, "Backend", 1000, 2000)
	first := ds.JobApplication(t, "first", db.JobApplicationActive)
	second := ds.JobApplication(t, "second", db.JobApplicationActive)
	_, err := matches.Create(ctx, ad.ID, first.ID, db.MatchRequestedByJobApp)
	require.NoError(t, err)

	req := &jobmatch.IDRequest{Id: ad.ID.String()}
	count, err := svc.CountReceivedMatches(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	key := "matches:received:" + ad.ID.String()
	cached, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "1", cached)
	assert.Positive(t, mr.TTL(key))

	// written behind the service's back: the cached value still wins
	_, err = matches.Create(ctx, ad.ID, second.ID, db.MatchRequestedByJobApp)
	require.NoError(t, err)
	count, err = svc.CountReceivedMatches(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	mr.Del(key)
	count, err = svc.CountReceivedMatches(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	received, err := svc.ListReceivedMatches(ctx, req)
	require.NoError(t, err)
	assert.Len(t, received.Matches, 2)

	sent, err := svc.ListSentMatches(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, sent.Matches)
}

func TestCountReceivedMatches_RedisDown(t *testing.T) {
	ctx := context.Background()
	svc, ds, mr := setupService(t)

	ad := ds.JobAd(t, "Backend", 1000, 2000)
	mr.Close()

	count, err := svc.CountReceivedMatches(ctx, &jobmatch.IDRequest{Id: ad.ID.String()})
	require.NoError(t, err)
	assert.Zero(t, count.Count)

	_, err = svc.CountReceivedMatches(ctx, &jobmatch.IDRequest{Id: uuid.NewString()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
