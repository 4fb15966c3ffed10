package match_test

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
	"github.com/oggyb/jobmatch/internal/service/match"
	"github.com/oggyb/jobmatch/internal/testutil"
)

func setupService(t *testing.T) (*match.Service, *testutil.Dataset, *miniredis.Miniredis) {
	t.Helper()
	appCtx, mr := testutil.NewAppContext(t)
	ds := testutil.Seed(t, appCtx.DB)
	return match.NewMatchService(appCtx), ds, mr
}

func TestMatchLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, ds, mr := setupService(t)

	ad := ds.JobAd(t, "Backend", 1000, 2000)
	app := ds.JobApplication(t, "Go dev", db.JobApplicationActive)
	key := &jobmatch.MatchKey{JobAdId: ad.ID.String(), JobApplicationId: app.ID.String()}
	cacheKey := "matches:received:" + ad.ID.String()

	require.NoError(t, mr.Set(cacheKey, "7"))
	created, err := svc.CreateMatch(ctx, &jobmatch.CreateMatchRequest{
		JobAdId:          key.JobAdId,
		JobApplicationId: key.JobApplicationId,
		Status:           "REQUESTED_BY_JOB_APP",
	})
	require.NoError(t, err)
	assert.Equal(t, "REQUESTED_BY_JOB_APP", created.Status)
	assert.False(t, mr.Exists(cacheKey), "create drops the cached count")

	_, err = svc.CreateMatch(ctx, &jobmatch.CreateMatchRequest{
		JobAdId:          key.JobAdId,
		JobApplicationId: key.JobApplicationId,
		Status:           "REQUESTED_BY_JOB_AD",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	require.NoError(t, mr.Set(cacheKey, "7"))
	accepted, err := svc.AcceptMatch(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", accepted.Status)
	assert.False(t, mr.Exists(cacheKey), "accept drops the cached count")

	got, err := svc.GetMatch(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", got.Status)

	assert.Equal(t, db.JobAdArchived, testutil.Reload[db.JobAd](t, ds.DB, ad.ID).Status)
	assert.Equal(t, db.ProfessionalBusy, testutil.Reload[db.Professional](t, ds.DB, ds.Professional.ID).Status)
	assert.Equal(t, 1, testutil.Reload[db.Company](t, ds.DB, ds.Company.ID).SuccessfulMatchesCount)
}

func TestUpdateMatchStatus(t *testing.T) {
	ctx := context.Background()
	svc, ds, mr := setupService(t)

	ad := ds.JobAd(t, "Backend", 1000, 2000)
	app := ds.JobApplication(t, "Go dev", db.JobApplicationActive)
	_, err := svc.CreateMatch(ctx, &jobmatch.CreateMatchRequest{
		JobAdId:          ad.ID.String(),
		JobApplicationId: app.ID.String(),
		Status:           "REQUESTED_BY_JOB_AD",
	})
	require.NoError(t, err)

	cacheKey := "matches:received:" + ad.ID.String()
	require.NoError(t, mr.Set(cacheKey, "3"))

	rejected, err := svc.UpdateMatchStatus(ctx, &jobmatch.UpdateMatchStatusRequest{
		JobAdId:          ad.ID.String(),
		JobApplicationId: app.ID.String(),
		Status:           "REJECTED",
	})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.Status)
	assert.False(t, mr.Exists(cacheKey))

	// a plain status write has no side effects on the ad
	assert.Equal(t, db.JobAdActive, testutil.Reload[db.JobAd](t, ds.DB, ad.ID).Status)

	_, err = svc.UpdateMatchStatus(ctx, &jobmatch.UpdateMatchStatusRequest{
		JobAdId:          ad.ID.String(),
		JobApplicationId: app.ID.String(),
		Status:           "MAYBE",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMatchErrors(t *testing.T) {
	ctx := context.Background()
	svc, ds, _ := setupService(t)

	ad := ds.JobAd(t, "Backend", 1000, 2000)
	app := ds.JobApplication(t, "Go dev", db.JobApplicationActive)

	cases := []struct {
		name string
		req  *jobmatch.CreateMatchRequest
		code codes.Code
	}{
		{"accepted is not an opening status", &jobmatch.CreateMatchRequest{JobAdId: ad.ID.String(), JobApplicationId: app.ID.String(), Status: "ACCEPTED"}, codes.InvalidArgument},
		{"malformed ad id", &jobmatch.CreateMatchRequest{JobAdId: "1", JobApplicationId: app.ID.String(), Status: "REQUESTED_BY_JOB_AD"}, codes.InvalidArgument},
		{"unknown application", &jobmatch.CreateMatchRequest{JobAdId: ad.ID.String(), JobApplicationId: uuid.NewString(), Status: "REQUESTED_BY_JOB_AD"}, codes.NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateMatch(ctx, tc.req)
			assert.Equal(t, tc.code, status.Code(err))
		})
	}

	_, err := svc.AcceptMatch(ctx, &jobmatch.MatchKey{JobAdId: ad.ID.String(), JobApplicationId: app.ID.String()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.GetMatch(ctx, &jobmatch.MatchKey{JobAdId: ad.ID.String(), JobApplicationId: "x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
