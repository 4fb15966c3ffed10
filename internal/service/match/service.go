package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/app"
	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/repository"
	"github.com/oggyb/jobmatch/internal/service/present"
	"github.com/oggyb/jobmatch/internal/service/validate"
)

// Service implements the Match gRPC API: the request lifecycle between a
// job ad and a job application.
//
// Every write drops the cached received-request count of the job ad involved,
// so the next CountReceivedMatches reads the database.
type Service struct {
	appCtx    *app.AppContext
	matchRepo *repository.MatchRepository
}

func NewMatchService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

var _ jobmatch.MatchServiceServer = (*Service)(nil)

func parseKey(adID, appID string) (uuid.UUID, uuid.UUID, error) {
	jobAdID, err := validate.ID("job_ad_id", adID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	jobAppID, err := validate.ID("job_application_id", appID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return jobAdID, jobAppID, nil
}

// CreateMatch opens a match request for the pair. The status names the side
// that asked: REQUESTED_BY_JOB_AD or REQUESTED_BY_JOB_APP.
//
// Example:
//
//	svc.CreateMatch(ctx, &jobmatch.CreateMatchRequest{JobAdId: ad, JobApplicationId: app, Status: "REQUESTED_BY_JOB_APP"})
func (s *Service) CreateMatch(ctx context.Context, req *jobmatch.CreateMatchRequest) (*jobmatch.Match, error) {
	s.appCtx.Logger.Debug(
		"CreateMatch called",
		"job_ad_id", req.JobAdId,
		"job_application_id", req.JobApplicationId,
		"status", req.Status,
	)

	adID, appID, err := parseKey(req.JobAdId, req.JobApplicationId)
	if err != nil {
		return nil, err
	}
	st := db.MatchStatus(req.Status)
	if st != db.MatchRequestedByJobAd && st != db.MatchRequestedByJobApp {
		return nil, svcErr.InvalidArgument("status must be REQUESTED_BY_JOB_AD or REQUESTED_BY_JOB_APP")
	}

	m, err := s.matchRepo.Create(ctx, adID, appID, st)
	if err != nil {
		s.appCtx.Logger.Warn("Create match failed", "job_ad_id", adID, "job_application_id", appID, "err", err)
		return nil, svcErr.Map(err)
	}
	s.invalidate(ctx, adID)

	s.appCtx.Logger.Info("Match requested", "job_ad_id", adID, "job_application_id", appID, "status", st)
	return present.Match(*m), nil
}

func (s *Service) GetMatch(ctx context.Context, req *jobmatch.MatchKey) (*jobmatch.Match, error) {
	adID, appID, err := parseKey(req.JobAdId, req.JobApplicationId)
	if err != nil {
		return nil, err
	}
	m, err := s.matchRepo.Get(ctx, adID, appID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.Match(*m), nil
}

// UpdateMatchStatus overwrites the status with any valid value; no
// transition rules are applied. Use AcceptMatch to accept with side effects.
func (s *Service) UpdateMatchStatus(ctx context.Context, req *jobmatch.UpdateMatchStatusRequest) (*jobmatch.Match, error) {
	s.appCtx.Logger.Debug("UpdateMatchStatus called", "job_ad_id", req.JobAdId, "job_application_id", req.JobApplicationId, "status", req.Status)

	adID, appID, err := parseKey(req.JobAdId, req.JobApplicationId)
	if err != nil {
		return nil, err
	}
	st := db.MatchStatus(req.Status)
	if !st.Valid() {
		return nil, svcErr.InvalidArgument("status must be a valid match status")
	}

	m, err := s.matchRepo.UpdateStatus(ctx, adID, appID, st)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	s.invalidate(ctx, adID)
	return present.Match(*m), nil
}

// AcceptMatch accepts the match and, in the same transaction, archives the
// ad, marks the application MATCHED, the professional BUSY and credits the
// company with a successful match.
func (s *Service) AcceptMatch(ctx context.Context, req *jobmatch.MatchKey) (*jobmatch.Match, error) {
	s.appCtx.Logger.Debug("AcceptMatch called", "job_ad_id", req.JobAdId, "job_application_id", req.JobApplicationId)

	adID, appID, err := parseKey(req.JobAdId, req.JobApplicationId)
	if err != nil {
		return nil, err
	}

	m, err := s.matchRepo.Accept(ctx, adID, appID)
	if err != nil {
		s.appCtx.Logger.Warn("Accept match failed", "job_ad_id", adID, "job_application_id", appID, "err", err)
		return nil, svcErr.Map(err)
	}
	s.invalidate(ctx, adID)

	s.appCtx.Logger.Info("Match accepted", "job_ad_id", adID, "job_application_id", appID)
	return present.Match(*m), nil
}

// invalidate drops the cached count. A failure only delays freshness until
// the TTL runs out, so it is logged and swallowed.
func (s *Service) invalidate(ctx context.Context, jobAdID uuid.UUID) {
	if err := s.appCtx.RedisCache.InvalidateReceivedCount(ctx, jobAdID); err != nil {
		s.appCtx.Logger.Warn("Received count invalidation failed", "job_ad_id", jobAdID, "err", err)
	}
}
