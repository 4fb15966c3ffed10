package jobad

import (
	"context"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/app"
	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/repository"
	"github.com/oggyb/jobmatch/internal/service/present"
	"github.com/oggyb/jobmatch/internal/service/validate"
)

// Service implements the JobAd gRPC API: the search engine, ad maintenance
// and the per-ad match request views.
type Service struct {
	appCtx    *app.AppContext
	jobAdRepo *repository.JobAdRepository
	matchRepo *repository.MatchRepository
}

// NewJobAdService creates a JobAd service with dependencies from AppContext.
// Dependencies include:
//   - DB connection (via JobAdRepository and MatchRepository)
//   - RedisCache for the received request counter
func NewJobAdService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		jobAdRepo: repository.NewJobAdRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

var _ jobmatch.JobAdServiceServer = (*Service)(nil)

// SearchJobAds runs the job ad search.
//
// Behavior:
//   - status defaults to ACTIVE.
//   - The ad's salary band is widened by salary_threshold before the overlap test.
//   - An ad must require at least len(skills)-skills_threshold of the named skills.
//   - Results are ordered (created_at desc by default) and paginated.
//
// Example:
//
//	svc.SearchJobAds(ctx, &jobmatch.SearchJobAdsRequest{Skills: []string{"Go", "SQL"}, SkillsThreshold: 1})
func (s *Service) SearchJobAds(ctx context.Context, req *jobmatch.SearchJobAdsRequest) (*jobmatch.JobAdList, error) {
	s.appCtx.Logger.Debug(
		"SearchJobAds called",
		"title", req.Title,
		"skills", req.Skills,
		"skills_threshold", req.SkillsThreshold,
		"salary_threshold", req.SalaryThreshold,
	)

	search, err := searchFromRequest(req)
	if err != nil {
		return nil, err
	}
	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	ads, err := s.jobAdRepo.Search(ctx, f, search)
	if err != nil {
		s.appCtx.Logger.Error("Search job ads failed", "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Debug("SearchJobAds result", "count", len(ads))
	return &jobmatch.JobAdList{JobAds: present.JobAds(ads)}, nil
}

func searchFromRequest(req *jobmatch.SearchJobAdsRequest) (repository.JobAdSearch, error) {
	var out repository.JobAdSearch

	companyID, err := validate.OptionalID("company_id", req.CompanyId)
	if err != nil {
		return out, err
	}
	locationID, err := validate.OptionalID("location_id", req.LocationId)
	if err != nil {
		return out, err
	}
	st, err := validate.Enum("status", req.Status, db.JobAdStatus.Valid)
	if err != nil {
		return out, err
	}
	if err := validate.SalaryBand(req.MinSalary, req.MaxSalary); err != nil {
		return out, err
	}
	if req.SalaryThreshold < 0 {
		return out, svcErr.InvalidArgument("salary_threshold must not be negative")
	}
	if req.SkillsThreshold < 0 || int(req.SkillsThreshold) > len(req.Skills) {
		return out, svcErr.InvalidArgument("skills_threshold must be between 0 and the number of skills")
	}
	if err := validate.Ordering(req.OrderBy, req.Order); err != nil {
		return out, err
	}

	return repository.JobAdSearch{
		CompanyID:       companyID,
		LocationID:      locationID,
		Title:           req.Title,
		Status:          st,
		MinSalary:       req.MinSalary,
		MaxSalary:       req.MaxSalary,
		SalaryThreshold: req.SalaryThreshold,
		Skills:          req.Skills,
		SkillsThreshold: int(req.SkillsThreshold),
		OrderBy:         req.OrderBy,
		Order:           req.Order,
	}, nil
}

func (s *Service) GetJobAd(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.JobAd, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	ad, err := s.jobAdRepo.GetByID(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.JobAd(*ad), nil
}

// CreateJobAd publishes an ACTIVE ad and bumps the company's active ad count.
// Unknown company, location, category or skill names fail the whole call.
func (s *Service) CreateJobAd(ctx context.Context, req *jobmatch.CreateJobAdRequest) (*jobmatch.JobAd, error) {
	s.appCtx.Logger.Debug("CreateJobAd called", "company_id", req.CompanyId, "title", req.Title)

	companyID, err := validate.ID("company_id", req.CompanyId)
	if err != nil {
		return nil, err
	}
	categoryID, err := validate.ID("category_id", req.CategoryId)
	if err != nil {
		return nil, err
	}
	locationID, err := validate.ID("location_id", req.LocationId)
	if err != nil {
		return nil, err
	}
	if err := validate.Required("title", req.Title, "skill_level", req.SkillLevel); err != nil {
		return nil, err
	}
	level, err := validate.Enum("skill_level", req.SkillLevel, db.SkillLevel.Valid)
	if err != nil {
		return nil, err
	}
	if err := validate.SalaryBand(&req.MinSalary, &req.MaxSalary); err != nil {
		return nil, err
	}

	ad, err := s.jobAdRepo.Create(ctx, repository.JobAdCreate{
		CompanyID:   companyID,
		CategoryID:  categoryID,
		LocationID:  locationID,
		Title:       req.Title,
		Description: req.Description,
		SkillLevel:  level,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		Skills:      req.Skills,
	})
	if err != nil {
		s.appCtx.Logger.Warn("Create job ad failed", "company_id", companyID, "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("Job ad created", "job_ad_id", ad.ID, "company_id", companyID)
	return present.JobAd(*ad), nil
}

func (s *Service) UpdateJobAd(ctx context.Context, req *jobmatch.UpdateJobAdRequest) (*jobmatch.JobAd, error) {
	s.appCtx.Logger.Debug("UpdateJobAd called", "id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	locationID, err := validate.OptionalIDPtr("location_id", req.LocationId)
	if err != nil {
		return nil, err
	}
	if err := validate.SalaryBand(req.MinSalary, req.MaxSalary); err != nil {
		return nil, err
	}

	u := repository.JobAdUpdate{
		Title:       req.Title,
		Description: req.Description,
		LocationID:  locationID,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
	}
	if req.SkillLevel != nil {
		level, err := validate.Enum("skill_level", *req.SkillLevel, db.SkillLevel.Valid)
		if err != nil {
			return nil, err
		}
		if level == "" {
			return nil, svcErr.InvalidArgument("skill_level must not be empty")
		}
		u.SkillLevel = &level
	}
	if req.Status != nil {
		st, err := validate.Enum("status", *req.Status, db.JobAdStatus.Valid)
		if err != nil {
			return nil, err
		}
		if st == "" {
			return nil, svcErr.InvalidArgument("status must not be empty")
		}
		u.Status = &st
	}

	ad, err := s.jobAdRepo.Update(ctx, id, u)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.JobAd(*ad), nil
}

func (s *Service) AddSkillRequirement(ctx context.Context, req *jobmatch.AddSkillRequirementRequest) (*jobmatch.Ack, error) {
	adID, err := validate.ID("job_ad_id", req.JobAdId)
	if err != nil {
		return nil, err
	}
	skillID, err := validate.ID("skill_id", req.SkillId)
	if err != nil {
		return nil, err
	}

	if err := s.jobAdRepo.AddSkillRequirement(ctx, adID, skillID); err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Ack{Message: "skill requirement added"}, nil
}

// ListReceivedMatches lists requests applications sent to the ad.
func (s *Service) ListReceivedMatches(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.MatchList, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.Received(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.MatchList{Matches: present.Matches(matches)}, nil
}

// ListSentMatches lists requests the ad sent to applications.
func (s *Service) ListSentMatches(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.MatchList, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.Sent(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.MatchList{Matches: present.Matches(matches)}, nil
}

// CountReceivedMatches returns how many requests applications sent to the ad.
// Cache-first strategy:
//  1. Attempts to read from Redis (matches:received:jobAdID).
//  2. On a miss or a Redis failure, counts in the DB via MatchRepository.CountReceived.
//  3. On DB fetch, stores the count in Redis with a 1h TTL.
func (s *Service) CountReceivedMatches(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.Count, error) {
	s.appCtx.Logger.Debug("CountReceivedMatches called", "job_ad_id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}

	// try cache first
	count, ok, err := s.appCtx.RedisCache.GetReceivedCount(ctx, id)
	if err != nil {
		s.appCtx.Logger.Warn("Received count cache read failed", "job_ad_id", id, "err", err)
	}
	if ok {
		return &jobmatch.Count{Count: count}, nil
	}

	// fallback: DB
	count, err = s.matchRepo.CountReceived(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if err := s.appCtx.RedisCache.SetReceivedCount(ctx, id, count); err != nil {
		s.appCtx.Logger.Warn("Received count cache write failed", "job_ad_id", id, "err", err)
	}
	return &jobmatch.Count{Count: count}, nil
}
