package jobapplication

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

// Service implements the JobApplication gRPC API.
type Service struct {
	appCtx    *app.AppContext
	appRepo   *repository.JobApplicationRepository
	matchRepo *repository.MatchRepository
}

func NewJobApplicationService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		appRepo:   repository.NewJobApplicationRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

var _ jobmatch.JobApplicationServiceServer = (*Service)(nil)

// SearchJobApplications lists applications with the given status (ACTIVE by
// default). When skills are given, an application needs any one of them.
func (s *Service) SearchJobApplications(ctx context.Context, req *jobmatch.SearchJobApplicationsRequest) (*jobmatch.JobApplicationList, error) {
	s.appCtx.Logger.Debug("SearchJobApplications called", "status", req.Status, "skills", req.Skills)

	st, err := validate.Enum("status", req.Status, db.JobApplicationStatus.Valid)
	if err != nil {
		return nil, err
	}
	if err := validate.Ordering(req.OrderBy, req.Order); err != nil {
		return nil, err
	}
	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	apps, err := s.appRepo.GetAll(ctx, f, repository.JobApplicationSearch{
		Status:  st,
		Skills:  req.Skills,
		OrderBy: req.OrderBy,
		Order:   req.Order,
	})
	if err != nil {
		s.appCtx.Logger.Error("Search job applications failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &jobmatch.JobApplicationList{JobApplications: present.JobApplications(apps)}, nil
}

func (s *Service) GetJobApplication(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.JobApplication, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.JobApplication(*app), nil
}

// CreateJobApplication stores an application (ACTIVE unless a status is
// given) and bumps the professional's active application count.
func (s *Service) CreateJobApplication(ctx context.Context, req *jobmatch.CreateJobApplicationRequest) (*jobmatch.JobApplication, error) {
	s.appCtx.Logger.Debug("CreateJobApplication called", "professional_id", req.ProfessionalId, "name", req.Name)

	proID, err := validate.ID("professional_id", req.ProfessionalId)
	if err != nil {
		return nil, err
	}
	categoryID, err := validate.ID("category_id", req.CategoryId)
	if err != nil {
		return nil, err
	}
	cityID, err := validate.ID("city_id", req.CityId)
	if err != nil {
		return nil, err
	}
	if err := validate.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := validate.SalaryBand(req.MinSalary, req.MaxSalary); err != nil {
		return nil, err
	}
	st, err := validate.Enum("status", req.Status, db.JobApplicationStatus.Valid)
	if err != nil {
		return nil, err
	}

	app, err := s.appRepo.Create(ctx, repository.JobApplicationCreate{
		ProfessionalID: proID,
		CategoryID:     categoryID,
		CityID:         cityID,
		Name:           req.Name,
		Description:    req.Description,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		IsMain:         req.IsMain,
		Status:         st,
		Skills:         req.Skills,
	})
	if err != nil {
		s.appCtx.Logger.Warn("Create job application failed", "professional_id", proID, "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("Job application created", "job_application_id", app.ID, "professional_id", proID)
	return present.JobApplication(*app), nil
}

// UpdateJobApplication applies the fields present in the request. Skills in
// the request are accepted but not stored.
func (s *Service) UpdateJobApplication(ctx context.Context, req *jobmatch.UpdateJobApplicationRequest) (*jobmatch.JobApplication, error) {
	s.appCtx.Logger.Debug("UpdateJobApplication called", "id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	cityID, err := validate.OptionalIDPtr("city_id", req.CityId)
	if err != nil {
		return nil, err
	}
	if err := validate.SalaryBand(req.MinSalary, req.MaxSalary); err != nil {
		return nil, err
	}

	u := repository.JobApplicationUpdate{
		Name:        req.Name,
		Description: req.Description,
		CityID:      cityID,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		IsMain:      req.IsMain,
		Skills:      req.Skills,
	}
	if req.Status != nil {
		st, err := validate.Enum("status", *req.Status, db.JobApplicationStatus.Valid)
		if err != nil {
			return nil, err
		}
		if st == "" {
			return nil, svcErr.InvalidArgument("status must not be empty")
		}
		u.Status = &st
	}
	if len(req.Skills) > 0 {
		s.appCtx.Logger.Debug("Skills on job application update are ignored", "id", id)
	}

	app, err := s.appRepo.Update(ctx, id, u)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.JobApplication(*app), nil
}

// ListMatchRequests returns the requests job ads sent to the application.
func (s *Service) ListMatchRequests(ctx context.Context, req *jobmatch.OwnerPageRequest) (*jobmatch.MatchRequestAdList, error) {
	s.appCtx.Logger.Debug("ListMatchRequests called", "job_application_id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ForJobApplication(ctx, id, f)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.MatchRequestAdList{Requests: present.MatchRequestAds(matches)}, nil
}
