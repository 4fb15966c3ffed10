package professional

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
	"github.com/oggyb/jobmatch/internal/utils/password"
)

// Service implements the Professional gRPC API.
type Service struct {
	appCtx           *app.AppContext
	professionalRepo *repository.ProfessionalRepository
	matchRepo        *repository.MatchRepository
}

// NewProfessionalService creates a Professional service with repositories built on appCtx.DB.
func NewProfessionalService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:           appCtx,
		professionalRepo: repository.NewProfessionalRepository(appCtx.DB),
		matchRepo:        repository.NewMatchRepository(appCtx.DB),
	}
}

var _ jobmatch.ProfessionalServiceServer = (*Service)(nil)

// ListProfessionals returns ACTIVE professionals, newest first unless
// order_by/order say otherwise.
func (s *Service) ListProfessionals(ctx context.Context, req *jobmatch.ListProfessionalsRequest) (*jobmatch.ProfessionalList, error) {
	s.appCtx.Logger.Debug("ListProfessionals called", "offset", req.Offset, "limit", req.Limit, "order_by", req.OrderBy)

	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}
	if err := validate.Ordering(req.OrderBy, req.Order); err != nil {
		return nil, err
	}

	pros, err := s.professionalRepo.List(ctx, f, req.OrderBy, req.Order)
	if err != nil {
		s.appCtx.Logger.Error("List professionals failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &jobmatch.ProfessionalList{Professionals: present.Professionals(pros)}, nil
}

// GetProfessional returns the detailed profile.
//
// Behavior:
//   - Skills are the distinct skills across all applications.
//   - Matched ads are left out when the professional keeps matches private.
//   - Sent match requests are those still awaiting a company's answer.
func (s *Service) GetProfessional(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.ProfessionalProfile, error) {
	s.appCtx.Logger.Debug("GetProfessional called", "id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	p, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return s.profile(ctx, p)
}

func (s *Service) profile(ctx context.Context, p *db.Professional) (*jobmatch.ProfessionalProfile, error) {
	skills, err := s.professionalRepo.Skills(ctx, p.ID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	var matched []db.JobAd
	if !p.HasPrivateMatches {
		matched, err = s.matchRepo.MatchedAds(ctx, p.ID)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		if matched == nil {
			matched = []db.JobAd{}
		}
	}

	sent, err := s.matchRepo.SentByProfessional(ctx, p.ID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.Profile(*p, skills, matched, sent), nil
}

func (s *Service) CreateProfessional(ctx context.Context, req *jobmatch.CreateProfessionalRequest) (*jobmatch.ProfessionalProfile, error) {
	s.appCtx.Logger.Debug("CreateProfessional called", "username", req.Username)

	if err := validate.Required(
		"username", req.Username,
		"password", req.Password,
		"first_name", req.FirstName,
		"last_name", req.LastName,
		"email", req.Email,
	); err != nil {
		return nil, err
	}
	cityID, err := validate.ID("city_id", req.CityId)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		s.appCtx.Logger.Error("Hash password failed", "err", err)
		return nil, svcErr.Map(err)
	}

	p, err := s.professionalRepo.Create(ctx, repository.ProfessionalCreate{
		CityID:       cityID,
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Description:  req.Description,
		Email:        req.Email,
	})
	if err != nil {
		s.appCtx.Logger.Warn("Create professional failed", "username", req.Username, "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("Professional created", "professional_id", p.ID, "username", p.Username)
	return s.profile(ctx, p)
}

func (s *Service) UpdateProfessional(ctx context.Context, req *jobmatch.UpdateProfessionalRequest) (*jobmatch.ProfessionalProfile, error) {
	s.appCtx.Logger.Debug("UpdateProfessional called", "id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	cityID, err := validate.OptionalIDPtr("city_id", req.CityId)
	if err != nil {
		return nil, err
	}

	u := repository.ProfessionalUpdate{
		CityID:      cityID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Description: req.Description,
		Email:       req.Email,
	}
	if req.Status != nil {
		st, err := validate.Enum("status", *req.Status, db.ProfessionalStatus.Valid)
		if err != nil {
			return nil, err
		}
		if st == "" {
			return nil, svcErr.InvalidArgument("status must not be empty")
		}
		u.Status = &st
	}

	p, err := s.professionalRepo.Update(ctx, id, u)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return s.profile(ctx, p)
}

func (s *Service) SetPrivateMatches(ctx context.Context, req *jobmatch.SetPrivateMatchesRequest) (*jobmatch.Ack, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.professionalRepo.SetPrivateMatches(ctx, id, req.Private); err != nil {
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("Match privacy changed", "professional_id", id, "private", req.Private)
	return &jobmatch.Ack{Message: "match privacy updated"}, nil
}

func (s *Service) UploadPhoto(ctx context.Context, req *jobmatch.BlobRequest) (*jobmatch.Ack, error) {
	return s.upload(ctx, req, "photo uploaded", s.professionalRepo.SetPhoto)
}

func (s *Service) DownloadPhoto(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.Blob, error) {
	return s.download(ctx, req, s.professionalRepo.Photo)
}

func (s *Service) UploadCV(ctx context.Context, req *jobmatch.BlobRequest) (*jobmatch.Ack, error) {
	return s.upload(ctx, req, "cv uploaded", s.professionalRepo.SetCV)
}

func (s *Service) DownloadCV(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.Blob, error) {
	return s.download(ctx, req, s.professionalRepo.CV)
}

func (s *Service) DeleteCV(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.Ack, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.professionalRepo.ClearCV(ctx, id); err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Ack{Message: "cv deleted"}, nil
}

func (s *Service) upload(ctx context.Context, req *jobmatch.BlobRequest, ack string, set func(context.Context, uuid.UUID, []byte) error) (*jobmatch.Ack, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, svcErr.InvalidArgument("data is required")
	}
	s.appCtx.Logger.Debug("Upload called", "professional_id", id, "bytes", len(req.Data))

	if err := set(ctx, id, req.Data); err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Ack{Message: ack}, nil
}

func (s *Service) download(ctx context.Context, req *jobmatch.IDRequest, get func(context.Context, uuid.UUID) ([]byte, error)) (*jobmatch.Blob, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	data, err := get(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Blob{Data: data}, nil
}

// ListApplications lists the professional's applications with the given
// status (ACTIVE when empty). MATCHED applications of a professional with
// private matches are PermissionDenied.
func (s *Service) ListApplications(ctx context.Context, req *jobmatch.ListProfessionalApplicationsRequest) (*jobmatch.JobApplicationList, error) {
	s.appCtx.Logger.Debug("ListApplications called", "professional_id", req.Id, "status", req.Status)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	st, err := validate.Enum("status", req.Status, db.JobApplicationStatus.Valid)
	if err != nil {
		return nil, err
	}
	if st == "" {
		st = db.JobApplicationActive
	}
	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	apps, err := s.professionalRepo.Applications(ctx, id, st, f)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.JobApplicationList{JobApplications: present.JobApplications(apps)}, nil
}

func (s *Service) GetApplication(ctx context.Context, req *jobmatch.ProfessionalApplicationRequest) (*jobmatch.JobApplication, error) {
	proID, err := validate.ID("professional_id", req.ProfessionalId)
	if err != nil {
		return nil, err
	}
	appID, err := validate.ID("job_application_id", req.JobApplicationId)
	if err != nil {
		return nil, err
	}

	app, err := s.professionalRepo.Application(ctx, proID, appID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.JobApplication(*app), nil
}

func (s *Service) ListSkills(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.SkillList, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	skills, err := s.professionalRepo.Skills(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.SkillList{Skills: present.Skills(skills)}, nil
}

// ListMatchRequests returns the requests job ads sent to the professional's
// ACTIVE applications.
func (s *Service) ListMatchRequests(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.MatchRequestAdList, error) {
	s.appCtx.Logger.Debug("ListMatchRequests called", "professional_id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ForProfessional(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.MatchRequestAdList{Requests: present.MatchRequestAds(matches)}, nil
}
