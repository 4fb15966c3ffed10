package company

import (
	"context"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/app"
	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/repository"
	"github.com/oggyb/jobmatch/internal/service/present"
	"github.com/oggyb/jobmatch/internal/service/validate"
	"github.com/oggyb/jobmatch/internal/utils/password"
)

// Service implements the Company gRPC API on top of the company, match and
// catalog repositories.
type Service struct {
	appCtx      *app.AppContext
	companyRepo *repository.CompanyRepository
	matchRepo   *repository.MatchRepository
	catalogRepo *repository.CatalogRepository
}

// NewCompanyService creates a Company service with repositories built on appCtx.DB.
func NewCompanyService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		companyRepo: repository.NewCompanyRepository(appCtx.DB),
		matchRepo:   repository.NewMatchRepository(appCtx.DB),
		catalogRepo: repository.NewCatalogRepository(appCtx.DB),
	}
}

var _ jobmatch.CompanyServiceServer = (*Service)(nil)

func (s *Service) ListCompanies(ctx context.Context, req *jobmatch.PageRequest) (*jobmatch.CompanyList, error) {
	s.appCtx.Logger.Debug("ListCompanies called", "offset", req.Offset, "limit", req.Limit)

	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.List(ctx, f)
	if err != nil {
		s.appCtx.Logger.Error("List companies failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &jobmatch.CompanyList{Companies: present.Companies(companies)}, nil
}

// GetCompany looks a company up by the first key set in the request:
// id, username, email, then phone number.
func (s *Service) GetCompany(ctx context.Context, req *jobmatch.GetCompanyRequest) (*jobmatch.Company, error) {
	s.appCtx.Logger.Debug("GetCompany called", "id", req.Id, "username", req.Username)

	var (
		c   *db.Company
		err error
	)
	switch {
	case req.Id != "":
		id, perr := validate.ID("id", req.Id)
		if perr != nil {
			return nil, perr
		}
		c, err = s.companyRepo.GetByID(ctx, id)
	case req.Username != "":
		c, err = s.companyRepo.GetByUsername(ctx, req.Username)
	case req.Email != "":
		c, err = s.companyRepo.GetByEmail(ctx, req.Email)
	case req.PhoneNumber != "":
		c, err = s.companyRepo.GetByPhone(ctx, req.PhoneNumber)
	default:
		return nil, svcErr.InvalidArgument("one of id, username, email or phone_number is required")
	}
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.Company(*c), nil
}

// CreateCompany registers a company. The password is stored as a bcrypt hash.
func (s *Service) CreateCompany(ctx context.Context, req *jobmatch.CreateCompanyRequest) (*jobmatch.Company, error) {
	s.appCtx.Logger.Debug("CreateCompany called", "username", req.Username)

	if err := validate.Required(
		"username", req.Username,
		"password", req.Password,
		"name", req.Name,
		"email", req.Email,
		"phone_number", req.PhoneNumber,
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

	c, err := s.companyRepo.Create(ctx, repository.CompanyCreate{
		CityID:       cityID,
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Description:  req.Description,
		AddressLine:  req.AddressLine,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		s.appCtx.Logger.Warn("Create company failed", "username", req.Username, "err", err)
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("Company created", "company_id", c.ID, "username", c.Username)
	return present.Company(*c), nil
}

func (s *Service) UpdateCompany(ctx context.Context, req *jobmatch.UpdateCompanyRequest) (*jobmatch.Company, error) {
	s.appCtx.Logger.Debug("UpdateCompany called", "id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	cityID, err := validate.OptionalIDPtr("city_id", req.CityId)
	if err != nil {
		return nil, err
	}

	c, err := s.companyRepo.Update(ctx, id, repository.CompanyUpdate{
		CityID:         cityID,
		Name:           req.Name,
		Description:    req.Description,
		AddressLine:    req.AddressLine,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		WebsiteURL:     req.WebsiteUrl,
		YoutubeVideoID: req.YoutubeVideoId,
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.Company(*c), nil
}

func (s *Service) UploadLogo(ctx context.Context, req *jobmatch.BlobRequest) (*jobmatch.Ack, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, svcErr.InvalidArgument("data is required")
	}
	s.appCtx.Logger.Debug("UploadLogo called", "company_id", id, "bytes", len(req.Data))

	if err := s.companyRepo.SetLogo(ctx, id, req.Data); err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Ack{Message: "logo uploaded"}, nil
}

func (s *Service) DownloadLogo(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.Blob, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	logo, err := s.companyRepo.Logo(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Blob{Data: logo}, nil
}

func (s *Service) DeleteLogo(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.Ack, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.ClearLogo(ctx, id); err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.Ack{Message: "logo deleted"}, nil
}

// ListMatchRequests returns the requests professionals sent to the company's
// job ads, newest first.
func (s *Service) ListMatchRequests(ctx context.Context, req *jobmatch.OwnerPageRequest) (*jobmatch.MatchRequestApplicationList, error) {
	s.appCtx.Logger.Debug("ListMatchRequests called", "company_id", req.Id)

	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	f, err := validate.Page(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ForCompany(ctx, id, f)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.MatchRequestApplicationList{Requests: present.MatchRequestApplications(matches)}, nil
}

// ProposeSkill files a skill name for review. Proposals are stored as
// pending and never enter the catalog on their own.
func (s *Service) ProposeSkill(ctx context.Context, req *jobmatch.ProposeSkillRequest) (*jobmatch.PendingSkill, error) {
	companyID, err := validate.ID("company_id", req.CompanyId)
	if err != nil {
		return nil, err
	}
	categoryID, err := validate.ID("category_id", req.CategoryId)
	if err != nil {
		return nil, err
	}
	if err := validate.Required("name", req.Name); err != nil {
		return nil, err
	}

	pending, err := s.catalogRepo.ProposeSkill(ctx, companyID, categoryID, req.Name)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("Skill proposed", "company_id", companyID, "name", req.Name)
	return present.PendingSkill(*pending), nil
}
