package catalog

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

// Service serves reference data: cities, categories and skills.
type Service struct {
	appCtx      *app.AppContext
	catalogRepo *repository.CatalogRepository
}

func NewCatalogService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		catalogRepo: repository.NewCatalogRepository(appCtx.DB),
	}
}

var _ jobmatch.CatalogServiceServer = (*Service)(nil)

func (s *Service) ListCities(ctx context.Context, _ *jobmatch.Empty) (*jobmatch.CityList, error) {
	cities, err := s.catalogRepo.Cities(ctx)
	if err != nil {
		s.appCtx.Logger.Error("List cities failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &jobmatch.CityList{Cities: present.Cities(cities)}, nil
}

// GetCity looks a city up by id, or by name when no id is given.
func (s *Service) GetCity(ctx context.Context, req *jobmatch.GetCityRequest) (*jobmatch.City, error) {
	var (
		city *db.City
		err  error
	)
	switch {
	case req.Id != "":
		id, perr := validate.ID("id", req.Id)
		if perr != nil {
			return nil, perr
		}
		city, err = s.catalogRepo.CityByID(ctx, id)
	case req.Name != "":
		city, err = s.catalogRepo.CityByName(ctx, req.Name)
	default:
		return nil, svcErr.InvalidArgument("id or name is required")
	}
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return present.City(*city), nil
}

func (s *Service) ListCategories(ctx context.Context, _ *jobmatch.Empty) (*jobmatch.CategoryList, error) {
	cats, err := s.catalogRepo.Categories(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.CategoryList{Categories: present.Categories(cats)}, nil
}

// ListSkills lists the skills of one category.
func (s *Service) ListSkills(ctx context.Context, req *jobmatch.IDRequest) (*jobmatch.SkillList, error) {
	id, err := validate.ID("id", req.Id)
	if err != nil {
		return nil, err
	}
	skills, err := s.catalogRepo.SkillsForCategory(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.SkillList{Skills: present.Skills(skills)}, nil
}

func (s *Service) CreateSkill(ctx context.Context, req *jobmatch.CreateSkillRequest) (*jobmatch.Skill, error) {
	s.appCtx.Logger.Debug("CreateSkill called", "category_id", req.CategoryId, "name", req.Name)

	categoryID, err := validate.ID("category_id", req.CategoryId)
	if err != nil {
		return nil, err
	}
	if err := validate.Required("name", req.Name); err != nil {
		return nil, err
	}

	skill, err := s.catalogRepo.CreateSkill(ctx, categoryID, req.Name)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	s.appCtx.Logger.Info("Skill created", "skill_id", skill.ID, "name", skill.Name)
	return present.Skill(*skill), nil
}

func (s *Service) ListPendingSkills(ctx context.Context, _ *jobmatch.Empty) (*jobmatch.PendingSkillList, error) {
	pending, err := s.catalogRepo.PendingSkills(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &jobmatch.PendingSkillList{PendingSkills: present.PendingSkills(pending)}, nil
}
