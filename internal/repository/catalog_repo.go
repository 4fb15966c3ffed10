package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
)

// CatalogRepository serves the reference data: cities, categories and skills,
// plus the inbox of skills proposed by companies.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: database}
}

func (r *CatalogRepository) Cities(ctx context.Context) ([]db.City, error) {
	var cities []db.City
	if err := r.db.WithContext(ctx).Order("name").Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (r *CatalogRepository) CityByID(ctx context.Context, id uuid.UUID) (*db.City, error) {
	return FindCityByID(ctx, r.db, id)
}

func (r *CatalogRepository) CityByName(ctx context.Context, name string) (*db.City, error) {
	return FindCityByName(ctx, r.db, name)
}

func (r *CatalogRepository) Categories(ctx context.Context) ([]db.Category, error) {
	var categories []db.Category
	if err := r.db.WithContext(ctx).Order("title").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// SkillsForCategory lists the skills of one category.
func (r *CatalogRepository) SkillsForCategory(ctx context.Context, categoryID uuid.UUID) ([]db.Skill, error) {
	if _, err := FindCategoryByID(ctx, r.db, categoryID); err != nil {
		return nil, err
	}

	var skills []db.Skill
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name").
		Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// CreateSkill adds a skill to the catalog. Names are unique.
func (r *CatalogRepository) CreateSkill(ctx context.Context, categoryID uuid.UUID, name string) (*db.Skill, error) {
	if _, err := FindCategoryByID(ctx, r.db, categoryID); err != nil {
		return nil, err
	}

	skill := db.Skill{CategoryID: categoryID, Name: name}
	if err := r.db.WithContext(ctx).Create(&skill).Error; err != nil {
		if isDuplicate(err) {
			return nil, svcErr.Conflict(kindSkill, name)
		}
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return &skill, nil
}

// ProposeSkill records a skill a company wants added to the catalog.
// The name must be new to both the catalog and the inbox. Proposals are
// never promoted automatically.
func (r *CatalogRepository) ProposeSkill(ctx context.Context, companyID, categoryID uuid.UUID, name string) (*db.PendingSkill, error) {
	pending := db.PendingSkill{CategoryID: categoryID, SubmittedBy: companyID, Name: name}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindCompanyByID(ctx, tx, companyID); err != nil {
			return err
		}
		if _, err := FindCategoryByID(ctx, tx, categoryID); err != nil {
			return err
		}

		_, err := FindSkillByName(ctx, tx, name)
		switch {
		case err == nil:
			return svcErr.Conflict(kindSkill, name)
		case !svcErr.IsNotFound(err):
			return err
		}

		var existing db.PendingSkill
		err = tx.Where("name = ?", name).First(&existing).Error
		switch {
		case err == nil:
			return svcErr.Conflict(kindPendingSkill, name)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("find pending skill: %w", err)
		}

		if err := tx.Create(&pending).Error; err != nil {
			if isDuplicate(err) {
				return svcErr.Conflict(kindPendingSkill, name)
			}
			return fmt.Errorf("create pending skill: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

// PendingSkills lists the proposals, oldest first.
func (r *CatalogRepository) PendingSkills(ctx context.Context) ([]db.PendingSkill, error) {
	var pending []db.PendingSkill
	if err := r.db.WithContext(ctx).Order("created_at, name").Find(&pending).Error; err != nil {
		return nil, fmt.Errorf("list pending skills: %w", err)
	}
	return pending, nil
}
