package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/jobmatch/internal/db"
	"github.com/oggyb/jobmatch/internal/utils/pagination"
)

// JobApplicationSearch narrows GetAll. Status defaults to ACTIVE; an
// application passes the skill filter when it has any of Skills.
type JobApplicationSearch struct {
	Status  db.JobApplicationStatus
	Skills  []string
	OrderBy string
	Order   string
}

type JobApplicationCreate struct {
	ProfessionalID uuid.UUID
	CategoryID     uuid.UUID
	CityID         uuid.UUID
	Name           string
	Description    string
	MinSalary      *float64
	MaxSalary      *float64
	IsMain         bool
	Status         db.JobApplicationStatus
	Skills         []string
}

// JobApplicationUpdate is a partial update; nil fields are left untouched.
// Skills is accepted but not applied.
type JobApplicationUpdate struct {
	Name        *string
	Description *string
	CityID      *uuid.UUID
	MinSalary   *float64
	MaxSalary   *float64
	IsMain      *bool
	Status      *db.JobApplicationStatus
	Skills      []string
}

func (u JobApplicationUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.CityID != nil {
		cols["city_id"] = *u.CityID
	}
	if u.MinSalary != nil {
		cols["min_salary"] = *u.MinSalary
	}
	if u.MaxSalary != nil {
		cols["max_salary"] = *u.MaxSalary
	}
	if u.IsMain != nil {
		cols["is_main"] = *u.IsMain
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(database *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: database}
}

// GetAll lists applications with the given status, optionally those having at
// least one of the named skills, ordered and paginated.
//
// Example:
//
//	repo.GetAll(ctx, pagination.Filter{Limit: 10}, JobApplicationSearch{Skills: []string{"Go"}})
func (r *JobApplicationRepository) GetAll(ctx context.Context, f pagination.Filter, s JobApplicationSearch) ([]db.JobApplication, error) {
	status := s.Status
	if status == "" {
		status = db.JobApplicationActive
	}

	query := r.db.WithContext(ctx).
		Model(&db.JobApplication{}).
		Where("job_applications.status = ?", status)

	if len(s.Skills) > 0 {
		withSkill := r.db.Session(&gorm.Session{NewDB: true}).
			Table("job_application_skills").
			Select("job_application_skills.job_application_id").
			Joins("JOIN skills ON skills.id = job_application_skills.skill_id").
			Where("skills.name IN ?", s.Skills)
		query = query.Where("job_applications.id IN (?)", withSkill)
	}

	var apps []db.JobApplication
	err := query.
		Order(orderClause("job_applications", s.OrderBy, s.Order)).
		Scopes(f.Scope()).
		Preload("Professional").
		Preload("City").
		Preload("Skills").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return apps, nil
}

func (r *JobApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*db.JobApplication, error) {
	return FindJobApplicationByID(ctx, r.db, id)
}

// ListForProfessional lists one professional's applications with the given status.
func (r *JobApplicationRepository) ListForProfessional(ctx context.Context, professionalID uuid.UUID, status db.JobApplicationStatus, f pagination.Filter) ([]db.JobApplication, error) {
	var apps []db.JobApplication
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND status = ?", professionalID, status).
		Order("created_at DESC, id DESC").
		Scopes(f.Scope()).
		Preload("Professional").
		Preload("City").
		Preload("Skills").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications for professional: %w", err)
	}
	return apps, nil
}

// Create inserts the application with its skills and bumps the professional's
// active application counter. Nothing is persisted when the professional, the
// city, the category or any skill name is unknown.
func (r *JobApplicationRepository) Create(ctx context.Context, in JobApplicationCreate) (*db.JobApplication, error) {
	var id uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindProfessionalByID(ctx, tx, in.ProfessionalID); err != nil {
			return err
		}
		if _, err := FindCityByID(ctx, tx, in.CityID); err != nil {
			return err
		}
		if _, err := FindCategoryByID(ctx, tx, in.CategoryID); err != nil {
			return err
		}
		skills, err := resolveSkills(ctx, tx, in.Skills)
		if err != nil {
			return err
		}

		status := in.Status
		if status == "" {
			status = db.JobApplicationActive
		}
		app := db.JobApplication{
			ProfessionalID: in.ProfessionalID,
			CategoryID:     in.CategoryID,
			CityID:         in.CityID,
			Name:           in.Name,
			Description:    in.Description,
			MinSalary:      in.MinSalary,
			MaxSalary:      in.MaxSalary,
			IsMain:         in.IsMain,
			Status:         status,
			Skills:         skills,
		}
		if err := tx.Omit("Skills.*").Create(&app).Error; err != nil {
			return fmt.Errorf("create job application: %w", err)
		}
		id = app.ID

		return tx.Model(&db.Professional{}).
			Where("id = ?", in.ProfessionalID).
			UpdateColumn("active_application_count", gorm.Expr("active_application_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return FindJobApplicationByID(ctx, r.db, id)
}

// Update applies the non-nil fields of u and refreshes updated_at when at
// least one was given. A non-empty u.Skills counts as a change for updated_at
// but the stored skill set is left as it is.
func (r *JobApplicationRepository) Update(ctx context.Context, id uuid.UUID, u JobApplicationUpdate) (*db.JobApplication, error) {
	app, err := FindJobApplicationByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	cols := u.columns()
	if len(cols) == 0 && len(u.Skills) == 0 {
		return app, nil
	}
	if len(cols) == 0 {
		err = r.db.WithContext(ctx).
			Model(&db.JobApplication{Identity: db.Identity{ID: id}}).
			UpdateColumn("updated_at", r.db.NowFunc()).Error
		if err != nil {
			return nil, fmt.Errorf("update job application: %w", err)
		}
		return FindJobApplicationByID(ctx, r.db, id)
	}
	if u.CityID != nil {
		if _, err := FindCityByID(ctx, r.db, *u.CityID); err != nil {
			return nil, err
		}
	}

	err = r.db.WithContext(ctx).
		Model(&db.JobApplication{Identity: db.Identity{ID: id}}).
		Updates(cols).Error
	if err != nil {
		return nil, fmt.Errorf("update job application: %w", err)
	}
	return FindJobApplicationByID(ctx, r.db, id)
}
