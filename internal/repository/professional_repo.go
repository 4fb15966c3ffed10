package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/utils/pagination"
)

type ProfessionalCreate struct {
	CityID       uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Description  string
	Email        string
}

// ProfessionalUpdate is a partial update; nil fields are left untouched.
type ProfessionalUpdate struct {
	CityID      *uuid.UUID
	FirstName   *string
	LastName    *string
	Description *string
	Email       *string
	Status      *db.ProfessionalStatus
}

func (u ProfessionalUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.CityID != nil {
		cols["city_id"] = *u.CityID
	}
	if u.FirstName != nil {
		cols["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		cols["last_name"] = *u.LastName
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

type ProfessionalRepository struct {
	db *gorm.DB
}

func NewProfessionalRepository(database *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: database}
}

// List returns ACTIVE professionals ordered by created_at or updated_at.
func (r *ProfessionalRepository) List(ctx context.Context, f pagination.Filter, orderBy, order string) ([]db.Professional, error) {
	var pros []db.Professional
	err := r.db.WithContext(ctx).
		Where("professionals.status = ?", db.ProfessionalActive).
		Order(orderClause("professionals", orderBy, order)).
		Scopes(f.Scope()).
		Preload("City").
		Find(&pros).Error
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return pros, nil
}

func (r *ProfessionalRepository) GetByID(ctx context.Context, id uuid.UUID) (*db.Professional, error) {
	return FindProfessionalByID(ctx, r.db, id)
}

func (r *ProfessionalRepository) GetByUsername(ctx context.Context, username string) (*db.Professional, error) {
	return FindProfessionalByUsername(ctx, r.db, username)
}

// Create inserts an ACTIVE professional. A taken username or email is a Conflict.
func (r *ProfessionalRepository) Create(ctx context.Context, in ProfessionalCreate) (*db.Professional, error) {
	if _, err := FindCityByID(ctx, r.db, in.CityID); err != nil {
		return nil, err
	}

	p := db.Professional{
		CityID:       in.CityID,
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Description:  in.Description,
		Email:        in.Email,
		Status:       db.ProfessionalActive,
	}
	if err := r.db.WithContext(ctx).Omit("City", "JobApplications").Create(&p).Error; err != nil {
		if isDuplicate(err) {
			return nil, svcErr.Conflict(kindProfessional, in.Username)
		}
		return nil, fmt.Errorf("create professional: %w", err)
	}
	return FindProfessionalByID(ctx, r.db, p.ID)
}

// Update applies the non-nil fields of u; updated_at moves only when one was given.
func (r *ProfessionalRepository) Update(ctx context.Context, id uuid.UUID, u ProfessionalUpdate) (*db.Professional, error) {
	p, err := FindProfessionalByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	cols := u.columns()
	if len(cols) == 0 {
		return p, nil
	}
	if u.CityID != nil {
		if _, err := FindCityByID(ctx, r.db, *u.CityID); err != nil {
			return nil, err
		}
	}

	err = r.db.WithContext(ctx).Model(&db.Professional{Identity: db.Identity{ID: id}}).Updates(cols).Error
	if isDuplicate(err) {
		return nil, svcErr.Conflict(kindProfessional, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update professional: %w", err)
	}
	return FindProfessionalByID(ctx, r.db, id)
}

// SetPrivateMatches toggles whether matched ads and MATCHED applications are hidden.
func (r *ProfessionalRepository) SetPrivateMatches(ctx context.Context, id uuid.UUID, private bool) error {
	if _, err := FindProfessionalByID(ctx, r.db, id); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).
		Model(&db.Professional{}).
		Where("id = ?", id).
		Update("has_private_matches", private).Error
	if err != nil {
		return fmt.Errorf("set private matches: %w", err)
	}
	return nil
}

// Skills returns the distinct skills across all of the professional's applications.
func (r *ProfessionalRepository) Skills(ctx context.Context, id uuid.UUID) ([]db.Skill, error) {
	if _, err := FindProfessionalByID(ctx, r.db, id); err != nil {
		return nil, err
	}

	owned := r.db.Session(&gorm.Session{NewDB: true}).
		Table("job_application_skills").
		Select("job_application_skills.skill_id").
		Joins("JOIN job_applications ON job_applications.id = job_application_skills.job_application_id").
		Where("job_applications.professional_id = ?", id)

	var skills []db.Skill
	err := r.db.WithContext(ctx).
		Where("skills.id IN (?)", owned).
		Order("skills.name").
		Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("professional skills: %w", err)
	}
	return skills, nil
}

// Applications lists the professional's applications with the given status.
// Asking for MATCHED applications of a professional with private matches is Forbidden.
func (r *ProfessionalRepository) Applications(ctx context.Context, id uuid.UUID, status db.JobApplicationStatus, f pagination.Filter) ([]db.JobApplication, error) {
	p, err := FindProfessionalByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if p.HasPrivateMatches && status == db.JobApplicationMatched {
		return nil, svcErr.Forbidden("professional has set their matches to private")
	}
	return NewJobApplicationRepository(r.db).ListForProfessional(ctx, id, status, f)
}

// Application returns one of the professional's applications.
func (r *ProfessionalRepository) Application(ctx context.Context, id, jobApplicationID uuid.UUID) (*db.JobApplication, error) {
	app, err := FindJobApplicationByID(ctx, r.db, jobApplicationID)
	if err != nil {
		return nil, err
	}
	if app.ProfessionalID != id {
		return nil, svcErr.NotFound(kindJobApplication, jobApplicationID)
	}
	return app, nil
}

func (r *ProfessionalRepository) Photo(ctx context.Context, id uuid.UUID) ([]byte, error) {
	p, err := FindProfessionalByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if len(p.Photo) == 0 {
		return nil, svcErr.NotFound("professional photo", id)
	}
	return p.Photo, nil
}

func (r *ProfessionalRepository) SetPhoto(ctx context.Context, id uuid.UUID, photo []byte) error {
	return setBlob[db.Professional](ctx, r.db, kindProfessional, id, "photo", photo)
}

func (r *ProfessionalRepository) CV(ctx context.Context, id uuid.UUID) ([]byte, error) {
	p, err := FindProfessionalByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if len(p.CV) == 0 {
		return nil, svcErr.NotFound("professional cv", id)
	}
	return p.CV, nil
}

func (r *ProfessionalRepository) SetCV(ctx context.Context, id uuid.UUID, cv []byte) error {
	return setBlob[db.Professional](ctx, r.db, kindProfessional, id, "cv", cv)
}

func (r *ProfessionalRepository) ClearCV(ctx context.Context, id uuid.UUID) error {
	return setBlob[db.Professional](ctx, r.db, kindProfessional, id, "cv", nil)
}
