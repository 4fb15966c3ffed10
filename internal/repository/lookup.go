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

// Lookup helpers resolve a single entity by key.
//
// Every helper takes the *gorm.DB to run on, so the same call works on the
// root connection and inside a transaction. A missing row is reported as
// svcErr.NotFound(kind, key); any other failure is returned wrapped.

const (
	kindCompany        = "company"
	kindProfessional   = "professional"
	kindJobAd          = "job ad"
	kindJobApplication = "job application"
	kindSkill          = "skill"
	kindPendingSkill   = "pending skill"
	kindCity           = "city"
	kindCategory       = "category"
	kindMatch          = "match"
)

func findOne[T any](ctx context.Context, tx *gorm.DB, kind, column string, key any, preload ...string) (*T, error) {
	var out T
	q := tx.WithContext(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	err := q.Where(column+" = ?", key).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.NotFound(kind, key)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", kind, column, err)
	}
	return &out, nil
}

func FindCompanyByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.Company, error) {
	return findOne[db.Company](ctx, tx, kindCompany, "id", id, "City")
}

func FindCompanyByUsername(ctx context.Context, tx *gorm.DB, username string) (*db.Company, error) {
	return findOne[db.Company](ctx, tx, kindCompany, "username", username, "City")
}

func FindCompanyByEmail(ctx context.Context, tx *gorm.DB, email string) (*db.Company, error) {
	return findOne[db.Company](ctx, tx, kindCompany, "email", email, "City")
}

func FindCompanyByPhone(ctx context.Context, tx *gorm.DB, phone string) (*db.Company, error) {
	return findOne[db.Company](ctx, tx, kindCompany, "phone_number", phone, "City")
}

func FindProfessionalByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.Professional, error) {
	return findOne[db.Professional](ctx, tx, kindProfessional, "id", id, "City")
}

func FindProfessionalByUsername(ctx context.Context, tx *gorm.DB, username string) (*db.Professional, error) {
	return findOne[db.Professional](ctx, tx, kindProfessional, "username", username, "City")
}

func FindJobAdByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.JobAd, error) {
	return findOne[db.JobAd](ctx, tx, kindJobAd, "id", id, "Company", "Category", "Location", "Skills")
}

func FindJobApplicationByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.JobApplication, error) {
	return findOne[db.JobApplication](ctx, tx, kindJobApplication, "id", id, "Professional", "City", "Skills")
}

func FindSkillByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.Skill, error) {
	return findOne[db.Skill](ctx, tx, kindSkill, "id", id)
}

func FindSkillByName(ctx context.Context, tx *gorm.DB, name string) (*db.Skill, error) {
	return findOne[db.Skill](ctx, tx, kindSkill, "name", name)
}

func FindCityByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.City, error) {
	return findOne[db.City](ctx, tx, kindCity, "id", id)
}

func FindCityByName(ctx context.Context, tx *gorm.DB, name string) (*db.City, error) {
	return findOne[db.City](ctx, tx, kindCity, "name", name)
}

func FindCategoryByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*db.Category, error) {
	return findOne[db.Category](ctx, tx, kindCategory, "id", id)
}

// FindMatch resolves the match for a job ad / job application pair.
func FindMatch(ctx context.Context, tx *gorm.DB, jobAdID, jobApplicationID uuid.UUID) (*db.Match, error) {
	var m db.Match
	err := tx.WithContext(ctx).
		Where("job_ad_id = ? AND job_application_id = ?", jobAdID, jobApplicationID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.NotFound(kindMatch, matchKey(jobAdID, jobApplicationID))
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	return &m, nil
}

func matchKey(jobAdID, jobApplicationID uuid.UUID) string {
	return fmt.Sprintf("(job_ad_id=%s, job_application_id=%s)", jobAdID, jobApplicationID)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
