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

// MatchRepository owns the match request lifecycle between job ads and job
// applications.
//
// Match states:
//
//	REQUESTED_BY_JOB_AD | REQUESTED_BY_JOB_APP -> ACCEPTED | REJECTED
//
// UpdateStatus is an unchecked setter, so any state may be written over any
// other. Accept is the only transition with side effects on other entities.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// Create inserts a match request for the pair with the initiating status.
//
// Behavior:
//   - Both sides must exist (NotFound otherwise).
//   - A second request for the same pair fails with Conflict, whether caught by
//     the lookup or by the composite primary key.
//
// Example:
//
//	repo.Create(ctx, adID, appID, db.MatchRequestedByJobApp)
func (r *MatchRepository) Create(ctx context.Context, jobAdID, jobApplicationID uuid.UUID, status db.MatchStatus) (*db.Match, error) {
	m := db.Match{
		JobAdID:          jobAdID,
		JobApplicationID: jobApplicationID,
		Status:           status,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindJobAdByID(ctx, tx, jobAdID); err != nil {
			return err
		}
		if _, err := FindJobApplicationByID(ctx, tx, jobApplicationID); err != nil {
			return err
		}

		_, err := FindMatch(ctx, tx, jobAdID, jobApplicationID)
		switch {
		case err == nil:
			return svcErr.Conflict(kindMatch, matchKey(jobAdID, jobApplicationID))
		case !svcErr.IsNotFound(err):
			return err
		}

		if err := tx.Omit("JobAd", "JobApplication").Create(&m).Error; err != nil {
			if isDuplicate(err) {
				return svcErr.Conflict(kindMatch, matchKey(jobAdID, jobApplicationID))
			}
			return fmt.Errorf("create match: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MatchRepository) Get(ctx context.Context, jobAdID, jobApplicationID uuid.UUID) (*db.Match, error) {
	return FindMatch(ctx, r.db, jobAdID, jobApplicationID)
}

// UpdateStatus overwrites the match status without checking the current one.
// Terminal matches can be reopened this way.
func (r *MatchRepository) UpdateStatus(ctx context.Context, jobAdID, jobApplicationID uuid.UUID, status db.MatchStatus) (*db.Match, error) {
	m, err := FindMatch(ctx, r.db, jobAdID, jobApplicationID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("job_ad_id = ? AND job_application_id = ?", jobAdID, jobApplicationID).
		Update("status", status).Error
	if err != nil {
		return nil, fmt.Errorf("update match status: %w", err)
	}
	m.Status = status
	return m, nil
}

// Accept closes a match and applies its side effects in one transaction:
//
//  1. match          -> ACCEPTED
//  2. professional   -> BUSY
//  3. application    -> MATCHED
//  4. job ad         -> ARCHIVED
//  5. professional.active_application_count - 1
//  6. company.successful_matches_count + 1
//
// Nothing is written when any step fails. Accepting an already accepted
// match applies the counter deltas again.
func (r *MatchRepository) Accept(ctx context.Context, jobAdID, jobApplicationID uuid.UUID) (*db.Match, error) {
	var accepted db.Match

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := FindMatch(ctx, tx, jobAdID, jobApplicationID)
		if err != nil {
			return err
		}
		app, err := findOne[db.JobApplication](ctx, tx, kindJobApplication, "id", jobApplicationID)
		if err != nil {
			return err
		}
		ad, err := findOne[db.JobAd](ctx, tx, kindJobAd, "id", jobAdID)
		if err != nil {
			return err
		}

		steps := []struct {
			name string
			run  func() error
		}{
			{"match", func() error {
				return tx.Model(&db.Match{}).
					Where("job_ad_id = ? AND job_application_id = ?", jobAdID, jobApplicationID).
					Update("status", db.MatchAccepted).Error
			}},
			{"professional", func() error {
				return tx.Model(&db.Professional{}).
					Where("id = ?", app.ProfessionalID).
					Updates(map[string]any{
						"status":                   db.ProfessionalBusy,
						"active_application_count": gorm.Expr("active_application_count - ?", 1),
					}).Error
			}},
			{"job application", func() error {
				return tx.Model(&db.JobApplication{}).
					Where("id = ?", jobApplicationID).
					Update("status", db.JobApplicationMatched).Error
			}},
			{"job ad", func() error {
				return tx.Model(&db.JobAd{}).
					Where("id = ?", jobAdID).
					Update("status", db.JobAdArchived).Error
			}},
			{"company", func() error {
				return tx.Model(&db.Company{}).
					Where("id = ?", ad.CompanyID).
					Update("successful_matches_count", gorm.Expr("successful_matches_count + ?", 1)).Error
			}},
		}
		for _, s := range steps {
			if err := s.run(); err != nil {
				return fmt.Errorf("accept match: update %s: %w", s.name, err)
			}
		}

		accepted = *m
		accepted.Status = db.MatchAccepted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &accepted, nil
}

// ForJobApplication lists job ads that asked to match with the application.
func (r *MatchRepository) ForJobApplication(ctx context.Context, jobApplicationID uuid.UUID, f pagination.Filter) ([]db.Match, error) {
	if _, err := FindJobApplicationByID(ctx, r.db, jobApplicationID); err != nil {
		return nil, err
	}

	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("matches.job_application_id = ? AND matches.status = ?", jobApplicationID, db.MatchRequestedByJobAd).
		Order("matches.created_at DESC, matches.job_ad_id").
		Scopes(f.Scope()).
		Preload("JobAd.Company").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("match requests for job application: %w", err)
	}
	return matches, nil
}

// ForProfessional lists job ads that asked to match with any of the
// professional's ACTIVE applications.
func (r *MatchRepository) ForProfessional(ctx context.Context, professionalID uuid.UUID) ([]db.Match, error) {
	return r.byProfessional(ctx, professionalID, db.MatchRequestedByJobAd, db.JobApplicationActive)
}

// SentByProfessional lists requests the professional's applications sent to
// job ads, regardless of application status.
func (r *MatchRepository) SentByProfessional(ctx context.Context, professionalID uuid.UUID) ([]db.Match, error) {
	return r.byProfessional(ctx, professionalID, db.MatchRequestedByJobApp, "")
}

func (r *MatchRepository) byProfessional(ctx context.Context, professionalID uuid.UUID, status db.MatchStatus, appStatus db.JobApplicationStatus) ([]db.Match, error) {
	if _, err := FindProfessionalByID(ctx, r.db, professionalID); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Joins("JOIN job_applications ON job_applications.id = matches.job_application_id").
		Where("job_applications.professional_id = ? AND matches.status = ?", professionalID, status)
	if appStatus != "" {
		q = q.Where("job_applications.status = ?", appStatus)
	}

	var matches []db.Match
	err := q.
		Order("matches.created_at DESC, matches.job_ad_id").
		Preload("JobAd.Company").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("match requests for professional: %w", err)
	}
	return matches, nil
}

// MatchedAds returns job ads matched to the professional's MATCHED applications.
func (r *MatchRepository) MatchedAds(ctx context.Context, professionalID uuid.UUID) ([]db.JobAd, error) {
	matched := r.db.Session(&gorm.Session{NewDB: true}).
		Table("matches").
		Select("matches.job_ad_id").
		Joins("JOIN job_applications ON job_applications.id = matches.job_application_id").
		Where("job_applications.professional_id = ? AND job_applications.status = ?", professionalID, db.JobApplicationMatched)

	var ads []db.JobAd
	err := r.db.WithContext(ctx).
		Where("job_ads.id IN (?)", matched).
		Order("job_ads.created_at DESC, job_ads.id").
		Preload("Company").
		Preload("Location").
		Find(&ads).Error
	if err != nil {
		return nil, fmt.Errorf("matched ads: %w", err)
	}
	return ads, nil
}

// ForCompany lists applications that asked to match with any of the company's ads.
func (r *MatchRepository) ForCompany(ctx context.Context, companyID uuid.UUID, f pagination.Filter) ([]db.Match, error) {
	if _, err := FindCompanyByID(ctx, r.db, companyID); err != nil {
		return nil, err
	}

	var matches []db.Match
	err := r.db.WithContext(ctx).
		Joins("JOIN job_ads ON job_ads.id = matches.job_ad_id").
		Where("job_ads.company_id = ? AND matches.status = ?", companyID, db.MatchRequestedByJobApp).
		Order("matches.created_at DESC, matches.job_application_id").
		Scopes(f.Scope()).
		Preload("JobApplication.Professional").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("match requests for company: %w", err)
	}
	return matches, nil
}

// Received lists requests applications sent to the job ad.
func (r *MatchRepository) Received(ctx context.Context, jobAdID uuid.UUID) ([]db.Match, error) {
	return r.byJobAd(ctx, jobAdID, db.MatchRequestedByJobApp)
}

// Sent lists requests the job ad sent to applications.
func (r *MatchRepository) Sent(ctx context.Context, jobAdID uuid.UUID) ([]db.Match, error) {
	return r.byJobAd(ctx, jobAdID, db.MatchRequestedByJobAd)
}

func (r *MatchRepository) byJobAd(ctx context.Context, jobAdID uuid.UUID, status db.MatchStatus) ([]db.Match, error) {
	if _, err := FindJobAdByID(ctx, r.db, jobAdID); err != nil {
		return nil, err
	}

	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("job_ad_id = ? AND status = ?", jobAdID, status).
		Order("created_at DESC, job_application_id").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("match requests for job ad: %w", err)
	}
	return matches, nil
}

// CountReceived counts requests applications sent to the job ad.
func (r *MatchRepository) CountReceived(ctx context.Context, jobAdID uuid.UUID) (int64, error) {
	if _, err := FindJobAdByID(ctx, r.db, jobAdID); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("job_ad_id = ? AND status = ?", jobAdID, db.MatchRequestedByJobApp).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count received match requests: %w", err)
	}
	return count, nil
}
