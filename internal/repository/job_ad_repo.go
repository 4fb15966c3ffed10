package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/jobmatch/internal/db"
	svcErr "github.com/oggyb/jobmatch/internal/errors"
	"github.com/oggyb/jobmatch/internal/utils/pagination"
)

// Ordering for list queries.
const (
	OrderByCreatedAt = "created_at"
	OrderByUpdatedAt = "updated_at"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// JobAdSearch holds the search criteria for job ads. Zero values mean
// "no constraint", except Status which defaults to ACTIVE.
type JobAdSearch struct {
	CompanyID  *uuid.UUID
	LocationID *uuid.UUID
	Title      string
	Status     db.JobAdStatus

	// MinSalary/MaxSalary describe the band the searcher wants. The ad's own
	// band is widened by SalaryThreshold on both sides before the overlap test.
	MinSalary       *float64
	MaxSalary       *float64
	SalaryThreshold float64

	// Skills an ad should require. An ad qualifies when it requires at least
	// len(Skills)-SkillsThreshold of them (names compared case-insensitively).
	Skills          []string
	SkillsThreshold int

	OrderBy string
	Order   string
}

type JobAdCreate struct {
	CompanyID   uuid.UUID
	CategoryID  uuid.UUID
	LocationID  uuid.UUID
	Title       string
	Description string
	SkillLevel  db.SkillLevel
	MinSalary   float64
	MaxSalary   float64
	Skills      []string
}

// JobAdUpdate is a partial update; nil fields are left untouched.
type JobAdUpdate struct {
	Title       *string
	Description *string
	SkillLevel  *db.SkillLevel
	LocationID  *uuid.UUID
	MinSalary   *float64
	MaxSalary   *float64
	Status      *db.JobAdStatus
}

func (u JobAdUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.SkillLevel != nil {
		cols["skill_level"] = *u.SkillLevel
	}
	if u.LocationID != nil {
		cols["location_id"] = *u.LocationID
	}
	if u.MinSalary != nil {
		cols["min_salary"] = *u.MinSalary
	}
	if u.MaxSalary != nil {
		cols["max_salary"] = *u.MaxSalary
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	return cols
}

// JobAdRepository provides data access for job ads, including the search engine.
type JobAdRepository struct {
	db *gorm.DB
}

func NewJobAdRepository(database *gorm.DB) *JobAdRepository {
	return &JobAdRepository{db: database}
}

// Search returns job ads matching s, ordered and paginated by f.
//
// Behavior:
//   - Equality filters: company, location, status (default ACTIVE).
//   - Title: case-insensitive substring.
//   - Salary: ad.min - threshold <= wanted max (unbounded when nil)
//     AND ad.max + threshold >= wanted min (0 when nil).
//   - Skills: at least len(Skills)-SkillsThreshold distinct matching skills;
//     no constraint when that number is 0.
//   - Ordered by created_at|updated_at asc|desc (default created_at desc),
//     then offset/limit.
//
// Example:
//
//	repo.Search(ctx, pagination.Filter{Limit: 10}, JobAdSearch{Skills: []string{"Go", "SQL"}, SkillsThreshold: 1})
func (r *JobAdRepository) Search(ctx context.Context, f pagination.Filter, s JobAdSearch) ([]db.JobAd, error) {
	query := r.db.WithContext(ctx).Model(&db.JobAd{})

	query = filterJobAdsByFields(query, s)
	query = filterJobAdsBySalary(query, s)
	query = filterJobAdsBySkills(query, s)
	query = query.Order(orderClause("job_ads", s.OrderBy, s.Order))

	var ads []db.JobAd
	err := query.
		Scopes(f.Scope()).
		Preload("Company").
		Preload("Category").
		Preload("Location").
		Preload("Skills").
		Find(&ads).Error
	if err != nil {
		return nil, fmt.Errorf("search job ads: %w", err)
	}
	return ads, nil
}

func filterJobAdsByFields(q *gorm.DB, s JobAdSearch) *gorm.DB {
	if s.CompanyID != nil {
		q = q.Where("job_ads.company_id = ?", *s.CompanyID)
	}
	if s.Title != "" {
		q = q.Where("LOWER(job_ads.title) LIKE ?", "%"+strings.ToLower(s.Title)+"%")
	}
	if s.LocationID != nil {
		q = q.Where("job_ads.location_id = ?", *s.LocationID)
	}
	status := s.Status
	if status == "" {
		status = db.JobAdActive
	}
	return q.Where("job_ads.status = ?", status)
}

func filterJobAdsBySalary(q *gorm.DB, s JobAdSearch) *gorm.DB {
	// wanted max of +inf always holds, so only a bounded max adds a predicate
	if s.MaxSalary != nil {
		q = q.Where("job_ads.min_salary - ? <= ?", s.SalaryThreshold, *s.MaxSalary)
	}
	wantedMin := 0.0
	if s.MinSalary != nil {
		wantedMin = *s.MinSalary
	}
	return q.Where("job_ads.max_salary + ? >= ?", s.SalaryThreshold, wantedMin)
}

func filterJobAdsBySkills(q *gorm.DB, s JobAdSearch) *gorm.DB {
	required := RequiredSkillMatches(len(s.Skills), s.SkillsThreshold)
	if required == 0 {
		return q
	}

	names := make([]string, len(s.Skills))
	for i, name := range s.Skills {
		names[i] = strings.ToLower(name)
	}

	matching := q.Session(&gorm.Session{NewDB: true}).
		Table("job_ad_skills").
		Select("job_ad_skills.job_ad_id").
		Joins("JOIN skills ON skills.id = job_ad_skills.skill_id").
		Where("LOWER(skills.name) IN ?", names).
		Group("job_ad_skills.job_ad_id").
		Having("COUNT(DISTINCT skills.id) >= ?", required)

	return q.Where("job_ads.id IN (?)", matching)
}

// RequiredSkillMatches is how many of n requested skills an ad must have
// when the searcher tolerates threshold missing ones.
func RequiredSkillMatches(n, threshold int) int {
	return max(n-threshold, 0)
}

func orderClause(table, orderBy, order string) string {
	column := OrderByCreatedAt
	if orderBy == OrderByUpdatedAt {
		column = OrderByUpdatedAt
	}
	direction := "DESC"
	if strings.EqualFold(order, OrderAsc) {
		direction = "ASC"
	}
	return fmt.Sprintf("%[1]s.%[2]s %[3]s, %[1]s.id %[3]s", table, column, direction)
}

func (r *JobAdRepository) GetByID(ctx context.Context, id uuid.UUID) (*db.JobAd, error) {
	return FindJobAdByID(ctx, r.db, id)
}

// Create inserts an ACTIVE job ad with its required skills and bumps the
// company's active job counter, in one transaction.
//
// Fails with NotFound when the company, city, category or any skill is unknown.
func (r *JobAdRepository) Create(ctx context.Context, in JobAdCreate) (*db.JobAd, error) {
	var id uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FindCompanyByID(ctx, tx, in.CompanyID); err != nil {
			return err
		}
		if _, err := FindCityByID(ctx, tx, in.LocationID); err != nil {
			return err
		}
		if _, err := FindCategoryByID(ctx, tx, in.CategoryID); err != nil {
			return err
		}
		skills, err := resolveSkills(ctx, tx, in.Skills)
		if err != nil {
			return err
		}

		ad := db.JobAd{
			CompanyID:   in.CompanyID,
			CategoryID:  in.CategoryID,
			LocationID:  in.LocationID,
			Title:       in.Title,
			Description: in.Description,
			SkillLevel:  in.SkillLevel,
			MinSalary:   in.MinSalary,
			MaxSalary:   in.MaxSalary,
			Status:      db.JobAdActive,
			Skills:      skills,
		}
		if err := tx.Omit("Skills.*").Create(&ad).Error; err != nil {
			return fmt.Errorf("create job ad: %w", err)
		}
		id = ad.ID

		return tx.Model(&db.Company{}).
			Where("id = ?", in.CompanyID).
			UpdateColumn("active_job_count", gorm.Expr("active_job_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return FindJobAdByID(ctx, r.db, id)
}

// Update applies the non-nil fields of u. updated_at only moves when at
// least one field was given; an empty update performs no write.
func (r *JobAdRepository) Update(ctx context.Context, id uuid.UUID, u JobAdUpdate) (*db.JobAd, error) {
	ad, err := FindJobAdByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	cols := u.columns()
	if len(cols) == 0 {
		return ad, nil
	}
	if u.LocationID != nil {
		if _, err := FindCityByID(ctx, r.db, *u.LocationID); err != nil {
			return nil, err
		}
	}

	if err := r.db.WithContext(ctx).Model(&db.JobAd{Identity: db.Identity{ID: id}}).Updates(cols).Error; err != nil {
		return nil, fmt.Errorf("update job ad: %w", err)
	}
	return FindJobAdByID(ctx, r.db, id)
}

// AddSkillRequirement attaches a skill to a job ad.
// Fails with Conflict when the ad already requires that skill.
func (r *JobAdRepository) AddSkillRequirement(ctx context.Context, jobAdID, skillID uuid.UUID) error {
	ad, err := FindJobAdByID(ctx, r.db, jobAdID)
	if err != nil {
		return err
	}
	skill, err := FindSkillByID(ctx, r.db, skillID)
	if err != nil {
		return err
	}

	for _, s := range ad.Skills {
		if s.ID == skill.ID {
			return svcErr.Conflict("skill requirement", fmt.Sprintf("%s on job ad %s", skillID, jobAdID))
		}
	}

	err = r.db.WithContext(ctx).
		Model(&db.JobAd{Identity: db.Identity{ID: jobAdID}}).
		Omit("Skills.*").
		Association("Skills").
		Append(skill)
	if err != nil {
		return fmt.Errorf("add skill requirement: %w", err)
	}
	return nil
}

// resolveSkills looks up every skill by exact name, failing on the first unknown one.
func resolveSkills(ctx context.Context, tx *gorm.DB, names []string) ([]db.Skill, error) {
	skills := make([]db.Skill, 0, len(names))
	seen := make(map[uuid.UUID]struct{}, len(names))
	for _, name := range names {
		skill, err := FindSkillByName(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[skill.ID]; dup {
			continue
		}
		seen[skill.ID] = struct{}{}
		skills = append(skills, *skill)
	}
	return skills, nil
}
