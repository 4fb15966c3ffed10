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

type CompanyCreate struct {
	CityID       uuid.UUID
	Username     string
	PasswordHash string
	Name         string
	Description  string
	AddressLine  string
	Email        string
	PhoneNumber  string
}

// CompanyUpdate is a partial update; nil fields are left untouched.
type CompanyUpdate struct {
	CityID         *uuid.UUID
	Name           *string
	Description    *string
	AddressLine    *string
	Email          *string
	PhoneNumber    *string
	WebsiteURL     *string
	YoutubeVideoID *string
}

func (u CompanyUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.CityID != nil {
		cols["city_id"] = *u.CityID
	}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.AddressLine != nil {
		cols["address_line"] = *u.AddressLine
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.PhoneNumber != nil {
		cols["phone_number"] = *u.PhoneNumber
	}
	if u.WebsiteURL != nil {
		cols["website_url"] = *u.WebsiteURL
	}
	if u.YoutubeVideoID != nil {
		cols["youtube_video_id"] = *u.YoutubeVideoID
	}
	return cols
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: database}
}

func (r *CompanyRepository) List(ctx context.Context, f pagination.Filter) ([]db.Company, error) {
	var companies []db.Company
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Scopes(f.Scope()).
		Preload("City").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*db.Company, error) {
	return FindCompanyByID(ctx, r.db, id)
}

func (r *CompanyRepository) GetByUsername(ctx context.Context, username string) (*db.Company, error) {
	return FindCompanyByUsername(ctx, r.db, username)
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*db.Company, error) {
	return FindCompanyByEmail(ctx, r.db, email)
}

func (r *CompanyRepository) GetByPhone(ctx context.Context, phone string) (*db.Company, error) {
	return FindCompanyByPhone(ctx, r.db, phone)
}

// Create inserts a company. A taken username, email or phone number is a Conflict.
func (r *CompanyRepository) Create(ctx context.Context, in CompanyCreate) (*db.Company, error) {
	if _, err := FindCityByID(ctx, r.db, in.CityID); err != nil {
		return nil, err
	}

	c := db.Company{
		CityID:       in.CityID,
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		Name:         in.Name,
		Description:  in.Description,
		AddressLine:  in.AddressLine,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
	}
	if err := r.db.WithContext(ctx).Omit("City").Create(&c).Error; err != nil {
		if isDuplicate(err) {
			return nil, svcErr.Conflict(kindCompany, in.Username)
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	return FindCompanyByID(ctx, r.db, c.ID)
}

// Update applies the non-nil fields of u; updated_at moves only when one was given.
func (r *CompanyRepository) Update(ctx context.Context, id uuid.UUID, u CompanyUpdate) (*db.Company, error) {
	c, err := FindCompanyByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	cols := u.columns()
	if len(cols) == 0 {
		return c, nil
	}
	if u.CityID != nil {
		if _, err := FindCityByID(ctx, r.db, *u.CityID); err != nil {
			return nil, err
		}
	}

	err = r.db.WithContext(ctx).Model(&db.Company{Identity: db.Identity{ID: id}}).Updates(cols).Error
	if isDuplicate(err) {
		return nil, svcErr.Conflict(kindCompany, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return FindCompanyByID(ctx, r.db, id)
}

// Logo returns the stored logo, NotFound when the company has none.
func (r *CompanyRepository) Logo(ctx context.Context, id uuid.UUID) ([]byte, error) {
	c, err := FindCompanyByID(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if len(c.Logo) == 0 {
		return nil, svcErr.NotFound("company logo", id)
	}
	return c.Logo, nil
}

func (r *CompanyRepository) SetLogo(ctx context.Context, id uuid.UUID, logo []byte) error {
	return setBlob[db.Company](ctx, r.db, kindCompany, id, "logo", logo)
}

func (r *CompanyRepository) ClearLogo(ctx context.Context, id uuid.UUID) error {
	return setBlob[db.Company](ctx, r.db, kindCompany, id, "logo", nil)
}

// setBlob writes a byte column of one row, nil clears it.
func setBlob[T any](ctx context.Context, tx *gorm.DB, kind string, id uuid.UUID, column string, data []byte) error {
	if _, err := findOne[T](ctx, tx, kind, "id", id); err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update(column, data).Error; err != nil {
		return fmt.Errorf("set %s %s: %w", kind, column, err)
	}
	return nil
}
