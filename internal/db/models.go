package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobAdStatus string

const (
	JobAdActive   JobAdStatus = "ACTIVE"
	JobAdArchived JobAdStatus = "ARCHIVED"
)

// JobApplicationStatus controls where an application is visible.
//   - ACTIVE: appears in company searches.
//   - PRIVATE: visible to its creator only.
//   - HIDDEN: reachable by id only.
//   - MATCHED: matched with a job ad.
type JobApplicationStatus string

const (
	JobApplicationActive  JobApplicationStatus = "ACTIVE"
	JobApplicationPrivate JobApplicationStatus = "PRIVATE"
	JobApplicationHidden  JobApplicationStatus = "HIDDEN"
	JobApplicationMatched JobApplicationStatus = "MATCHED"
)

type MatchStatus string

const (
	MatchRequestedByJobAd  MatchStatus = "REQUESTED_BY_JOB_AD"
	MatchRequestedByJobApp MatchStatus = "REQUESTED_BY_JOB_APP"
	MatchAccepted          MatchStatus = "ACCEPTED"
	MatchRejected          MatchStatus = "REJECTED"
)

type ProfessionalStatus string

const (
	ProfessionalActive ProfessionalStatus = "ACTIVE"
	ProfessionalBusy   ProfessionalStatus = "BUSY"
)

type SkillLevel string

const (
	SkillLevelIntern       SkillLevel = "INTERN"
	SkillLevelIntermediate SkillLevel = "INTERMEDIATE"
	SkillLevelAdvanced     SkillLevel = "ADVANCED"
	SkillLevelExpert       SkillLevel = "EXPERT"
)

// Valid reports whether s is one of the known match states.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchRequestedByJobAd, MatchRequestedByJobApp, MatchAccepted, MatchRejected:
		return true
	}
	return false
}

func (s JobAdStatus) Valid() bool {
	return s == JobAdActive || s == JobAdArchived
}

func (s JobApplicationStatus) Valid() bool {
	switch s {
	case JobApplicationActive, JobApplicationPrivate, JobApplicationHidden, JobApplicationMatched:
		return true
	}
	return false
}

func (s ProfessionalStatus) Valid() bool {
	return s == ProfessionalActive || s == ProfessionalBusy
}

func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelIntern, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

// Identity is the UUID primary key shared by every entity except Match.
// The key is assigned on insert when the caller left it empty.
type Identity struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey"`
}

func (i *Identity) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type City struct {
	Identity
	Name string `gorm:"size:128;not null;index"`
}

type Category struct {
	Identity
	Title       string `gorm:"size:128;not null"`
	Description string `gorm:"type:text"`
}

type Skill struct {
	Identity
	CategoryID uuid.UUID `gorm:"type:char(36);not null;index"`
	Name       string    `gorm:"size:128;uniqueIndex;not null"`
}

// PendingSkill is a skill proposed by a company, kept until an operator
// adds it to the catalog by hand.
type PendingSkill struct {
	Identity
	CategoryID  uuid.UUID `gorm:"type:char(36);not null"`
	SubmittedBy uuid.UUID `gorm:"type:char(36);not null;index"`
	Name        string    `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Company posts job ads.
//
// ActiveJobCount and SuccessfulMatchesCount are denormalized counters; they are
// only changed by job ad creation and match acceptance.
type Company struct {
	Identity
	CityID                 uuid.UUID `gorm:"type:char(36);not null;index"`
	City                   City      `gorm:"foreignKey:CityID"`
	Username               string    `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash           string    `gorm:"size:255;not null"`
	Name                   string    `gorm:"size:128;not null"`
	Description            string    `gorm:"type:text"`
	AddressLine            string    `gorm:"size:255"`
	Email                  string    `gorm:"size:255;uniqueIndex;not null"`
	PhoneNumber            string    `gorm:"size:32;uniqueIndex;not null"`
	WebsiteURL             string    `gorm:"size:255"`
	YoutubeVideoID         string    `gorm:"size:64"`
	Logo                   []byte
	ActiveJobCount         int       `gorm:"not null;default:0"`
	SuccessfulMatchesCount int       `gorm:"not null;default:0"`
	CreatedAt              time.Time `gorm:"autoCreateTime"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime"`
}

type Professional struct {
	Identity
	CityID                 uuid.UUID          `gorm:"type:char(36);not null;index"`
	City                   City               `gorm:"foreignKey:CityID"`
	Username               string             `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash           string             `gorm:"size:255;not null"`
	FirstName              string             `gorm:"size:64;not null"`
	LastName               string             `gorm:"size:64;not null"`
	Description            string             `gorm:"type:text"`
	Email                  string             `gorm:"size:255;uniqueIndex;not null"`
	Photo                  []byte
	CV                     []byte
	Status                 ProfessionalStatus `gorm:"size:16;not null;default:'ACTIVE'"`
	ActiveApplicationCount int                `gorm:"not null;default:0"`
	HasPrivateMatches      bool               `gorm:"not null;default:false"`
	JobApplications        []JobApplication   `gorm:"foreignKey:ProfessionalID"`
	CreatedAt              time.Time          `gorm:"autoCreateTime"`
	UpdatedAt              time.Time          `gorm:"autoUpdateTime"`
}

// JobAd is a company's advertisement. Required skills live in job_ad_skills.
//
// Indexes:
//   - idx_job_ad_status_created(status, created_at) backs the default search ordering.
type JobAd struct {
	Identity
	CompanyID   uuid.UUID   `gorm:"type:char(36);not null;index"`
	Company     Company     `gorm:"foreignKey:CompanyID"`
	CategoryID  uuid.UUID   `gorm:"type:char(36);not null;index"`
	Category    Category    `gorm:"foreignKey:CategoryID"`
	LocationID  uuid.UUID   `gorm:"type:char(36);not null;index"`
	Location    City        `gorm:"foreignKey:LocationID"`
	Title       string      `gorm:"size:255;not null"`
	Description string      `gorm:"type:text;not null"`
	SkillLevel  SkillLevel  `gorm:"size:16;not null"`
	MinSalary   float64     `gorm:"type:decimal(10,2);not null"`
	MaxSalary   float64     `gorm:"type:decimal(10,2);not null"`
	Status      JobAdStatus `gorm:"size:16;not null;index:idx_job_ad_status_created,priority:1"`
	Skills      []Skill     `gorm:"many2many:job_ad_skills"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index:idx_job_ad_status_created,priority:2"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`
}

// JobApplication is a professional's profile for one kind of job.
// Skills live in job_application_skills.
type JobApplication struct {
	Identity
	ProfessionalID uuid.UUID            `gorm:"type:char(36);not null;index"`
	Professional   Professional         `gorm:"foreignKey:ProfessionalID"`
	CategoryID     uuid.UUID            `gorm:"type:char(36);not null;index"`
	Category       Category             `gorm:"foreignKey:CategoryID"`
	CityID         uuid.UUID            `gorm:"type:char(36);not null"`
	City           City                 `gorm:"foreignKey:CityID"`
	Name           string               `gorm:"size:255;not null"`
	Description    string               `gorm:"type:text;not null"`
	MinSalary      *float64             `gorm:"type:decimal(10,2)"`
	MaxSalary      *float64             `gorm:"type:decimal(10,2)"`
	IsMain         bool                 `gorm:"not null;default:false"`
	Status         JobApplicationStatus `gorm:"size:16;not null;index"`
	Skills         []Skill              `gorm:"many2many:job_application_skills"`
	CreatedAt      time.Time            `gorm:"autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"autoUpdateTime"`
}

// Match ties one job ad to one job application.
//
// Composite PK: (JobAdID, JobApplicationID)
//   - At most one match per pair; a second insert is a conflict.
//
// Indexes:
//   - idx_match_application_status(job_application_id, status) serves the
//     "requests for my application" views, the PK prefix serves the job ad views.
type Match struct {
	JobAdID          uuid.UUID      `gorm:"type:char(36);primaryKey"`
	JobApplicationID uuid.UUID      `gorm:"type:char(36);primaryKey;index:idx_match_application_status,priority:1"`
	Status           MatchStatus    `gorm:"size:32;not null;index:idx_match_application_status,priority:2"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	JobAd            JobAd          `gorm:"foreignKey:JobAdID"`
	JobApplication   JobApplication `gorm:"foreignKey:JobApplicationID"`
}

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&City{}, &Category{}, &Skill{}, &PendingSkill{},
		&Company{}, &Professional{},
		&JobAd{}, &JobApplication{}, &Match{},
	}
}
