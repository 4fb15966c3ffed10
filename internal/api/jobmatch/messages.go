package jobmatch

import "time"

// Wire messages. Identifiers travel as canonical UUID strings; optional
// fields of partial updates are pointers and are left untouched when absent.

type Empty struct{}

type Ack struct {
	Message string `json:"message"`
}

type IDRequest struct {
	Id string `json:"id"`
}

type PageRequest struct {
	Offset int32 `json:"offset,omitempty"`
	Limit  int32 `json:"limit,omitempty"`
}

type OwnerPageRequest struct {
	Id     string `json:"id"`
	Offset int32  `json:"offset,omitempty"`
	Limit  int32  `json:"limit,omitempty"`
}

type BlobRequest struct {
	Id   string `json:"id"`
	Data []byte `json:"data"`
}

type Blob struct {
	Data []byte `json:"data"`
}

type Count struct {
	Count int64 `json:"count"`
}

// --- catalog ---

type City struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type CityList struct {
	Cities []*City `json:"cities"`
}

// GetCityRequest looks a city up by Id, or by Name when Id is empty.
type GetCityRequest struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Category struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CategoryList struct {
	Categories []*Category `json:"categories"`
}

type Skill struct {
	Id         string `json:"id"`
	CategoryId string `json:"category_id"`
	Name       string `json:"name"`
}

type SkillList struct {
	Skills []*Skill `json:"skills"`
}

type CreateSkillRequest struct {
	CategoryId string `json:"category_id"`
	Name       string `json:"name"`
}

type ProposeSkillRequest struct {
	CompanyId  string `json:"company_id"`
	CategoryId string `json:"category_id"`
	Name       string `json:"name"`
}

type PendingSkill struct {
	Id          string    `json:"id"`
	CategoryId  string    `json:"category_id"`
	SubmittedBy string    `json:"submitted_by"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

type PendingSkillList struct {
	PendingSkills []*PendingSkill `json:"pending_skills"`
}

// --- companies ---

type Company struct {
	Id                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	AddressLine       string `json:"address_line"`
	City              string `json:"city"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	WebsiteUrl        string `json:"website_url,omitempty"`
	YoutubeVideoId    string `json:"youtube_video_id,omitempty"`
	HasLogo           bool   `json:"has_logo"`
	ActiveJobAds      int32  `json:"active_job_ads"`
	SuccessfulMatches int32  `json:"successful_matches"`
}

type CompanyList struct {
	Companies []*Company `json:"companies"`
}

// GetCompanyRequest looks a company up by the first non-empty key in the
// order Id, Username, Email, PhoneNumber.
type GetCompanyRequest struct {
	Id          string `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type CreateCompanyRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AddressLine string `json:"address_line"`
	CityId      string `json:"city_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type UpdateCompanyRequest struct {
	Id             string  `json:"id"`
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	AddressLine    *string `json:"address_line,omitempty"`
	CityId         *string `json:"city_id,omitempty"`
	Email          *string `json:"email,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	WebsiteUrl     *string `json:"website_url,omitempty"`
	YoutubeVideoId *string `json:"youtube_video_id,omitempty"`
}

// --- professionals ---

type Professional struct {
	Id                     string `json:"id"`
	Username               string `json:"username"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	Description            string `json:"description"`
	Email                  string `json:"email"`
	City                   string `json:"city"`
	Status                 string `json:"status"`
	ActiveApplicationCount int32  `json:"active_application_count"`
	HasPrivateMatches      bool   `json:"has_private_matches"`
	HasPhoto               bool   `json:"has_photo"`
	HasCv                  bool   `json:"has_cv"`
}

type ProfessionalList struct {
	Professionals []*Professional `json:"professionals"`
}

// ProfessionalProfile is the detailed view. MatchedAds is absent when the
// professional keeps matches private.
type ProfessionalProfile struct {
	Professional      *Professional     `json:"professional"`
	Skills            []*Skill          `json:"skills"`
	MatchedAds        []*JobAdPreview   `json:"matched_ads,omitempty"`
	SentMatchRequests []*MatchRequestAd `json:"sent_match_requests"`
}

type ListProfessionalsRequest struct {
	Offset  int32  `json:"offset,omitempty"`
	Limit   int32  `json:"limit,omitempty"`
	OrderBy string `json:"order_by,omitempty"`
	Order   string `json:"order,omitempty"`
}

type CreateProfessionalRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	CityId      string `json:"city_id"`
}

type UpdateProfessionalRequest struct {
	Id          string  `json:"id"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Email       *string `json:"email,omitempty"`
	CityId      *string `json:"city_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type SetPrivateMatchesRequest struct {
	Id      string `json:"id"`
	Private bool   `json:"private"`
}

type ListProfessionalApplicationsRequest struct {
	Id     string `json:"id"`
	Status string `json:"status,omitempty"`
	Offset int32  `json:"offset,omitempty"`
	Limit  int32  `json:"limit,omitempty"`
}

type ProfessionalApplicationRequest struct {
	ProfessionalId   string `json:"professional_id"`
	JobApplicationId string `json:"job_application_id"`
}

// --- job ads ---

type JobAd struct {
	Id          string    `json:"id"`
	CompanyId   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	CategoryId  string    `json:"category_id"`
	Category    string    `json:"category"`
	LocationId  string    `json:"location_id"`
	Location    string    `json:"location"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SkillLevel  string    `json:"skill_level"`
	MinSalary   float64   `json:"min_salary"`
	MaxSalary   float64   `json:"max_salary"`
	Status      string    `json:"status"`
	Skills      []*Skill  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JobAdList struct {
	JobAds []*JobAd `json:"job_ads"`
}

type JobAdPreview struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	CompanyName string  `json:"company_name"`
	Location    string  `json:"location"`
	MinSalary   float64 `json:"min_salary"`
	MaxSalary   float64 `json:"max_salary"`
}

type SearchJobAdsRequest struct {
	Offset          int32    `json:"offset,omitempty"`
	Limit           int32    `json:"limit,omitempty"`
	CompanyId       string   `json:"company_id,omitempty"`
	LocationId      string   `json:"location_id,omitempty"`
	Title           string   `json:"title,omitempty"`
	Status          string   `json:"status,omitempty"`
	MinSalary       *float64 `json:"min_salary,omitempty"`
	MaxSalary       *float64 `json:"max_salary,omitempty"`
	SalaryThreshold float64  `json:"salary_threshold,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	SkillsThreshold int32    `json:"skills_threshold,omitempty"`
	OrderBy         string   `json:"order_by,omitempty"`
	Order           string   `json:"order,omitempty"`
}

type CreateJobAdRequest struct {
	CompanyId   string   `json:"company_id"`
	CategoryId  string   `json:"category_id"`
	LocationId  string   `json:"location_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SkillLevel  string   `json:"skill_level"`
	MinSalary   float64  `json:"min_salary"`
	MaxSalary   float64  `json:"max_salary"`
	Skills      []string `json:"skills,omitempty"`
}

type UpdateJobAdRequest struct {
	Id          string   `json:"id"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	SkillLevel  *string  `json:"skill_level,omitempty"`
	LocationId  *string  `json:"location_id,omitempty"`
	MinSalary   *float64 `json:"min_salary,omitempty"`
	MaxSalary   *float64 `json:"max_salary,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type AddSkillRequirementRequest struct {
	JobAdId string `json:"job_ad_id"`
	SkillId string `json:"skill_id"`
}

// --- job applications ---

type JobApplication struct {
	Id                    string    `json:"id"`
	ProfessionalId        string    `json:"professional_id"`
	ProfessionalFirstName string    `json:"professional_first_name"`
	ProfessionalLastName  string    `json:"professional_last_name"`
	CategoryId            string    `json:"category_id"`
	City                  string    `json:"city"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	MinSalary             *float64  `json:"min_salary,omitempty"`
	MaxSalary             *float64  `json:"max_salary,omitempty"`
	IsMain                bool      `json:"is_main"`
	Status                string    `json:"status"`
	Skills                []*Skill  `json:"skills"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type JobApplicationList struct {
	JobApplications []*JobApplication `json:"job_applications"`
}

type SearchJobApplicationsRequest struct {
	Offset  int32    `json:"offset,omitempty"`
	Limit   int32    `json:"limit,omitempty"`
	Status  string   `json:"status,omitempty"`
	Skills  []string `json:"skills,omitempty"`
	OrderBy string   `json:"order_by,omitempty"`
	Order   string   `json:"order,omitempty"`
}

type CreateJobApplicationRequest struct {
	ProfessionalId string   `json:"professional_id"`
	CategoryId     string   `json:"category_id"`
	CityId         string   `json:"city_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	MinSalary      *float64 `json:"min_salary,omitempty"`
	MaxSalary      *float64 `json:"max_salary,omitempty"`
	IsMain         bool     `json:"is_main"`
	Status         string   `json:"status,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

type UpdateJobApplicationRequest struct {
	Id          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	CityId      *string  `json:"city_id,omitempty"`
	MinSalary   *float64 `json:"min_salary,omitempty"`
	MaxSalary   *float64 `json:"max_salary,omitempty"`
	IsMain      *bool    `json:"is_main,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// --- matches ---

type Match struct {
	JobAdId          string    `json:"job_ad_id"`
	JobApplicationId string    `json:"job_application_id"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type MatchList struct {
	Matches []*Match `json:"matches"`
}

type MatchKey struct {
	JobAdId          string `json:"job_ad_id"`
	JobApplicationId string `json:"job_application_id"`
}

type CreateMatchRequest struct {
	JobAdId          string `json:"job_ad_id"`
	JobApplicationId string `json:"job_application_id"`
	Status           string `json:"status"`
}

type UpdateMatchStatusRequest struct {
	JobAdId          string `json:"job_ad_id"`
	JobApplicationId string `json:"job_application_id"`
	Status           string `json:"status"`
}

// MatchRequestAd is a match request seen from the application side: the
// match plus the display fields of the job ad that sent or received it.
type MatchRequestAd struct {
	JobAdId          string  `json:"job_ad_id"`
	JobApplicationId string  `json:"job_application_id"`
	Status           string  `json:"status"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	CompanyId        string  `json:"company_id"`
	CompanyName      string  `json:"company_name"`
	MinSalary        float64 `json:"min_salary"`
	MaxSalary        float64 `json:"max_salary"`
}

type MatchRequestAdList struct {
	Requests []*MatchRequestAd `json:"requests"`
}

// MatchRequestApplication is a match request seen from the company side.
type MatchRequestApplication struct {
	JobAdId               string   `json:"job_ad_id"`
	JobApplicationId      string   `json:"job_application_id"`
	Status                string   `json:"status"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	ProfessionalId        string   `json:"professional_id"`
	ProfessionalFirstName string   `json:"professional_first_name"`
	ProfessionalLastName  string   `json:"professional_last_name"`
	MinSalary             *float64 `json:"min_salary,omitempty"`
	MaxSalary             *float64 `json:"max_salary,omitempty"`
}

type MatchRequestApplicationList struct {
	Requests []*MatchRequestApplication `json:"requests"`
}
