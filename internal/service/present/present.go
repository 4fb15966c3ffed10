// Package present projects stored entities onto wire messages.
// Every function is pure; associations that were not loaded project as
// empty display fields.
package present

import (
	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/db"
)

func City(c db.City) *jobmatch.City {
	return &jobmatch.City{Id: c.ID.String(), Name: c.Name}
}

func Cities(cs []db.City) []*jobmatch.City {
	return each(cs, City)
}

func Category(c db.Category) *jobmatch.Category {
	return &jobmatch.Category{Id: c.ID.String(), Title: c.Title, Description: c.Description}
}

func Categories(cs []db.Category) []*jobmatch.Category {
	return each(cs, Category)
}

func Skill(s db.Skill) *jobmatch.Skill {
	return &jobmatch.Skill{Id: s.ID.String(), CategoryId: s.CategoryID.String(), Name: s.Name}
}

func Skills(ss []db.Skill) []*jobmatch.Skill {
	return each(ss, Skill)
}

func PendingSkill(p db.PendingSkill) *jobmatch.PendingSkill {
	return &jobmatch.PendingSkill{
		Id:          p.ID.String(),
		CategoryId:  p.CategoryID.String(),
		SubmittedBy: p.SubmittedBy.String(),
		Name:        p.Name,
		CreatedAt:   p.CreatedAt,
	}
}

func PendingSkills(ps []db.PendingSkill) []*jobmatch.PendingSkill {
	return each(ps, PendingSkill)
}

func Company(c db.Company) *jobmatch.Company {
	return &jobmatch.Company{
		Id:                c.ID.String(),
		Username:          c.Username,
		Name:              c.Name,
		Description:       c.Description,
		AddressLine:       c.AddressLine,
		City:              c.City.Name,
		Email:             c.Email,
		PhoneNumber:       c.PhoneNumber,
		WebsiteUrl:        c.WebsiteURL,
		YoutubeVideoId:    c.YoutubeVideoID,
		HasLogo:           len(c.Logo) > 0,
		ActiveJobAds:      int32(c.ActiveJobCount),
		SuccessfulMatches: int32(c.SuccessfulMatchesCount),
	}
}

func Companies(cs []db.Company) []*jobmatch.Company {
	return each(cs, Company)
}

func Professional(p db.Professional) *jobmatch.Professional {
	return &jobmatch.Professional{
		Id:                     p.ID.String(),
		Username:               p.Username,
		FirstName:              p.FirstName,
		LastName:               p.LastName,
		Description:            p.Description,
		Email:                  p.Email,
		City:                   p.City.Name,
		Status:                 string(p.Status),
		ActiveApplicationCount: int32(p.ActiveApplicationCount),
		HasPrivateMatches:      p.HasPrivateMatches,
		HasPhoto:               len(p.Photo) > 0,
		HasCv:                  len(p.CV) > 0,
	}
}

func Professionals(ps []db.Professional) []*jobmatch.Professional {
	return each(ps, Professional)
}

// Profile assembles the detailed professional view. A nil matched slice
// (private matches) leaves MatchedAds out of the message.
func Profile(p db.Professional, skills []db.Skill, matched []db.JobAd, sent []db.Match) *jobmatch.ProfessionalProfile {
	profile := &jobmatch.ProfessionalProfile{
		Professional:      Professional(p),
		Skills:            Skills(skills),
		SentMatchRequests: MatchRequestAds(sent),
	}
	if matched != nil {
		profile.MatchedAds = each(matched, JobAdPreview)
	}
	return profile
}

func JobAd(a db.JobAd) *jobmatch.JobAd {
	return &jobmatch.JobAd{
		Id:          a.ID.String(),
		CompanyId:   a.CompanyID.String(),
		CompanyName: a.Company.Name,
		CategoryId:  a.CategoryID.String(),
		Category:    a.Category.Title,
		LocationId:  a.LocationID.String(),
		Location:    a.Location.Name,
		Title:       a.Title,
		Description: a.Description,
		SkillLevel:  string(a.SkillLevel),
		MinSalary:   a.MinSalary,
		MaxSalary:   a.MaxSalary,
		Status:      string(a.Status),
		Skills:      Skills(a.Skills),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func JobAds(as []db.JobAd) []*jobmatch.JobAd {
	return each(as, JobAd)
}

func JobAdPreview(a db.JobAd) *jobmatch.JobAdPreview {
	return &jobmatch.JobAdPreview{
		Id:          a.ID.String(),
		Title:       a.Title,
		CompanyName: a.Company.Name,
		Location:    a.Location.Name,
		MinSalary:   a.MinSalary,
		MaxSalary:   a.MaxSalary,
	}
}

func JobApplication(a db.JobApplication) *jobmatch.JobApplication {
	return &jobmatch.JobApplication{
		Id:                    a.ID.String(),
		ProfessionalId:        a.ProfessionalID.String(),
		ProfessionalFirstName: a.Professional.FirstName,
		ProfessionalLastName:  a.Professional.LastName,
		CategoryId:            a.CategoryID.String(),
		City:                  a.City.Name,
		Name:                  a.Name,
		Description:           a.Description,
		MinSalary:             a.MinSalary,
		MaxSalary:             a.MaxSalary,
		IsMain:                a.IsMain,
		Status:                string(a.Status),
		Skills:                Skills(a.Skills),
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func JobApplications(as []db.JobApplication) []*jobmatch.JobApplication {
	return each(as, JobApplication)
}

func Match(m db.Match) *jobmatch.Match {
	return &jobmatch.Match{
		JobAdId:          m.JobAdID.String(),
		JobApplicationId: m.JobApplicationID.String(),
		Status:           string(m.Status),
		CreatedAt:        m.CreatedAt,
	}
}

func Matches(ms []db.Match) []*jobmatch.Match {
	return each(ms, Match)
}

// MatchRequestAd needs m.JobAd and m.JobAd.Company loaded.
func MatchRequestAd(m db.Match) *jobmatch.MatchRequestAd {
	return &jobmatch.MatchRequestAd{
		JobAdId:          m.JobAdID.String(),
		JobApplicationId: m.JobApplicationID.String(),
		Status:           string(m.Status),
		Title:            m.JobAd.Title,
		Description:      m.JobAd.Description,
		CompanyId:        m.JobAd.CompanyID.String(),
		CompanyName:      m.JobAd.Company.Name,
		MinSalary:        m.JobAd.MinSalary,
		MaxSalary:        m.JobAd.MaxSalary,
	}
}

func MatchRequestAds(ms []db.Match) []*jobmatch.MatchRequestAd {
	return each(ms, MatchRequestAd)
}

// MatchRequestApplication needs m.JobApplication and its Professional loaded.
func MatchRequestApplication(m db.Match) *jobmatch.MatchRequestApplication {
	return &jobmatch.MatchRequestApplication{
		JobAdId:               m.JobAdID.String(),
		JobApplicationId:      m.JobApplicationID.String(),
		Status:                string(m.Status),
		Name:                  m.JobApplication.Name,
		Description:           m.JobApplication.Description,
		ProfessionalId:        m.JobApplication.ProfessionalID.String(),
		ProfessionalFirstName: m.JobApplication.Professional.FirstName,
		ProfessionalLastName:  m.JobApplication.Professional.LastName,
		MinSalary:             m.JobApplication.MinSalary,
		MaxSalary:             m.JobApplication.MaxSalary,
	}
}

func MatchRequestApplications(ms []db.Match) []*jobmatch.MatchRequestApplication {
	return each(ms, MatchRequestApplication)
}

// each maps in through fn, always returning a non-nil slice so empty lists
// encode as [] rather than null.
func each[In, Out any](in []In, fn func(In) *Out) []*Out {
	out := make([]*Out, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
