package service

import (
	"strings"

	"github.com/pageza/devconnector/backend/internal/models"
	"github.com/pageza/devconnector/backend/internal/types"
)

// ProfileFields is a partial profile update. Nil members are absent and
// leave the stored value untouched.
type ProfileFields struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GitHubUsername *string
	Skills         []string
	// Social replaces the whole stored map when non-nil
	Social map[string]string
}

// NormalizeSkills splits a comma separated list, trimming items and dropping empty ones
func NormalizeSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ProfileFieldsFromRequest keeps only the fields that carry a non-empty value
func ProfileFieldsFromRequest(req types.ProfileRequest) ProfileFields {
	fields := ProfileFields{
		Company:        nonEmpty(req.Company),
		Website:        nonEmpty(req.Website),
		Location:       nonEmpty(req.Location),
		Bio:            nonEmpty(req.Bio),
		Status:         nonEmpty(req.Status),
		GitHubUsername: nonEmpty(req.GitHubUsername),
	}

	if skills := nonEmpty(req.Skills); skills != nil {
		fields.Skills = NormalizeSkills(*skills)
	}

	platforms := map[string]*string{
		"youtube":   req.YouTube,
		"twitter":   req.Twitter,
		"facebook":  req.Facebook,
		"linkedin":  req.LinkedIn,
		"instagram": req.Instagram,
	}
	for name, value := range platforms {
		if v := nonEmpty(value); v != nil {
			if fields.Social == nil {
				fields.Social = map[string]string{}
			}
			fields.Social[name] = *v
		}
	}

	return fields
}

// Apply merges the present fields into p
func (f ProfileFields) Apply(p *models.Profile) {
	setIfPresent(&p.Company, f.Company)
	setIfPresent(&p.Website, f.Website)
	setIfPresent(&p.Location, f.Location)
	setIfPresent(&p.Bio, f.Bio)
	setIfPresent(&p.Status, f.Status)
	setIfPresent(&p.GitHubUsername, f.GitHubUsername)
	if f.Skills != nil {
		p.Skills = f.Skills
	}
	if f.Social != nil {
		p.Social = f.Social
	}
}

// Columns lists the profile columns carried by the present fields
func (f ProfileFields) Columns() []string {
	var cols []string
	add := func(col string, present bool) {
		if present {
			cols = append(cols, col)
		}
	}
	add("company", f.Company != nil)
	add("website", f.Website != nil)
	add("location", f.Location != nil)
	add("bio", f.Bio != nil)
	add("status", f.Status != nil)
	add("github_username", f.GitHubUsername != nil)
	add("skills", f.Skills != nil)
	add("social", f.Social != nil)
	return cols
}

func setIfPresent(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
