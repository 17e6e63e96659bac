// Package profile aggregates the resume, certificates, and portfolio
// accessors into cross-document views: the verbatim all-data structure, the
// derived profile summary, and the cross-document search.
package profile

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/anixlabs/profilectl/internal/certs"
	"github.com/anixlabs/profilectl/internal/logging"
	"github.com/anixlabs/profilectl/internal/portfolio"
	"github.com/anixlabs/profilectl/internal/resume"
	"github.com/anixlabs/profilectl/internal/textmatch"
)

// certSkillRules maps substrings of coursera certificate titles to inferred
// skill names.
var certSkillRules = []struct {
	substr string
	skill  string
}{
	{"python", "Python"},
	{"machine learning", "Machine Learning"},
	{"ml", "Machine Learning"},
	{"data", "Data Analysis"},
	{"sql", "SQL"},
	{"ai", "AI/GenAI"},
	{"genai", "AI/GenAI"},
}

// Service combines the three domain accessors.
type Service struct {
	Resume    *resume.Accessor
	Certs     *certs.Accessor
	Portfolio *portfolio.Accessor

	log logging.Logger
}

// New builds the aggregator over the three accessors.
func New(r *resume.Accessor, c *certs.Accessor, p *portfolio.Accessor, log logging.Logger) *Service {
	return &Service{Resume: r, Certs: c, Portfolio: p, log: log}
}

// AllData exposes every loaded document verbatim under its own key.
func (s *Service) AllData() map[string]any {
	return map[string]any{
		"resume":       s.Resume.Doc(),
		"certificates": s.Certs.Doc(),
		"portfolio":    s.Portfolio.Doc(),
	}
}

// Education groups the summary's education records.
type Education struct {
	Diplomas             []any `json:"diplomas"`
	LanguageCertificates []any `json:"language_certificates"`
}

// Certifications groups the summary's certification counts.
type Certifications struct {
	CourseraCount int            `json:"coursera_count"`
	Issuers       map[string]int `json:"issuers"`
	Badges        []any          `json:"badges"`
}

// ProjectBrief is the condensed per-project view in a PortfolioBrief.
type ProjectBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// PortfolioBrief is the condensed portfolio view in a Summary.
type PortfolioBrief struct {
	Brand            string         `json:"brand,omitempty"`
	Mission          string         `json:"mission,omitempty"`
	Projects         []ProjectBrief `json:"projects"`
	ProjectCount     int            `json:"project_count"`
	SharedAssetCount int            `json:"shared_asset_count"`
}

// Summary is the derived cross-document profile summary.
type Summary struct {
	PersonalInfo    map[string]any `json:"personal_info"`
	Summary         string         `json:"summary"`
	Skills          []string       `json:"skills"`
	ExperienceCount int            `json:"experience_count"`
	ProjectCount    int            `json:"project_count"`
	Education       Education      `json:"education"`
	Certifications  Certifications `json:"certifications"`
	RepositoryInfo  map[string]any `json:"repository_info"`
	Portfolio       PortfolioBrief `json:"portfolio"`
}

// Summarize builds the profile summary: resume basics, resume skills
// unioned with skills inferred from coursera certificate titles, education
// and certification counts, and the condensed portfolio view. The skill
// union is deduplicated and sorted for stable output.
func (s *Service) Summarize() Summary {
	skillSet := make(map[string]struct{})
	for _, sk := range s.Resume.Skills() {
		skillSet[sk] = struct{}{}
	}

	issuers := make(map[string]int)
	coursera := s.Certs.Category(certs.CatCoursera)
	for _, v := range coursera {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		issuer, _ := m["issuer"].(string)
		if issuer == "" {
			issuer = "Unknown"
		}
		issuers[issuer]++

		title := textmatch.Fold(stringOf(m["title"]))
		for _, rule := range certSkillRules {
			if textmatch.Contains(title, rule.substr) {
				skillSet[rule.skill] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(skillSet))
	for sk := range skillSet {
		skills = append(skills, sk)
	}
	sort.Strings(skills)

	projects := s.Portfolio.Projects()
	briefs := make([]ProjectBrief, 0, len(projects))
	for _, p := range projects {
		briefs = append(briefs, ProjectBrief{ID: p.ID, Name: p.Name, Role: p.Role})
	}

	return Summary{
		PersonalInfo:    s.Resume.PersonalInfo(),
		Summary:         s.Resume.SummaryText(),
		Skills:          skills,
		ExperienceCount: s.Resume.ExperienceCount(),
		ProjectCount:    s.Resume.ProjectCount(),
		Education: Education{
			Diplomas:             s.Certs.Category(certs.CatDiplomas),
			LanguageCertificates: s.Certs.Category(certs.CatLanguages),
		},
		Certifications: Certifications{
			CourseraCount: len(coursera),
			Issuers:       issuers,
			Badges:        s.Certs.Category(certs.CatBadges),
		},
		RepositoryInfo: s.Certs.RepositoryInfo(),
		Portfolio: PortfolioBrief{
			Brand:            s.Portfolio.Brand(),
			Mission:          s.Portfolio.Mission(),
			Projects:         briefs,
			ProjectCount:     len(projects),
			SharedAssetCount: len(s.Portfolio.SharedAssets()),
		},
	}
}

// SearchHit is one cross-document search result. The resume contributes a
// boolean matched flag; certificates and projects contribute their records.
type SearchHit struct {
	Type    string         `json:"type"`
	Matched bool           `json:"matched,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Score   int            `json:"relevance_score,omitempty"`
}

// SearchAll searches every document: a resume flag when the query occurs
// anywhere in the serialized resume, then all certificate hits in category
// order, then portfolio hits in relevance-ranked order.
func (s *Service) SearchAll(query string) []SearchHit {
	var out []SearchHit

	if b, err := yaml.Marshal(s.Resume.Doc()); err != nil {
		s.log.Error("cannot serialize resume for search", "err", err)
	} else if textmatch.Contains(string(b), query) {
		out = append(out, SearchHit{Type: "resume", Matched: true})
	}

	for _, h := range s.Certs.Search(query) {
		out = append(out, SearchHit{Type: h.Type, Data: h.Data})
	}
	for _, sp := range s.Portfolio.Search(query) {
		out = append(out, SearchHit{Type: "project", Data: sp.Project.Raw, Score: sp.Score})
	}

	s.log.Info("cross-document search", "query", query, "hits", len(out))
	return out
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
