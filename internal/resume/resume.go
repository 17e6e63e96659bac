// Package resume wraps the loaded resume document and scores it against
// free-text job descriptions.
package resume

import (
	"math"

	"github.com/anixlabs/profilectl/internal/docstore"
	"github.com/anixlabs/profilectl/internal/logging"
	"github.com/anixlabs/profilectl/internal/textmatch"
)

// Fixed keyword lists used by MatchScore. Hits on positive keywords raise
// the score by 10 each, hits on negative keywords lower it by 15 each.
var (
	positiveKeywords = []string{
		"open source", "etl", "ai", "marketing", "dashboard", "python", "machine learning",
	}
	negativeKeywords = []string{
		"enterprise", "terraform", "snowflake", "legacy",
	}
)

// Accessor exposes read-only views over one resume document.
type Accessor struct {
	doc docstore.Document
	log logging.Logger
}

// New wraps a loaded resume document.
func New(doc docstore.Document, log logging.Logger) *Accessor {
	return &Accessor{doc: doc, log: log}
}

// Doc returns the whole resume document.
func (a *Accessor) Doc() docstore.Document { return a.doc }

// Empty reports whether no resume data was loaded.
func (a *Accessor) Empty() bool { return len(a.doc) == 0 }

// PersonalInfo returns the personal_info mapping.
func (a *Accessor) PersonalInfo() map[string]any {
	return docstore.Map(a.doc, "personal_info")
}

// SummaryText returns the free-text summary.
func (a *Accessor) SummaryText() string {
	return docstore.Str(a.doc, "summary")
}

// Skills returns the flat skills sequence.
func (a *Accessor) Skills() []string {
	return docstore.StrSeq(a.doc, "skills")
}

// ExperienceCount returns the number of experience records.
func (a *Accessor) ExperienceCount() int {
	return len(docstore.Seq(a.doc, "experience"))
}

// ProjectCount returns the number of resume project records.
func (a *Accessor) ProjectCount() int {
	return len(docstore.Seq(a.doc, "projects"))
}

// MatchResult is the job-match score plus the raw counts that produced it.
// The counts are returned for observability only.
type MatchResult struct {
	Score         float64 `json:"match_score"`
	SkillMatchPct float64 `json:"skill_match_percentage"`
	SkillsMatched int     `json:"skills_matched"`
	TotalSkills   int     `json:"total_skills"`
	PositiveHits  int     `json:"positive_keywords_found"`
	NegativeHits  int     `json:"negative_keywords_found"`
}

// MatchScore computes an ATS-style score for jobText against the resume:
//
//	clamp(skillPct + 10*positive - 15*negative, 0, 100)
//
// where skillPct is the percentage of resume skills appearing in jobText
// (0 when the resume lists no skills). All matching is case-insensitive
// substring containment; the result is rounded to two decimal places.
func (a *Accessor) MatchScore(jobText string) MatchResult {
	job := textmatch.Fold(jobText)

	skills := a.Skills()
	matched := 0
	for _, s := range skills {
		if textmatch.Contains(job, s) {
			matched++
		}
	}
	skillPct := 0.0
	if len(skills) > 0 {
		skillPct = float64(matched) / float64(len(skills)) * 100
	}

	pos := 0
	for _, kw := range positiveKeywords {
		if textmatch.Contains(job, kw) {
			pos++
		}
	}
	neg := 0
	for _, kw := range negativeKeywords {
		if textmatch.Contains(job, kw) {
			neg++
		}
	}

	final := skillPct + float64(pos)*10 - float64(neg)*15
	final = math.Min(100, math.Max(0, final))

	res := MatchResult{
		Score:         round2(final),
		SkillMatchPct: round2(skillPct),
		SkillsMatched: matched,
		TotalSkills:   len(skills),
		PositiveHits:  pos,
		NegativeHits:  neg,
	}
	a.log.Info("match score calculated", "score", res.Score, "skills_matched", matched)
	return res
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
