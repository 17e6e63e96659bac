package resume

import (
	"testing"

	"github.com/anixlabs/profilectl/internal/docstore"
	"github.com/anixlabs/profilectl/internal/logging"
)

func accessorWithSkills(skills ...any) *Accessor {
	return New(docstore.Document{"skills": skills}, logging.Nop())
}

func TestMatchScore_SkillsAndPositiveKeywords(t *testing.T) {
	a := accessorWithSkills("Python", "SQL")

	// "python" hits one skill and is itself a positive keyword; "etl" is a
	// second positive keyword. 50 + 2*10 = 70.
	res := a.MatchScore("Looking for Python and ETL experts")
	if res.Score != 70.0 {
		t.Fatalf("score = %v, want 70.0", res.Score)
	}
	if res.SkillsMatched != 1 || res.TotalSkills != 2 {
		t.Fatalf("skills matched = %d/%d, want 1/2", res.SkillsMatched, res.TotalSkills)
	}
	if res.SkillMatchPct != 50.0 {
		t.Fatalf("skill pct = %v, want 50.0", res.SkillMatchPct)
	}
	if res.PositiveHits != 2 || res.NegativeHits != 0 {
		t.Fatalf("keyword hits = +%d/-%d, want +2/-0", res.PositiveHits, res.NegativeHits)
	}
}

func TestMatchScore_NoSkillsNoKeywordsIsZero(t *testing.T) {
	a := New(docstore.Document{}, logging.Nop())
	res := a.MatchScore("plumbing work in the north")
	if res.Score != 0.0 {
		t.Fatalf("score = %v, want exactly 0.0", res.Score)
	}
	if res.SkillMatchPct != 0.0 || res.TotalSkills != 0 {
		t.Fatalf("unexpected skill stats: %+v", res)
	}
}

func TestMatchScore_NegativeKeywordsClampToZero(t *testing.T) {
	a := New(docstore.Document{}, logging.Nop())
	res := a.MatchScore("enterprise terraform snowflake legacy stack")
	if res.NegativeHits != 4 {
		t.Fatalf("negative hits = %d, want 4", res.NegativeHits)
	}
	if res.Score != 0.0 {
		t.Fatalf("score = %v, want clamp to 0.0", res.Score)
	}
}

func TestMatchScore_CapsAtHundred(t *testing.T) {
	a := accessorWithSkills("Python")
	// 100% skill match plus positive keyword bonuses must clamp at 100.
	res := a.MatchScore("python machine learning dashboard marketing")
	if res.Score != 100.0 {
		t.Fatalf("score = %v, want cap at 100.0", res.Score)
	}
}

func TestMatchScore_RoundsToTwoDecimals(t *testing.T) {
	a := accessorWithSkills("Golang", "Rust", "Elixir")
	res := a.MatchScore("golang developer wanted")
	if res.Score != 33.33 {
		t.Fatalf("score = %v, want 33.33", res.Score)
	}
	if res.SkillMatchPct != 33.33 {
		t.Fatalf("skill pct = %v, want 33.33", res.SkillMatchPct)
	}
}

func TestMatchScore_Idempotent(t *testing.T) {
	a := accessorWithSkills("Python", "SQL")
	first := a.MatchScore("python and sql")
	second := a.MatchScore("python and sql")
	if first != second {
		t.Fatalf("repeated calls differ: %+v vs %+v", first, second)
	}
}
