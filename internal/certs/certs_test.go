package certs

import (
	"testing"

	"github.com/anixlabs/profilectl/internal/docstore"
	"github.com/anixlabs/profilectl/internal/logging"
)

func testAccessor() *Accessor {
	doc := docstore.Document{
		"certificates": map[string]any{
			"coursera": []any{
				map[string]any{"id": "C1", "title": "Intro to Python", "issuer": "Coursera"},
				map[string]any{"id": "C2", "title": "SQL Basics", "issuer": "DataCamp"},
			},
			"other": []any{
				map[string]any{"title": "Python Bootcamp", "issuer": "Udemy"},
			},
		},
		"diplomas":        []any{map[string]any{"title": "BSc Computer Science"}},
		"languages":       []any{map[string]any{"title": "TOEFL", "language": "English"}},
		"badges":          []any{map[string]any{"title": "Python Badge", "issuer": "Credly"}},
		"repository_info": map[string]any{"url": "github.com/anix-lynch/certs"},
	}
	return New(doc, logging.Nop())
}

func TestCategory(t *testing.T) {
	a := testAccessor()
	if got := len(a.Category(CatCoursera)); got != 2 {
		t.Fatalf("coursera count = %d, want 2", got)
	}
	if got := len(a.Category("unknown")); got != 0 {
		t.Fatalf("unknown category should be empty, got %d", got)
	}
}

func TestSearch_SingleCourseraRecord(t *testing.T) {
	doc := docstore.Document{
		"certificates": map[string]any{
			"coursera": []any{
				map[string]any{"id": "C1", "title": "Intro to Python", "issuer": "Coursera"},
			},
		},
	}
	a := New(doc, logging.Nop())

	hits := a.Search("python")
	if len(hits) != 1 {
		t.Fatalf("expected exactly 1 hit, got %d", len(hits))
	}
	if hits[0].Type != "coursera" {
		t.Fatalf("hit tag = %q, want coursera", hits[0].Type)
	}
	if docstore.Str(hits[0].Data, "id") != "C1" {
		t.Fatalf("hit wraps wrong record: %v", hits[0].Data)
	}
}

func TestSearch_MatchesAcrossCategories(t *testing.T) {
	a := testAccessor()
	hits := a.Search("python")
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits (coursera, other, badge), got %d", len(hits))
	}
	tags := []string{hits[0].Type, hits[1].Type, hits[2].Type}
	want := []string{"coursera", "other", "badge"}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("hit order = %v, want %v", tags, want)
		}
	}
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	a := testAccessor()
	// "" is a substring of every string, so every record is a hit.
	if got := len(a.Search("")); got != 6 {
		t.Fatalf("empty-query hits = %d, want 6", got)
	}
}

func TestByID(t *testing.T) {
	a := testAccessor()
	rec, ok := a.ByID("C2")
	if !ok {
		t.Fatal("expected C2 to be found")
	}
	if rec.Title != "SQL Basics" {
		t.Fatalf("unexpected title: %q", rec.Title)
	}

	if _, ok := a.ByID("nonexistent"); ok {
		t.Fatal("nonexistent id must be a miss, not a hit")
	}
	// Exact match only: ids are not normalized.
	if _, ok := a.ByID("c2"); ok {
		t.Fatal("id comparison must be case-sensitive")
	}
}

func TestByIssuer_CaseInsensitiveSubstring(t *testing.T) {
	a := testAccessor()

	hits := a.ByIssuer("COURSERA")
	if len(hits) != 1 || hits[0].Type != "coursera" {
		t.Fatalf("unexpected hits for COURSERA: %v", hits)
	}

	hits = a.ByIssuer("cred")
	if len(hits) != 1 || hits[0].Type != "badge" {
		t.Fatalf("unexpected hits for cred: %v", hits)
	}
}

func TestEmptyDocumentYieldsEmptyResults(t *testing.T) {
	a := New(docstore.Document{}, logging.Nop())
	if !a.Empty() {
		t.Fatal("expected Empty")
	}
	if got := len(a.Search("python")); got != 0 {
		t.Fatalf("search on empty document returned %d hits", got)
	}
	if got := len(a.Category(CatDiplomas)); got != 0 {
		t.Fatalf("category on empty document returned %d records", got)
	}
}
