package textmatch

import "testing"

func TestContains_CaseInsensitive(t *testing.T) {
	if !Contains("Intro to Python", "PYTHON") {
		t.Fatal("expected case-insensitive match")
	}
	if Contains("Intro to Python", "golang") {
		t.Fatal("unexpected match")
	}
}

func TestContains_EmptyNeedleMatchesEverything(t *testing.T) {
	if !Contains("anything", "") {
		t.Fatal("empty needle must match")
	}
	if !Contains("", "") {
		t.Fatal("empty needle must match empty haystack")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("sql", "Intro to Python", "SQL Basics") {
		t.Fatal("expected match in second field")
	}
	if ContainsAny("rust", "Intro to Python", "SQL Basics") {
		t.Fatal("unexpected match")
	}
}
