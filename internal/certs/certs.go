// Package certs wraps the loaded certificates document: category getters,
// id and issuer lookups, and cross-category keyword search.
//
// Category data is returned verbatim (raw mappings), since the archive's
// per-record schema is open-ended; matching runs on a typed projection of
// the fields each category is searched by.
package certs

import (
	"github.com/anixlabs/profilectl/internal/docstore"
	"github.com/anixlabs/profilectl/internal/logging"
	"github.com/anixlabs/profilectl/internal/textmatch"
)

// Category names accepted by Category.
const (
	CatCoursera  = "coursera"
	CatOther     = "other"
	CatDiplomas  = "diplomas"
	CatLanguages = "languages"
	CatBadges    = "badges"
)

var categoryPaths = map[string][]string{
	CatCoursera:  {"certificates", "coursera"},
	CatOther:     {"certificates", "other"},
	CatDiplomas:  {"diplomas"},
	CatLanguages: {"languages"},
	CatBadges:    {"badges"},
}

// searchPlan lists, per category, the result tag and the record fields the
// query is matched against.
var searchPlan = []struct {
	cat    string
	tag    string
	fields func(Record) []string
}{
	{CatCoursera, "coursera", func(r Record) []string { return []string{r.Title, r.Issuer, r.ID} }},
	{CatOther, "other", func(r Record) []string { return []string{r.Title, r.Issuer} }},
	{CatDiplomas, "diploma", func(r Record) []string { return []string{r.Title} }},
	{CatLanguages, "language", func(r Record) []string { return []string{r.Title, r.Language} }},
	{CatBadges, "badge", func(r Record) []string { return []string{r.Title, r.Issuer} }},
}

// Record is the typed projection of one certificate record. Absent fields
// resolve to "". Raw holds the full original mapping.
type Record struct {
	ID       string
	Title    string
	Issuer   string
	Language string
	Raw      map[string]any
}

// SearchHit tags a matched record with the category it came from.
type SearchHit struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Accessor exposes read-only views over one certificates document.
type Accessor struct {
	doc docstore.Document
	log logging.Logger
}

// New wraps a loaded certificates document.
func New(doc docstore.Document, log logging.Logger) *Accessor {
	return &Accessor{doc: doc, log: log}
}

// Doc returns the whole certificates document.
func (a *Accessor) Doc() docstore.Document { return a.doc }

// Empty reports whether no certificate data was loaded.
func (a *Accessor) Empty() bool { return len(a.doc) == 0 }

// Category returns the raw record sequence of one category, or an empty
// sequence for unknown names.
func (a *Accessor) Category(name string) []any {
	path, ok := categoryPaths[name]
	if !ok {
		return []any{}
	}
	return docstore.Seq(a.doc, path...)
}

// RepositoryInfo returns the repository_info mapping.
func (a *Accessor) RepositoryInfo() map[string]any {
	return docstore.Map(a.doc, "repository_info")
}

// records projects one category's sequence onto typed Records, skipping
// elements that are not mappings.
func (a *Accessor) records(cat string) []Record {
	raw := a.Category(cat)
	out := make([]Record, 0, len(raw))
	for _, v := range raw {
		if r, ok := recordFrom(v); ok {
			out = append(out, r)
		}
	}
	return out
}

func recordFrom(v any) (Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Record{}, false
	}
	return Record{
		ID:       docstore.Str(m, "id"),
		Title:    docstore.Str(m, "title"),
		Issuer:   docstore.Str(m, "issuer"),
		Language: docstore.Str(m, "language"),
		Raw:      m,
	}, true
}

// ByID scans the coursera category for a record whose id equals id exactly.
// A miss is a normal outcome, reported by the second return value.
func (a *Accessor) ByID(id string) (Record, bool) {
	for _, r := range a.records(CatCoursera) {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// ByIssuer returns every coursera, other, and badge record whose issuer
// contains issuer, ignoring case. Original order is preserved.
func (a *Accessor) ByIssuer(issuer string) []SearchHit {
	var out []SearchHit
	for _, p := range searchPlan {
		if p.cat == CatDiplomas || p.cat == CatLanguages {
			continue
		}
		for _, r := range a.records(p.cat) {
			if textmatch.Contains(r.Issuer, issuer) {
				out = append(out, SearchHit{Type: p.tag, Data: r.Raw})
			}
		}
	}
	a.log.Info("certificates filtered by issuer", "issuer", issuer, "hits", len(out))
	return out
}

// Search matches query against each category's searchable fields and
// returns all hits tagged by category, in original record order. An empty
// query matches every record.
func (a *Accessor) Search(query string) []SearchHit {
	var out []SearchHit
	for _, p := range searchPlan {
		for _, r := range a.records(p.cat) {
			if textmatch.ContainsAny(query, p.fields(r)...) {
				out = append(out, SearchHit{Type: p.tag, Data: r.Raw})
			}
		}
	}
	a.log.Info("certificates searched", "query", query, "hits", len(out))
	return out
}
