// Package portfolio wraps the loaded project-portfolio document: suite and
// project getters, stack/roadmap/interop aggregations, and relevance-ranked
// keyword search.
package portfolio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anixlabs/profilectl/internal/docstore"
	"github.com/anixlabs/profilectl/internal/logging"
	"github.com/anixlabs/profilectl/internal/textmatch"
)

const suiteKey = "portfolio_suite"

// Relevance weights for Search. Field hits are boolean; a query matching
// two stack entries still scores the stack weight once.
const (
	weightName    = 10
	weightRole    = 7
	weightPurpose = 5
	weightStack   = 3
)

// Project is the typed projection of one portfolio project record. Absent
// fields resolve to their zero values.
type Project struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Purpose      string         `json:"purpose,omitempty"`
	Role         string         `json:"role,omitempty"`
	Stack        []string       `json:"stack,omitempty"`
	Deliverables []string       `json:"deliverables,omitempty"`
	Stretch      []string       `json:"stretch,omitempty"`
	Raw          map[string]any `json:"-"`
}

// ScoredProject pairs a matched project with its relevance score.
type ScoredProject struct {
	Project Project `json:"project"`
	Score   int     `json:"relevance_score"`
}

// ProjectStack is one project's entry in a StackSummary.
type ProjectStack struct {
	Name  string   `json:"name"`
	Stack []string `json:"stack"`
	Role  string   `json:"role,omitempty"`
}

// StackSummary is the technology-stack aggregation over all projects.
type StackSummary struct {
	ByProject          map[string]ProjectStack `json:"by_project"`
	UniqueTechnologies []string                `json:"unique_technologies"`
	TotalProjects      int                     `json:"total_projects"`
}

// RoadmapEntry is the roadmap projection of one project.
type RoadmapEntry struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Purpose      string   `json:"purpose,omitempty"`
	Role         string   `json:"role,omitempty"`
	Stack        []string `json:"stack,omitempty"`
	Deliverables []string `json:"deliverables"`
	StretchGoals []string `json:"stretch_goals"`
}

// Connection is one cell of the interoperability matrix.
type Connection struct {
	Project1       string `json:"project1"`
	Project2       string `json:"project2"`
	SharedAssets   []any  `json:"shared_assets"`
	ConnectionType string `json:"connection_type"`
}

// Interop is the project interoperability matrix: every unordered project
// pair, keyed "<id1>-<id2>", plus the suite's shared assets.
type Interop struct {
	Matrix           map[string]Connection `json:"matrix"`
	SharedAssets     []any                 `json:"shared_assets"`
	TotalConnections int                   `json:"total_connections"`
}

// Accessor exposes read-only views over one portfolio document.
type Accessor struct {
	doc docstore.Document
	log logging.Logger
}

// New wraps a loaded portfolio document.
func New(doc docstore.Document, log logging.Logger) *Accessor {
	return &Accessor{doc: doc, log: log}
}

// Doc returns the whole portfolio document.
func (a *Accessor) Doc() docstore.Document { return a.doc }

// Empty reports whether no portfolio data was loaded.
func (a *Accessor) Empty() bool { return len(a.doc) == 0 }

func (a *Accessor) suite() map[string]any {
	return docstore.Map(a.doc, suiteKey)
}

// Brand returns the suite's brand name.
func (a *Accessor) Brand() string { return docstore.Str(a.suite(), "brand") }

// Mission returns the suite's mission statement.
func (a *Accessor) Mission() string { return docstore.Str(a.suite(), "mission") }

// Projects returns every project, in document order.
func (a *Accessor) Projects() []Project {
	raw := docstore.Seq(a.doc, suiteKey, "projects")
	out := make([]Project, 0, len(raw))
	for _, v := range raw {
		if p, ok := projectFrom(v); ok {
			out = append(out, p)
		}
	}
	return out
}

// SharedAssets returns the suite's shared assets verbatim.
func (a *Accessor) SharedAssets() []any {
	return docstore.Seq(a.doc, suiteKey, "shared_assets")
}

// AgentPlan returns the suite's AI agent plan verbatim.
func (a *Accessor) AgentPlan() []any {
	return docstore.Seq(a.doc, suiteKey, "ai_agent_plan")
}

// ByID scans for the project with the given id. A miss is a normal outcome.
func (a *Accessor) ByID(id int) (Project, bool) {
	for _, p := range a.Projects() {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// StackSummary aggregates every project's stack: per-project entries keyed
// "project_<id>" plus the deduplicated, lexicographically sorted union of
// all technologies.
func (a *Accessor) StackSummary() StackSummary {
	projects := a.Projects()
	byProject := make(map[string]ProjectStack, len(projects))
	uniq := make(map[string]struct{})
	for _, p := range projects {
		byProject[fmt.Sprintf("project_%d", p.ID)] = ProjectStack{
			Name:  p.Name,
			Stack: p.Stack,
			Role:  p.Role,
		}
		for _, tech := range p.Stack {
			uniq[tech] = struct{}{}
		}
	}
	techs := make([]string, 0, len(uniq))
	for t := range uniq {
		techs = append(techs, t)
	}
	sort.Strings(techs)
	return StackSummary{
		ByProject:          byProject,
		UniqueTechnologies: techs,
		TotalProjects:      len(projects),
	}
}

// Roadmap projects every project onto its roadmap entry, in document order.
func (a *Accessor) Roadmap() []RoadmapEntry {
	projects := a.Projects()
	out := make([]RoadmapEntry, 0, len(projects))
	for _, p := range projects {
		out = append(out, RoadmapEntry{
			ID:           p.ID,
			Name:         p.Name,
			Purpose:      p.Purpose,
			Role:         p.Role,
			Stack:        p.Stack,
			Deliverables: p.Deliverables,
			StretchGoals: p.Stretch,
		})
	}
	return out
}

// Search matches query against each project's name, purpose, stack, and
// role, and ranks hits by relevance: score descending, original order on
// ties. An empty query matches every project.
func (a *Accessor) Search(query string) []ScoredProject {
	var out []ScoredProject
	for _, p := range a.Projects() {
		blob := strings.Join(append([]string{p.Name, p.Purpose, p.Role}, p.Stack...), "\n")
		if !textmatch.Contains(blob, query) {
			continue
		}
		out = append(out, ScoredProject{Project: p, Score: relevance(p, query)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	a.log.Info("portfolio searched", "query", query, "hits", len(out))
	return out
}

func relevance(p Project, query string) int {
	score := 0
	if textmatch.Contains(p.Name, query) {
		score += weightName
	}
	if textmatch.Contains(p.Purpose, query) {
		score += weightPurpose
	}
	for _, tech := range p.Stack {
		if textmatch.Contains(tech, query) {
			score += weightStack
			break
		}
	}
	if textmatch.Contains(p.Role, query) {
		score += weightRole
	}
	return score
}

// InteropMatrix builds the upper-triangle matrix of project pairs. The
// diagonal is tagged "direct", every other pair "via_shared_assets".
func (a *Accessor) InteropMatrix() Interop {
	projects := a.Projects()
	assets := a.SharedAssets()
	matrix := make(map[string]Connection)
	for i, p1 := range projects {
		for j, p2 := range projects {
			if i > j {
				continue
			}
			kind := "via_shared_assets"
			if i == j {
				kind = "direct"
			}
			matrix[fmt.Sprintf("%d-%d", p1.ID, p2.ID)] = Connection{
				Project1:       p1.Name,
				Project2:       p2.Name,
				SharedAssets:   assets,
				ConnectionType: kind,
			}
		}
	}
	return Interop{
		Matrix:           matrix,
		SharedAssets:     assets,
		TotalConnections: len(matrix),
	}
}

func projectFrom(v any) (Project, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Project{}, false
	}
	id, _ := docstore.Int(m, "id")
	return Project{
		ID:           id,
		Name:         docstore.Str(m, "name"),
		Purpose:      docstore.Str(m, "purpose"),
		Role:         docstore.Str(m, "role"),
		Stack:        docstore.StrSeq(m, "stack"),
		Deliverables: docstore.StrSeq(m, "deliverables"),
		Stretch:      docstore.StrSeq(m, "stretch"),
		Raw:          m,
	}, true
}
