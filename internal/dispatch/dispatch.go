// Package dispatch maps logical endpoint names plus a parameter bag onto
// exactly one accessor or aggregator call. It validates required parameters
// before any lookup and wraps every result in the uniform envelope.
package dispatch

import (
	"fmt"
	"strconv"

	"github.com/anixlabs/profilectl/internal/certs"
	"github.com/anixlabs/profilectl/internal/envelope"
	"github.com/anixlabs/profilectl/internal/logging"
	"github.com/anixlabs/profilectl/internal/profile"
)

// Params is the optional named-parameter bag accompanying an endpoint call.
type Params map[string]string

// Dispatcher routes endpoint identifiers to the aggregator's accessors.
// It is stateless beyond holding the service reference.
type Dispatcher struct {
	svc *profile.Service
	log logging.Logger
}

// New builds a Dispatcher over the aggregator.
func New(svc *profile.Service, log logging.Logger) *Dispatcher {
	return &Dispatcher{svc: svc, log: log}
}

// Handle resolves one endpoint call. Unknown endpoints and missing or
// malformed parameters yield error envelopes; nothing here returns a Go
// error, since every outcome is a normal response.
func (d *Dispatcher) Handle(endpoint string, params Params) envelope.Envelope {
	d.log.Info("endpoint accessed", "endpoint", endpoint)

	switch endpoint {
	case "resume":
		return envelope.OK(d.svc.Resume.Doc())
	case "match":
		return d.handleMatch(params)

	case "certificates":
		return envelope.OK(d.svc.Certs.Doc())
	case "certificates/coursera":
		return categoryEnvelope(d.svc.Certs, certs.CatCoursera)
	case "certificates/diplomas":
		return categoryEnvelope(d.svc.Certs, certs.CatDiplomas)
	case "certificates/languages":
		return categoryEnvelope(d.svc.Certs, certs.CatLanguages)
	case "certificates/badges":
		return categoryEnvelope(d.svc.Certs, certs.CatBadges)
	case "certificates/repo":
		return envelope.OK(d.svc.Certs.RepositoryInfo())
	case "certificates/search":
		query, ok := params["query"]
		if !ok {
			return envelope.Err("query required")
		}
		if d.svc.Certs.Empty() {
			return envelope.Err("no certificate data available")
		}
		hits := d.svc.Certs.Search(query)
		return envelope.OKCount(hits, len(hits)).WithQuery(query)
	case "certificates/id":
		return d.handleCertByID(params)
	case "certificates/issuer":
		issuer, ok := params["issuer"]
		if !ok {
			return envelope.Err("issuer required")
		}
		hits := d.svc.Certs.ByIssuer(issuer)
		return envelope.OKCount(hits, len(hits)).WithIssuer(issuer)

	case "portfolio":
		return envelope.OK(d.svc.Portfolio.Doc())
	case "portfolio/projects":
		projects := d.svc.Portfolio.Projects()
		return envelope.OKCount(projects, len(projects))
	case "portfolio/project":
		return d.handleProjectByID(params)
	case "portfolio/assets":
		assets := d.svc.Portfolio.SharedAssets()
		return envelope.OKCount(assets, len(assets))
	case "portfolio/plan":
		return envelope.OK(d.svc.Portfolio.AgentPlan())
	case "portfolio/stack":
		return envelope.OK(d.svc.Portfolio.StackSummary())
	case "portfolio/roadmap":
		return envelope.OK(d.svc.Portfolio.Roadmap())
	case "portfolio/search":
		query, ok := params["query"]
		if !ok {
			return envelope.Err("query required")
		}
		if d.svc.Portfolio.Empty() {
			return envelope.Err("no portfolio data available")
		}
		hits := d.svc.Portfolio.Search(query)
		return envelope.OKCount(hits, len(hits)).WithQuery(query)
	case "portfolio/interop":
		return envelope.OK(d.svc.Portfolio.InteropMatrix())

	case "all":
		return envelope.OK(d.svc.AllData())
	case "profile":
		return envelope.OK(d.svc.Summarize())
	case "search":
		query, ok := params["query"]
		if !ok {
			return envelope.Err("query required")
		}
		hits := d.svc.SearchAll(query)
		return envelope.OKCount(hits, len(hits)).WithQuery(query)
	}

	d.log.Error("unknown endpoint", "endpoint", endpoint)
	return envelope.Err(fmt.Sprintf("unknown endpoint: %s", endpoint))
}

func (d *Dispatcher) handleMatch(params Params) envelope.Envelope {
	jobText, ok := params["job_description"]
	if !ok {
		return envelope.Err("job_description required")
	}
	if d.svc.Resume.Empty() {
		return envelope.Err("no resume data available")
	}
	return envelope.OK(d.svc.Resume.MatchScore(jobText))
}

func (d *Dispatcher) handleCertByID(params Params) envelope.Envelope {
	id, ok := params["id"]
	if !ok {
		return envelope.Err("id required")
	}
	rec, found := d.svc.Certs.ByID(id)
	if !found {
		return envelope.Err(fmt.Sprintf("certificate with ID %s not found", id))
	}
	return envelope.OK(map[string]any{"type": "coursera", "certificate": rec.Raw})
}

func (d *Dispatcher) handleProjectByID(params Params) envelope.Envelope {
	raw, ok := params["id"]
	if !ok {
		return envelope.Err("project id required")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return envelope.Err(fmt.Sprintf("project id must be an integer, got %q", raw))
	}
	p, found := d.svc.Portfolio.ByID(id)
	if !found {
		return envelope.Err(fmt.Sprintf("project with ID %d not found", id))
	}
	return envelope.OK(p)
}

func categoryEnvelope(c *certs.Accessor, cat string) envelope.Envelope {
	records := c.Category(cat)
	return envelope.OKCount(records, len(records))
}
