// Package envelope defines the uniform response wrapper returned by every
// endpoint.
package envelope

import "time"

// Status values used by every envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform endpoint response. Error envelopes carry Message;
// success envelopes carry Data and, for list results, Count.
type Envelope struct {
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Query     string `json:"query,omitempty"`
	Issuer    string `json:"issuer,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Timestamp string `json:"timestamp"`
}

// OK returns a success envelope wrapping data.
func OK(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data, Timestamp: now()}
}

// OKCount returns a success envelope wrapping a list result of n elements.
func OKCount(data any, n int) Envelope {
	e := OK(data)
	e.Count = &n
	return e
}

// Err returns an error envelope with the given message. Error envelopes are
// normal outcomes (not found, bad parameter), not process failures.
func Err(msg string) Envelope {
	return Envelope{Status: StatusError, Message: msg, Timestamp: now()}
}

// WithQuery annotates the envelope with the search query that produced it.
func (e Envelope) WithQuery(q string) Envelope {
	e.Query = q
	return e
}

// WithIssuer annotates the envelope with the issuer filter that produced it.
func (e Envelope) WithIssuer(issuer string) Envelope {
	e.Issuer = issuer
	return e
}

func now() string {
	return time.Now().Format(time.RFC3339)
}
