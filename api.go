// api.go — stable API projection of report trees.
//
// Scope:
//   - APIError: the fixed, serializable record handed to programmatic
//     consumers (logs, API responses).
//   - Projector: explicit projection configuration (build provenance, docs
//     base, sink, id source). No compiled-in globals beyond DocsBase.
//   - APIError(): the pure compute step. ToAPIError(): compute + exactly one
//     structured sink emission, the default entry point.
//
// Emission:
//   - One record per ToAPIError call, message "Internal error reported to API
//     sink", attrs {hash, docs, id, title, code, history}. The code attr is
//     always present and empty when the root supplies no code; the sink field
//     set stays fixed.
//   - The write is fire-and-forget: slog discards handler errors, so a sink
//     failure can never fail the projection.
package xgxreport

import (
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DocsBase is the process-wide documentation base URL used to derive per-code
// links (Diagnostic.URL) and to default Projector.DocsURL. Override it at
// build time:
//
//	go build -ldflags "-X github.com/xgx-io/xgx-report.DocsBase=https://docs.example.com/errors"
var DocsBase = "https://pkg.go.dev/github.com/xgx-io/xgx-report"

// correlationIDLen is the length of generated correlation ids. Eight symbols
// of a 64-symbol alphabet give 2^48 combinations, negligible collision odds
// at operational error volumes.
const correlationIDLen = 8

// NewCorrelationID returns a fresh 8-character URL-safe correlation id. Ids
// are random, not content-derived: two projections of one error differ. The
// generator reads crypto/rand and needs no cross-goroutine coordination.
func NewCorrelationID() string {
	return gonanoid.Must(correlationIDLen)
}

// Projector carries the per-process projection configuration. Construct one
// at startup and reuse it; the zero value (and a nil *Projector) fall back to
// defaults on every field, which keeps tests deterministic when they inject
// fixed fields and callers honest when they inject none.
type Projector struct {
	// GitHash is the short source-revision hash baked into the build.
	// Empty reads as "unknown".
	GitHash string
	// DocsURL is the documentation base recorded on each record.
	// Empty reads as DocsBase.
	DocsURL string
	// Log receives the one structured record per ToAPIError call.
	// Nil reads as slog.Default().
	Log *slog.Logger
	// NewID supplies correlation ids. Nil reads as NewCorrelationID.
	NewID func() string
}

func (p *Projector) gitHash() string {
	if p == nil || p.GitHash == "" {
		return "unknown"
	}
	return p.GitHash
}

func (p *Projector) docsURL() string {
	if p == nil || p.DocsURL == "" {
		return DocsBase
	}
	return p.DocsURL
}

func (p *Projector) logger() *slog.Logger {
	if p == nil || p.Log == nil {
		return slog.Default()
	}
	return p.Log
}

func (p *Projector) id() string {
	if p == nil || p.NewID == nil {
		return NewCorrelationID()
	}
	return p.NewID()
}

// APIError is the terminal, serializable projection of one failure instance.
// Code and Help serialize as absent keys (not null) when the root context
// supplies neither; History is the pre-order flattening of every node's
// attachments and is never null.
type APIError struct {
	GitHash       string   `json:"git_hash"`
	DocsURL       string   `json:"docs_url"`
	CorrelationID string   `json:"correlation_id"`
	Title         string   `json:"title"`
	Code          string   `json:"code,omitempty"`
	Help          string   `json:"help,omitempty"`
	History       []string `json:"history"`
}

// APIError computes the projection without side effects:
//
//  1. walk the tree in pre-order (root first, then each child subtree in
//     child order);
//  2. flatten every node's attachments, in that node's insertion order, into
//     one History sequence, discarding node grouping;
//  3. take Title, Code and Help strictly from the root context;
//  4. generate a fresh correlation id;
//  5. stamp build provenance from the projector.
//
// A nil projector means all defaults.
func (d Diagnostic[E]) APIError(p *Projector) APIError {
	history := make([]string, 0, 4)
	for n := range d.Report.Nodes() {
		history = append(history, n.n.attachments...)
	}
	return APIError{
		GitHash:       p.gitHash(),
		DocsURL:       p.docsURL(),
		CorrelationID: p.id(),
		Title:         d.Error(),
		Code:          string(d.Code()),
		Help:          d.Help(),
		History:       history,
	}
}

// ToAPIError is the default projection entry point: compute the record, emit
// it to the structured sink exactly once, then return it. Emission cannot
// fail the call; the record is returned regardless of sink behavior.
func (d Diagnostic[E]) ToAPIError(p *Projector) APIError {
	api := d.APIError(p)
	p.logger().Error("Internal error reported to API sink",
		"hash", api.GitHash,
		"docs", api.DocsURL,
		"id", api.CorrelationID,
		"title", api.Title,
		"code", api.Code,
		"history", api.History,
	)
	return api
}
