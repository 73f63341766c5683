// errors.go — demo failure contexts.
//
// The pattern for consuming xgx-report: define plain error types for your
// failures, add capability methods (Code, Help, Source, Labels) where a
// failure has something to say, and let the framework discover them. Nothing
// here imports anything beyond the framework itself.
package main

import (
	"fmt"
	"time"

	xgxreport "github.com/xgx-io/xgx-report"
)

// ConfigParseError reports an unparseable configuration file, pointing at
// the offending span of the source text. It carries the full capability set,
// so the renderer can draw the snippet and the projection records code and
// help.
type ConfigParseError struct {
	Path string
	Src  *xgxreport.Snippet
	Span xgxreport.Span
}

func (e *ConfigParseError) Error() string {
	return "Failed to parse config at " + e.Path
}

func (e *ConfigParseError) Code() xgxreport.Code { return "config::invalid_format" }

func (e *ConfigParseError) Help() string {
	return "Ensure the configuration file is valid JSON."
}

func (e *ConfigParseError) Source() *xgxreport.Snippet { return e.Src }

func (e *ConfigParseError) Labels() []xgxreport.Label {
	return []xgxreport.Label{{Span: e.Span, Caption: "syntax error here"}}
}

// NetworkTimeoutError reports an upstream that never answered. Code and help
// only; there is no source text to point at.
type NetworkTimeoutError struct {
	Timeout time.Duration
}

func (e *NetworkTimeoutError) Error() string {
	return fmt.Sprintf("Network timeout after %ds", int(e.Timeout.Seconds()))
}

func (e *NetworkTimeoutError) Code() xgxreport.Code { return "network::timeout" }

func (e *NetworkTimeoutError) Help() string {
	return "Check network connectivity and consider increasing the timeout."
}

// OpFailure lifts an arbitrary underlying error into a coded context while
// keeping the cause reachable for errors.Is and errors.As.
type OpFailure struct {
	Op  string // what was being attempted, e.g. "reading settings file"
	Err error
}

func (e *OpFailure) Error() string {
	if e.Op == "" {
		return "IO error: " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *OpFailure) Code() xgxreport.Code { return "io::error" }

func (e *OpFailure) Unwrap() error { return e.Err }
