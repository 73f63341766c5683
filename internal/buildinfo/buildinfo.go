// Package buildinfo holds build metadata for the reportdemo binary.
//
// The variables are overridden at build time:
//
//	go build -ldflags "\
//	  -X github.com/xgx-io/xgx-report/internal/buildinfo.Version=v1.2.3 \
//	  -X github.com/xgx-io/xgx-report/internal/buildinfo.Commit=abc1234 \
//	  -X github.com/xgx-io/xgx-report/internal/buildinfo.Date=2026-08-26T12:00:00Z"
package buildinfo

import "strings"

var (
	// Version is the semantic version of the binary.
	Version = "0.1.0-dev"

	// Commit is the short git commit hash, empty when not injected.
	Commit = ""

	// Date is the build date in ISO-8601, empty when not injected.
	Date = ""
)

// Info is a snapshot of the build metadata with empty fields normalized.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the current build metadata, substituting "unknown" for fields
// that were not injected.
func Get() Info {
	return Info{
		Version: orUnknown(Version),
		Commit:  orUnknown(Commit),
		Date:    orUnknown(Date),
	}
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
