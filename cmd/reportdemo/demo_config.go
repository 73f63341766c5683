// demo_config.go — scenario 1: structured config parse failure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xgxreport "github.com/xgx-io/xgx-report"
	"github.com/xgx-io/xgx-report/internal/telemetry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Build, project and render a config parse failure with a source snippet",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "--- Demo 1: Config parse error ---")

		rep := brokenConfigReport()

		// Branch on WHAT failed before any rendering. Nothing here is a
		// missing file, so this stays quiet; the io demo takes the branch.
		reactToMissingFile(cmd.OutOrStdout(), rep, "config")

		d := xgxreport.Diagnose(rep)
		api := d.ToAPIError(demo.projector)
		telemetry.ProjectionsEmitted.Inc()
		fmt.Fprintf(os.Stderr, "\n[Diagnostic ID: %s]\n", api.CorrelationID)

		// Returning the diagnostic hands it to the top-level renderer, the
		// normal path for a failure that ends the run.
		return d
	},
}

// brokenConfigReport builds the canonical unparseable-config failure: a
// typed context with source snippet and span, plus one consequence note.
func brokenConfigReport() xgxreport.AnyReport {
	parseErr := &ConfigParseError{
		Path: "config.json",
		Src:  xgxreport.NewSnippet("config.json", `{ "key": !!invalid }`),
		Span: xgxreport.Span{Offset: 10, Length: 9},
	}
	return xgxreport.New(parseErr).
		Attach("The application cannot proceed without a valid config.").
		Erase()
}
