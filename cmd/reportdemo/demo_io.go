// demo_io.go — scenario 2: a real missing-file error, lifted and inspected.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	xgxreport "github.com/xgx-io/xgx-report"
	"github.com/xgx-io/xgx-report/internal/telemetry"
)

var ioCmd = &cobra.Command{
	Use:   "io",
	Short: "Lift a real filesystem error and react to it by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "--- Demo 2: IO error ---")

		_, err := readDemoInput("nonexistent.json")
		if err == nil {
			fmt.Fprintln(out, "unexpectedly found nonexistent.json; nothing to demonstrate")
			return nil
		}

		rep := xgxreport.From(err).Attach("while loading the io demo input")
		reactToMissingFile(out, rep, "io")

		api := xgxreport.Diagnose(rep).ToAPIError(demo.projector)
		telemetry.ProjectionsEmitted.Inc()
		fmt.Fprintf(out, "\n[Diagnostic ID: %s]\n", api.CorrelationID)
		fmt.Fprintf(out, "IO error caught: %s\n", api.Title)
		return nil
	},
}

// readDemoInput reads a file, wrapping any failure in an OpFailure so the
// cause stays reachable for typed introspection.
func readDemoInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &OpFailure{Err: err}
	}
	return string(b), nil
}

// reactToMissingFile walks the report and branches on missing-file causes:
// print the logic-check line, bump the counter, warn on the console. Returns
// whether a missing file was found.
func reactToMissingFile(w io.Writer, rep xgxreport.AnyReport, scenario string) bool {
	found := false
	xgxreport.Inspect(rep, func(op *OpFailure) bool {
		if !errors.Is(op, fs.ErrNotExist) {
			return true
		}
		found = true
		fmt.Fprintln(w, "--- LOGIC CHECK: Missing file detected ---")
		telemetry.MissingFileReactions.WithLabelValues(scenario).Inc()
		if demo.console != nil {
			var pe *fs.PathError
			if errors.As(op, &pe) {
				demo.console.Warn("missing file detected", "path", pe.Path, "scenario", scenario)
			}
		}
		return false
	})
	return found
}
