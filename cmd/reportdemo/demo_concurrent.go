// demo_concurrent.go — scenario 3: one shared report, many goroutines.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	xgxreport "github.com/xgx-io/xgx-report"
	"github.com/xgx-io/xgx-report/internal/telemetry"
)

var concurrentWorkers int

func init() {
	concurrentCmd.Flags().IntVar(&concurrentWorkers, "workers", 4, "number of goroutines enriching the shared report")
}

var concurrentCmd = &cobra.Command{
	Use:   "concurrent",
	Short: "Enrich and project one shared report from many goroutines",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "--- Demo 3: Concurrent enrichment ---")

		// One immutable base, shared by value. Every worker derives its own
		// report; none of them can disturb the others or the base.
		base := xgxreport.New(&NetworkTimeoutError{Timeout: 30 * time.Second}).
			Attach("refreshing the upstream mirror").
			Erase()

		ids := make([]string, concurrentWorkers)
		var g errgroup.Group
		for i := 0; i < concurrentWorkers; i++ {
			i := i
			g.Go(func() error {
				derived := base.Attachf("worker %d gave up", i)
				api := xgxreport.Diagnose(derived).ToAPIError(demo.projector)
				telemetry.ProjectionsEmitted.Inc()
				ids[i] = api.CorrelationID
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if got := base.Attachments(); len(got) != 1 {
			return fmt.Errorf("shared base changed under concurrency: %v", got)
		}
		for i, id := range ids {
			fmt.Fprintf(out, "worker %d correlation id: %s\n", i, id)
		}
		return nil
	},
}
