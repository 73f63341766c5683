// version.go — build metadata subcommand.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-report/internal/buildinfo"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show reportdemo build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Get()
		out := cmd.OutOrStdout()

		switch strings.ToLower(versionFormat) {
		case "pretty":
			fmt.Fprintf(out, "reportdemo %s\n", info.Version)
			fmt.Fprintf(out, "commit: %s\n", info.Commit)
			fmt.Fprintf(out, "built:  %s\n", info.Date)
			return nil
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Tool    string `json:"tool"`
				Version string `json:"version"`
				Commit  string `json:"commit"`
				Date    string `json:"date"`
			}{"reportdemo", info.Version, info.Commit, info.Date})
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}
