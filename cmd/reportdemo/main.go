// main.go — reportdemo entry point.
//
// reportdemo is the demonstration binary for xgx-report: each subcommand
// exercises one path through the framework (construction and rendering,
// typed introspection, concurrent enrichment) against the shared process
// wiring built here (settings, loggers, projector).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	xgxreport "github.com/xgx-io/xgx-report"
	"github.com/xgx-io/xgx-report/internal/buildinfo"
	"github.com/xgx-io/xgx-report/internal/config"
	"github.com/xgx-io/xgx-report/internal/logging"
	"github.com/xgx-io/xgx-report/internal/panichook"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "reportdemo",
	Short:         "Demonstrations of the xgx-report diagnostic pipeline",
	Long:          "reportdemo exercises report trees, diagnostic delegation, API projection and typed introspection end to end.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app is the process wiring shared by all subcommands, built once before the
// first one runs.
type app struct {
	settings  config.Settings
	sink      *slog.Logger // JSON projection sink
	console   *slog.Logger // human-facing process log
	projector *xgxreport.Projector
	closeSink func() error
}

var demo app

func (a *app) bootstrap() error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		settings.Logging.Level = flagLogLevel
	}
	a.settings = settings

	// The settings file may move the documentation base for the whole
	// process, the same knob ldflags turns at build time.
	if settings.Docs.BaseURL != "" {
		xgxreport.DocsBase = settings.Docs.BaseURL
	}

	info := buildinfo.Get()
	sink, closeSink, err := logging.New(logging.Options{
		Level:  settings.Logging.Level,
		Format: "json",
		Output: settings.Logging.File,
	}, "reportdemo", info.Version)
	if err != nil {
		return fmt.Errorf("building the sink logger: %w", err)
	}
	console, _, err := logging.New(logging.Options{
		Level:  settings.Logging.Level,
		Format: "text",
		Output: "stderr",
	}, "reportdemo", info.Version)
	if err != nil {
		_ = closeSink()
		return fmt.Errorf("building the console logger: %w", err)
	}

	a.sink, a.console, a.closeSink = sink, console, closeSink
	a.projector = &xgxreport.Projector{
		GitHash: buildinfo.Commit,
		DocsURL: settings.Docs.BaseURL,
		Log:     sink,
	}
	return nil
}

func (a *app) close() {
	if a.closeSink != nil {
		_ = a.closeSink()
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	defer panichook.Catch(nil, panichook.Metadata{
		Name:     "reportdemo",
		Version:  buildinfo.Version,
		Commit:   buildinfo.Commit,
		Homepage: "https://github.com/xgx-io/xgx-report",
		Support:  "open an issue at https://github.com/xgx-io/xgx-report/issues",
	})
	defer demo.close()

	rootCmd.Version = buildinfo.Get().Version
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML settings file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override the configured log level (debug|info|warn|error)")
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return demo.bootstrap()
	}
	rootCmd.AddCommand(configCmd, ioCmd, concurrentCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		renderFailure(os.Stderr, err)
		return 1
	}
	return 0
}
