// Package panichook turns unrecovered panics in the demo binary into a
// friendly crash block plus a crash-report file, instead of a raw stack
// trace.
package panichook

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/BurntSushi/toml"
)

// Metadata names the crashing program in the report.
type Metadata struct {
	Name     string
	Version  string
	Commit   string
	Homepage string
	Support  string // e.g. "open an issue at https://..."
}

// crashReport is the TOML document written for each crash.
type crashReport struct {
	Name      string `toml:"name"`
	Version   string `toml:"version"`
	Commit    string `toml:"commit"`
	Timestamp string `toml:"timestamp"`
	Message   string `toml:"message"`
	Stack     string `toml:"stack"`
}

// Catch recovers an in-flight panic, writes a crash report file to the temp
// dir, logs the failure, and prints a friendly block to stderr. Install it
// with defer at the top of main. A nil logger falls back to slog.Default().
// After a crash the process exits with code 70 (EX_SOFTWARE).
func Catch(log *slog.Logger, meta Metadata) {
	r := recover()
	if r == nil {
		return
	}
	handle(os.Stderr, log, meta, r, debug.Stack())
	os.Exit(70)
}

// handle is the testable core of Catch: report, log, print, no exit.
func handle(w io.Writer, log *slog.Logger, meta Metadata, r any, stack []byte) string {
	if log == nil {
		log = slog.Default()
	}

	path, err := writeReport(meta, r, stack)
	if err != nil {
		path = fmt.Sprintf("(could not write a crash report: %v)", err)
	}

	log.Error("panic recovered",
		"panic", fmt.Sprint(r),
		"version", meta.Version,
		"commit", meta.Commit,
		"report", path,
	)

	fmt.Fprint(w, "\nWell, this is embarrassing.\n\n")
	fmt.Fprintf(w, "%s had a problem and crashed. To help us diagnose the problem you can send us a crash report.\n\n", meta.Name)
	fmt.Fprintf(w, "We have generated a report file at %q.\n\n", path)
	if meta.Support != "" {
		fmt.Fprintf(w, "To submit the report, %s and include the file as an attachment.\n\n", meta.Support)
	}
	if meta.Homepage != "" {
		fmt.Fprintf(w, "Homepage: %s\n\n", meta.Homepage)
	}
	fmt.Fprint(w, "We take privacy seriously and perform no automated error collection. We rely on people to submit reports to improve the software.\n\nThank you kindly!\n")
	return path
}

// writeReport persists the crash details as TOML in the temp dir and returns
// the file path.
func writeReport(meta Metadata, r any, stack []byte) (string, error) {
	f, err := os.CreateTemp("", meta.Name+"-crash-*.toml")
	if err != nil {
		return "", err
	}
	defer f.Close()

	rep := crashReport{
		Name:      meta.Name,
		Version:   meta.Version,
		Commit:    meta.Commit,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   fmt.Sprint(r),
		Stack:     string(stack),
	}
	if err := toml.NewEncoder(f).Encode(rep); err != nil {
		return "", err
	}
	return f.Name(), nil
}
