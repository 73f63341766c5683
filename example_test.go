// example_test.go — runnable documentation for the public surface.
package xgxreport_test

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	xgxreport "github.com/xgx-io/xgx-report"
)

// configError is a typical typed failure context: a plain error value that
// additionally advertises a stable code and a help text.
type configError struct{ path string }

func (e *configError) Error() string        { return "Failed to parse config at " + e.path }
func (e *configError) Code() xgxreport.Code { return "config::invalid_format" }
func (e *configError) Help() string {
	return "Ensure the configuration file is valid JSON."
}

func ExampleNew() {
	rep := xgxreport.New(&configError{path: "config.json"}).
		Attach("The application cannot proceed without a valid config.")

	fmt.Println(rep)
	fmt.Println(rep.Attachments()[0])
	// Output:
	// Failed to parse config at config.json
	// The application cannot proceed without a valid config.
}

func ExampleReport_WithChild() {
	child := xgxreport.From(errors.New("unexpected token at byte 12"))
	rep := xgxreport.New(&configError{path: "config.json"}).
		Attach("The application cannot proceed without a valid config.").
		WithChild(child)

	fmt.Printf("%+v\n", rep)
	// Output:
	// code=config::invalid_format msg="Failed to parse config at config.json"
	// notes:
	//   - The application cannot proceed without a valid config.
	// child 1/1:
	//   msg="unexpected token at byte 12"
}

func ExampleDiagnose() {
	d := xgxreport.Diagnose(xgxreport.New(&configError{path: "config.json"}))

	fmt.Println(d.Error())
	fmt.Println(d.Code())
	fmt.Println(d.Help())
	fmt.Println(d.URL())
	// Output:
	// Failed to parse config at config.json
	// config::invalid_format
	// Ensure the configuration file is valid JSON.
	// https://pkg.go.dev/github.com/xgx-io/xgx-report/#config::invalid_format
}

func ExampleDiagnostic_APIError() {
	rep := xgxreport.New(&configError{path: "config.json"}).
		Attach("The application cannot proceed without a valid config.")

	api := xgxreport.Diagnose(rep).APIError(&xgxreport.Projector{
		GitHash: "abc1234",
		DocsURL: "https://docs.example.com/errors",
		Log:     slog.New(slog.DiscardHandler),
		NewID:   func() string { return "fixedid1" },
	})

	fmt.Println(api.Title)
	fmt.Println(api.Code)
	fmt.Println(api.CorrelationID)
	fmt.Println(api.History[0])
	// Output:
	// Failed to parse config at config.json
	// config::invalid_format
	// fixedid1
	// The application cannot proceed without a valid config.
}

func ExampleInspect() {
	missing := &fs.PathError{Op: "open", Path: "nonexistent.json", Err: fs.ErrNotExist}
	rep := xgxreport.New(&configError{path: "config.json"}).
		WithChild(xgxreport.From(missing))

	xgxreport.Inspect(rep, func(pe *fs.PathError) bool {
		if errors.Is(pe, fs.ErrNotExist) {
			fmt.Println("missing file:", pe.Path)
		}
		return true
	})
	// Output:
	// missing file: nonexistent.json
}

func ExampleReport_Nodes() {
	rep := xgxreport.From(errors.New("sync failed")).
		WithChild(xgxreport.From(errors.New("shard 1 unreachable"))).
		WithChild(xgxreport.From(errors.New("shard 2 unreachable")))

	for n := range rep.Nodes() {
		fmt.Println(n.Context().Error())
	}
	// Output:
	// sync failed
	// shard 1 unreachable
	// shard 2 unreachable
}
