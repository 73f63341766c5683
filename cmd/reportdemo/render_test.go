package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxreport "github.com/xgx-io/xgx-report"
)

// plainColors disables ANSI sequences for the duration of one test so
// rendered output can be asserted literally.
func plainColors(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestRenderDiagnostic_FullBlock(t *testing.T) {
	plainColors(t)

	var out bytes.Buffer
	renderDiagnostic(&out, xgxreport.Diagnose(brokenConfigReport()))
	text := out.String()

	assert.Contains(t, text, "error[config::invalid_format]: Failed to parse config at config.json")
	assert.Contains(t, text, "--> config.json:1:11")
	assert.Contains(t, text, `| { "key": !!invalid }`)
	assert.Contains(t, text, "^ syntax error here")
	assert.Contains(t, text, "note: The application cannot proceed without a valid config.")
	assert.Contains(t, text, "help: Ensure the configuration file is valid JSON.")
	assert.Contains(t, text, "docs: ")
	assert.Contains(t, text, "/#config::invalid_format")
}

func TestRenderSource_UnderlineAlignment(t *testing.T) {
	plainColors(t)

	t.Run("ascii", func(t *testing.T) {
		var out bytes.Buffer
		src := xgxreport.NewSnippet("config.json", `{ "key": !!invalid }`)
		renderSource(&out, src, []xgxreport.Label{
			{Span: xgxreport.Span{Offset: 10, Length: 9}, Caption: "syntax error here"},
		})

		lines := strings.Split(out.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		// The span starts after a ten-column prefix and covers nine columns.
		assert.Equal(t, `    | `+strings.Repeat(" ", 10)+strings.Repeat("^", 9)+` syntax error here`, lines[2])
	})

	t.Run("wide runes pad by display width", func(t *testing.T) {
		var out bytes.Buffer
		src := xgxreport.NewSnippet("配置.json", "配置x")
		renderSource(&out, src, []xgxreport.Label{
			// Offset 6 is the byte position of x; the two wide runes before
			// it occupy four display columns, not six.
			{Span: xgxreport.Span{Offset: 6, Length: 1}, Caption: "here"},
		})

		lines := strings.Split(out.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.Equal(t, `    | `+strings.Repeat(" ", 4)+`^ here`, lines[2])
	})

	t.Run("nil snippet renders nothing", func(t *testing.T) {
		var out bytes.Buffer
		renderSource(&out, nil, nil)
		assert.Empty(t, out.String())
	})
}

func TestRenderDiagnostic_CodelessRoot(t *testing.T) {
	plainColors(t)

	var out bytes.Buffer
	d := xgxreport.Diagnose(xgxreport.From(errors.New("plain failure")))
	renderDiagnostic(&out, d)
	text := out.String()

	assert.Contains(t, text, "error: plain failure")
	assert.NotContains(t, text, "error[", "no code bracket without a code")
	assert.NotContains(t, text, "help:")
	assert.NotContains(t, text, "docs:")
}

func TestRenderFailure_RoutesByType(t *testing.T) {
	plainColors(t)

	t.Run("diagnostic gets the full block", func(t *testing.T) {
		var out bytes.Buffer
		renderFailure(&out, xgxreport.Diagnose(brokenConfigReport()))
		assert.Contains(t, out.String(), "error[config::invalid_format]")
	})

	t.Run("plain error gets one line", func(t *testing.T) {
		var out bytes.Buffer
		renderFailure(&out, errors.New("boom"))
		assert.Equal(t, "error: boom\n", out.String())
	})
}
