package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/positions"
	"github.com/etnz/positions/sheet"
	"github.com/etnz/positions/bankexport"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup resets the globals and captures the reports.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	oldOut, oldRender := stdout, renderMarkdown
	stdout = &out
	renderMarkdown = func(md string) (string, error) { return md, nil }
	referenceDir, mode, logLevel = "", "auto", "error"
	t.Cleanup(func() { stdout, renderMarkdown = oldOut, oldRender })
	return &out
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.xlsx")
	wb := sheet.NewWorkbook()
	require.NoError(t, wb.AddSheet("Foglio1", rows))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())
	return path
}

func vendorFile(t *testing.T) string {
	return writeWorkbook(t, [][]any{
		{"Portafoglio al 30/06"},
		{bankexport.ColName, bankexport.ColID, bankexport.ColValue, bankexport.ColWeight},
		{"FONDI"},
		{"Fondo Azionario Europa", "IE00B4L5Y983", 7500, ""},
		{"GESTIONI"},
		{"Linea Dinamica", "IT0000000002", 2500, ""},
	})
}

func TestAnalyze(t *testing.T) {
	file := vendorFile(t)

	t.Run("markdown", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &analyzeCmd{}, file))
		assert.Contains(t, out.String(), "# Portfolio Analysis")
		assert.Contains(t, out.String(), "2 positions read in vendor mode.")
	})

	t.Run("json", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &analyzeCmd{}, "-json", file))
		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "vendor", got["mode"])
	})

	t.Run("query", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &analyzeCmd{}, "-q", "$.positions[0].weight", file))
		assert.JSONEq(t, "75", out.String())
	})

	t.Run("bad query", func(t *testing.T) {
		setup(t)
		assert.Equal(t, subcommands.ExitUsageError, run(t, &analyzeCmd{}, "-q", "$[", file))
	})

	t.Run("no file", func(t *testing.T) {
		setup(t)
		assert.Equal(t, subcommands.ExitUsageError, run(t, &analyzeCmd{}))
	})

	t.Run("bad mode", func(t *testing.T) {
		setup(t)
		mode = "csv"
		assert.Equal(t, subcommands.ExitUsageError, run(t, &analyzeCmd{}, file))
	})

	t.Run("missing columns", func(t *testing.T) {
		setup(t)
		mode = "canonical"
		assert.Equal(t, subcommands.ExitFailure, run(t, &analyzeCmd{}, file))
	})
}

func TestPositions(t *testing.T) {
	file := vendorFile(t)

	t.Run("all", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &positionsCmd{}, file))
		assert.Contains(t, out.String(), "# Positions")
		assert.Contains(t, out.String(), "IE00B4L5Y983")
		assert.Contains(t, out.String(), "IT0000000002")
	})

	t.Run("flagged", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &positionsCmd{}, "-flag", "Gest_multi_da_rivedere", file))
		assert.Contains(t, out.String(), "IT0000000002")
		assert.NotContains(t, out.String(), "IE00B4L5Y983")
	})

	t.Run("unknown flag", func(t *testing.T) {
		setup(t)
		assert.Equal(t, subcommands.ExitUsageError, run(t, &positionsCmd{}, "-flag", "nope", file))
	})
}

func TestExport(t *testing.T) {
	file := vendorFile(t)
	dir := t.TempDir()
	xlsx, pdf := filepath.Join(dir, "out.xlsx"), filepath.Join(dir, "out.pdf")

	setup(t)
	require.Equal(t, subcommands.ExitSuccess, run(t, &exportCmd{}, "-xlsx", xlsx, "-pdf", pdf, file))

	g, err := sheet.ReadFile(xlsx)
	require.NoError(t, err)
	ps, err := positions.ImportCanonical(g)
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	info, err := os.Stat(pdf)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Equal(t, subcommands.ExitUsageError, run(t, &exportCmd{}, file))
}

func TestCheck(t *testing.T) {
	t.Run("vendor", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &checkCmd{}, vendorFile(t)))
		assert.Contains(t, out.String(), "read in vendor mode")
		assert.Contains(t, out.String(), "IT0000000002")
		assert.NotContains(t, out.String(), "IE00B4L5Y983")
	})

	t.Run("missing columns", func(t *testing.T) {
		out := setup(t)
		file := writeWorkbook(t, [][]any{
			{positions.ColType, positions.ColID, positions.ColName},
			{"Fondo", "IE00B4L5Y983", "World"},
		})
		assert.Equal(t, subcommands.ExitFailure, run(t, &checkCmd{}, file))
		assert.Contains(t, out.String(), "Missing canonical columns: "+positions.ColCategory)
	})
}

func TestTopic(t *testing.T) {
	t.Run("readme", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &topicCmd{}))
		assert.NotEmpty(t, out.String())
	})

	t.Run("list", func(t *testing.T) {
		out := setup(t)
		assert.Equal(t, subcommands.ExitSuccess, run(t, &topicCmd{}, "-l"))
		assert.Contains(t, out.String(), "vendor\n")
	})

	t.Run("unknown", func(t *testing.T) {
		setup(t)
		assert.Equal(t, subcommands.ExitFailure, run(t, &topicCmd{}, "nope"))
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte(EnvMode+"=vendor\n"), 0o644))
	t.Setenv(EnvMode, "")
	os.Unsetenv(EnvMode)

	require.NoError(t, LoadEnv(file, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "vendor", os.Getenv(EnvMode))

	f := flag.NewFlagSet("pa", flag.ContinueOnError)
	SetGlobalFlags(f)
	assert.Equal(t, "vendor", f.Lookup("mode").DefValue)
	assert.Equal(t, "riferimenti", f.Lookup("refs").DefValue)
}
