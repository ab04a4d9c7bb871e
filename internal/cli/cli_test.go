package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/render"
	"github.com/pablasso/prdkanban/internal/testutil"
)

// resetFlags restores every flag of cmd and its children to its default so
// package-level commands can be executed more than once.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args in an empty working directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	testutil.SetupTestDir(t)
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunGenerate_PrintsOutline(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := GenerateOptions{
		Input:  board.Input{Goal: "Ship MVP", Duration: "2 days"},
		Format: render.FormatOutline,
	}

	require.NoError(t, runGenerate(opts, &stdout, &stderr, &testutil.Clipboard{}))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "# PRD → Kanban: Ship MVP\n"))
	assert.Equal(t, 12, strings.Count(out, "- [ ] **T-"))
	assert.Empty(t, stderr.String())
}

func TestRunGenerate_JSONParsesBack(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts := GenerateOptions{Input: board.Input{Team: "solo"}, Format: render.FormatJSON}

	require.NoError(t, runGenerate(opts, &stdout, &stderr, &testutil.Clipboard{}))

	doc, err := render.ParseJSON(stdout.Bytes())
	require.NoError(t, err)
	assert.Len(t, doc.Tasks, 12)
	assert.Equal(t, "PRD → Kanban", doc.Title)
}

func TestRunGenerate_Copy(t *testing.T) {
	t.Run("copies the requested rendering", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cb := &testutil.Clipboard{}
		opts := GenerateOptions{Format: render.FormatOutline, Copy: render.FormatJSON}

		require.NoError(t, runGenerate(opts, &stdout, &stderr, cb))

		assert.True(t, strings.HasPrefix(cb.Got, "{\n"), "clipboard got %q", cb.Got)
		assert.True(t, strings.HasPrefix(stdout.String(), "# "))
		assert.Equal(t, "Copied JSON!\n", stderr.String())
	})

	t.Run("same format copies printed text", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cb := &testutil.Clipboard{}
		opts := GenerateOptions{Format: render.FormatOutline, Copy: render.FormatOutline}

		require.NoError(t, runGenerate(opts, &stdout, &stderr, cb))
		assert.Equal(t, stdout.String(), cb.Got)
		assert.Equal(t, "Copied MD!\n", stderr.String())
	})

	t.Run("failure is reported but not fatal", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cb := &testutil.Clipboard{Err: errors.New("permission denied")}
		opts := GenerateOptions{Format: render.FormatOutline, Copy: render.FormatOutline}

		require.NoError(t, runGenerate(opts, &stdout, &stderr, cb))
		assert.NotEmpty(t, stdout.String())
		assert.Equal(t, "Copy failed: clipboard unavailable\n", stderr.String())
		assert.NotContains(t, stderr.String(), "Copied")
	})
}

func TestRunGenerate_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "boards")
	var stdout, stderr bytes.Buffer
	opts := GenerateOptions{Input: board.Input{Goal: "Ship MVP"}, Format: render.FormatYAML, OutDir: dir}

	require.NoError(t, runGenerate(opts, &stdout, &stderr, &testutil.Clipboard{}))

	for _, ext := range []string{".md", ".json", ".yaml"} {
		path := filepath.Join(dir, "prd-kanban-ship-mvp"+ext)
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
		assert.Contains(t, stderr.String(), "Wrote "+path)
	}
}

func TestExportFormats(t *testing.T) {
	assert.Equal(t, []render.Format{render.FormatOutline, render.FormatJSON}, exportFormats(render.FormatOutline))
	assert.Equal(t, []render.Format{render.FormatOutline, render.FormatJSON}, exportFormats(render.FormatJSON))
	assert.Equal(t, []render.Format{render.FormatOutline, render.FormatJSON, render.FormatYAML}, exportFormats(render.FormatYAML))
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	doc := board.Generate(board.Input{Goal: "Ship MVP", Constraints: "no DB changes"})
	paths, err := render.WriteFiles(dir, doc, []render.Format{render.FormatJSON, render.FormatYAML})
	require.NoError(t, err)

	for _, path := range paths {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			var stdout bytes.Buffer
			require.NoError(t, runRender(path, render.FormatOutline, nil, &stdout))
			assert.Equal(t, render.Outline(doc), stdout.String())
		})
	}

	t.Run("stdin", func(t *testing.T) {
		text, err := render.ExportJSON(doc)
		require.NoError(t, err)
		var stdout bytes.Buffer
		require.NoError(t, runRender("-", render.FormatYAML, strings.NewReader(text), &stdout))
		assert.Contains(t, stdout.String(), "title: 'PRD → Kanban: Ship MVP'")
	})
}

func TestRunRender_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		err := runRender(filepath.Join(dir, "nope.json"), render.FormatOutline, nil, &bytes.Buffer{})
		assert.ErrorContains(t, err, "failed to read export")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"title":`), 0o644))
		err := runRender(path, render.FormatOutline, nil, &bytes.Buffer{})
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("forward dependency", func(t *testing.T) {
		path := filepath.Join(dir, "forward.json")
		body := `{"title": "x", "createdAt": "2026-10-15T09:30:00.000Z",
  "tasks": [
    {"id": "T-01", "title": "a", "status": "todo", "dependsOn": ["T-02"]},
    {"id": "T-02", "title": "b", "status": "todo"}
  ]}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		err := runRender(path, render.FormatOutline, nil, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrForwardDependency), "got %v", err)
	})
}

func TestExecute_Generate(t *testing.T) {
	stdout, _, err := execute(t, "generate", "--goal", "Ship MVP", "--duration", "2 days", "--format", "json")
	require.NoError(t, err)

	doc, err := render.ParseJSON([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "PRD → Kanban: Ship MVP", doc.Title)
	assert.Len(t, doc.Tasks, 12)
}

func TestExecute_GenerateUsesConfigDefaults(t *testing.T) {
	dir := testutil.SetupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prdkanban.yaml"),
		[]byte("format: json\ndefaults:\n  team: solo\n  duration: 1 week\n"), 0o644))

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"generate", "--config", filepath.Join(dir, "prdkanban.yaml"), "--duration", ""})
	require.NoError(t, rootCmd.Execute())

	doc, err := render.ParseJSON(stdout.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "solo", doc.Input.Team)
	assert.Equal(t, "", doc.Input.Duration, "an explicit empty flag wins over the config")
	assert.Len(t, doc.Tasks, 12)
}

func TestExecute_GenerateRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "generate", "--format", "csv")
	assert.ErrorContains(t, err, `unknown format "csv"`)
}

func TestExecute_VersionIgnoresBrokenConfig(t *testing.T) {
	dir := testutil.SetupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prdkanban.yaml"), []byte("format: [unclosed\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PRDKANBAN_TEAM=\"unterminated\n"), 0o644))

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(stdout.String(), "prdkanban dev"), "got %q", stdout.String())

	rootCmd.SetArgs([]string{"generate"})
	assert.Error(t, rootCmd.Execute(), "other commands still read the config")
}

func TestExecute_Version(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "prdkanban dev"), "got %q", stdout)
}
