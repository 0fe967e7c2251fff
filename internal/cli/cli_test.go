package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

const testConfig = `backend: sqlite
log_level: error
properties:
  - name: count
    kind: int
    min: 0
    max: 10
  - name: title
    kind: text
  - name: tags
    kind: list<text>
`

// env is one isolated configuration and data directory pair.
type env struct {
	configDir string
	dataDir   string
}

func newEnv(t *testing.T, config string) env {
	t.Helper()
	e := env{configDir: t.TempDir(), dataDir: t.TempDir()}
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(e.configDir, "config.yaml"), []byte(config), 0o644))
	}
	return e
}

// run executes satchel with the env's directories and returns stdout,
// stderr, and the exit code.
func (e env) run(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code := run(full, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func (e env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, code := e.run(args...)
	require.Equal(t, exitSuccess, code, "satchel %v: %s", args, errOut)
	return out
}

func TestVersion(t *testing.T) {
	out := newEnv(t, testConfig).mustRun(t, "version")
	assert.Contains(t, out, "satchel v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestInit(t *testing.T) {
	e := newEnv(t, testConfig)
	out := e.mustRun(t, "init")
	assert.Contains(t, out, "satchel initialized in")
	assert.FileExists(t, filepath.Join(e.dataDir, "records.jsonl"))
}

func TestDefaultConfigWritten(t *testing.T) {
	e := newEnv(t, "")
	e.mustRun(t, "list")

	content, err := os.ReadFile(filepath.Join(e.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "backend: sqlite")
	assert.Contains(t, string(content), "name: priority")
}

func TestRecordLifecycle(t *testing.T) {
	e := newEnv(t, testConfig)

	id := strings.TrimSpace(e.mustRun(t, "new", "title=hello"))
	require.NotEmpty(t, id)

	assert.Equal(t, "0\n", e.mustRun(t, "get", id, "count"))
	assert.Equal(t, "hello\n", e.mustRun(t, "get", id, "title"))

	assert.Equal(t, "10\n", e.mustRun(t, "set", id, "count", "99"), "values are clamped on write")
	e.mustRun(t, "set", id, "title", "a|>b")
	assert.Equal(t, "a|>b\n", e.mustRun(t, "get", id, "title"))

	var recs []types.Record
	require.NoError(t, json.Unmarshal([]byte(e.mustRun(t, "--format", "json", "list")), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].RecordID)
	assert.Equal(t, "count=>10|>title=>a|->b|>tags=>|>", recs[0].Data)

	e.mustRun(t, "clear", id, "count")
	assert.Equal(t, "0\n", e.mustRun(t, "get", id, "count"))

	e.mustRun(t, "delete", id)
	assert.Equal(t, "", e.mustRun(t, "list"))
}

func TestShowJSON(t *testing.T) {
	e := newEnv(t, testConfig)
	id := strings.TrimSpace(e.mustRun(t, "new", "count=4", "tags=x<|y"))

	var view struct {
		RecordID   string `json:"record_id"`
		Properties []struct {
			Name    string `json:"name"`
			Kind    string `json:"kind"`
			Value   any    `json:"value"`
			Encoded string `json:"encoded"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(e.mustRun(t, "--format", "json", "show", id)), &view))

	assert.Equal(t, id, view.RecordID)
	require.Len(t, view.Properties, 3)
	assert.Equal(t, "count", view.Properties[0].Name)
	assert.Equal(t, float64(4), view.Properties[0].Value)
	assert.Equal(t, "list<text>", view.Properties[2].Kind)
	assert.Equal(t, []any{"x", "y"}, view.Properties[2].Value)
	assert.Equal(t, "x<|y", view.Properties[2].Encoded)
}

func TestShowText(t *testing.T) {
	e := newEnv(t, testConfig)
	id := strings.TrimSpace(e.mustRun(t, "new", "title=note"))

	out := e.mustRun(t, "show", id)
	assert.Contains(t, out, "ID:       "+id)
	assert.Regexp(t, `(?m)^title\s+note$`, out)
}

func TestDecode(t *testing.T) {
	e := newEnv(t, testConfig)

	var view decodeView
	out := e.mustRun(t, "--format", "json", "decode", "count=>42|>ghost=>1|>title=>a|->b|>")
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	require.Len(t, view.Properties, 3)
	assert.Equal(t, "10", view.Properties[0].Encoded)
	assert.Equal(t, "a|>b", view.Properties[1].Value)
	assert.Equal(t, []string{"ghost"}, view.Unknown)
}

func TestListFilters(t *testing.T) {
	e := newEnv(t, testConfig)
	for _, title := range []string{"alpha", "beta", "gamma"} {
		e.mustRun(t, "new", "title="+title)
	}

	lines := func(s string) int { return len(strings.Split(strings.TrimSpace(s), "\n")) }
	assert.Equal(t, 3, lines(e.mustRun(t, "list")))
	assert.Equal(t, 1, lines(e.mustRun(t, "list", "--contains", "beta")))
	assert.Equal(t, 2, lines(e.mustRun(t, "list", "--limit", "2")))
	assert.Equal(t, 1, lines(e.mustRun(t, "list", "--offset", "2")))
}

func TestYAMLOutput(t *testing.T) {
	e := newEnv(t, testConfig)
	id := strings.TrimSpace(e.mustRun(t, "new"))

	out := e.mustRun(t, "--format", "yaml", "get", id, "tags")
	assert.Contains(t, out, "name: tags")
	assert.Contains(t, out, "kind: list<text>")
}

func TestExitCodes(t *testing.T) {
	e := newEnv(t, testConfig)
	id := strings.TrimSpace(e.mustRun(t, "new"))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown property", []string{"get", id, "missing"}, exitUserError},
		{"unknown record", []string{"get", "nope", "count"}, exitUserError},
		{"wrong arg count", []string{"set", id, "count"}, exitUserError},
		{"unknown format", []string{"--format", "xml", "list"}, exitUserError},
		{"delete missing", []string{"delete", "nope"}, exitUserError},
		{"new without equals", []string{"new", "count"}, exitUserError},
		{"new unknown property", []string{"new", "bogus=1"}, exitUserError},
		{"unknown command", []string{"frobnicate"}, exitUserError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, code := e.run(tt.args...)
			assert.Equal(t, tt.want, code)
			assert.Contains(t, errOut, "satchel:")
		})
	}
}

func TestInvalidPropertiesConfig(t *testing.T) {
	e := newEnv(t, "properties:\n  - name: a\n    kind: list<\n")
	_, errOut, code := e.run("list")
	assert.Equal(t, exitUserError, code)
	assert.Contains(t, errOut, "invalid properties")
}

func TestUnknownBackendIsUserError(t *testing.T) {
	e := newEnv(t, "backend: postgres\n")
	_, _, code := e.run("list")
	assert.Equal(t, exitUserError, code)
}

func TestPlain(t *testing.T) {
	v := map[any]any{
		int64(1): map[any]struct{}{"b": {}, "a": {}},
		int64(2): []any{map[any]any{"k": 1.5}},
	}
	assert.Equal(t, map[string]any{
		"1": []any{"a", "b"},
		"2": []any{map[string]any{"k": 1.5}},
	}, plain(v))
}
