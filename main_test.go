package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcncl/rdjson/internal/config"
	"github.com/mcncl/rdjson/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestContext(mode string) (*Context, *bytes.Buffer, *bytes.Buffer) {
	cfg := config.NewConfig()
	cfg.Output.Mode = mode
	var stdout, stderr bytes.Buffer
	return &Context{Config: cfg, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRun_Modes(t *testing.T) {
	const doc = `{"name": "John", "age": 30, "tags": ["a", "b"]}`

	tests := []struct {
		mode     string
		contains []string
	}{
		{config.ModeCheck, []string{"ok: 3 entries"}},
		{config.ModeTree, []string{"object (3 entries)", "  age: number 30 (integer)", "    [1]: string \"b\""}},
		{config.ModeSummary, []string{"objects:   1", "strings:   3", "keys:      3", "max depth: 2"}},
		{config.ModeStructs, []string{"package main", "type RootType struct {", "Tags []string `json:\"tags,omitempty\"`"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			ctx, stdout, _ := newTestContext(tt.mode)
			ctx.Stdin = strings.NewReader(doc)

			require.NoError(t, run(ctx))
			for _, want := range tt.contains {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestRun_FileInputAndOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "user.json", `{"id": 1, "email": "test@example.com"}`)
	output := filepath.Join(dir, "user.go")

	ctx, stdout, stderr := newTestContext(config.ModeStructs)
	ctx.Config.Output.Package = "models"
	ctx.Config.Output.RootName = "User"
	ctx.Input = input
	ctx.Output = output

	require.NoError(t, run(ctx))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Output written to")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package models")
	assert.Contains(t, string(content), "type User struct {")
	assert.Contains(t, string(content), "Email string `json:\"email\"`")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		setup func(ctx *Context)
		want  string
	}{
		{
			name:  "no input",
			setup: func(ctx *Context) {},
			want:  "Input error: no input provided",
		},
		{
			name:  "missing file",
			setup: func(ctx *Context) { ctx.Input = filepath.Join(dir, "missing.json") },
			want:  "not found",
		},
		{
			name:  "empty stdin",
			setup: func(ctx *Context) { ctx.Stdin = strings.NewReader("") },
			want:  "Input error: empty input received",
		},
		{
			name:  "parse failure",
			setup: func(ctx *Context) { ctx.Stdin = strings.NewReader(`{"a": [1, 2,]}`) },
			want:  "TrailingCommaNoFollowingElement",
		},
		{
			name: "unknown mode",
			setup: func(ctx *Context) {
				ctx.Stdin = strings.NewReader(`{}`)
				ctx.Config.Output.Mode = "xml"
			},
			want: "Configuration error: unknown output mode 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newTestContext(config.ModeCheck)
			tt.setup(ctx)

			err := run(ctx)
			require.Error(t, err)
			assert.Contains(t, errors.UserFriendlyError(err), tt.want)
		})
	}
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.json", `{"a": {"b": [true, null]}}`)
	cfgPath := writeFile(t, dir, "rdjson.yml", "output:\n  mode: summary\n")

	t.Run("config file selects mode", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := execute(&CLI{Input: input, Config: cfgPath}, nil, &stdout, &stderr)
		assert.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "max depth: 3")
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := execute(&CLI{Input: input, Config: cfgPath, Mode: config.ModeCheck}, nil, &stdout, &stderr)
		assert.Equal(t, 0, code, stderr.String())
		assert.Equal(t, "ok: 1 entries\n", stdout.String())
	})

	t.Run("depth limit from flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := execute(&CLI{Input: input, Config: cfgPath, MaxDepth: 2}, nil, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "DepthLimitExceeded")
		assert.Contains(t, stderr.String(), "For help, run: rdjson --help")
	})

	t.Run("invalid mode", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := execute(&CLI{Input: input, Config: cfgPath, Mode: "xml"}, nil, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "Configuration error: invalid output mode 'xml'")
	})

	t.Run("log file receives debug output", func(t *testing.T) {
		logPath := filepath.Join(dir, "rdjson.log")
		var stdout, stderr bytes.Buffer
		code := execute(&CLI{Input: input, Config: cfgPath, LogFile: logPath}, nil, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())

		content, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[parser]")
	})
}
