package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ytget/file-picker/internal/config"
	"github.com/ytget/file-picker/internal/picker"
)

const testConfig = `
backend: prompt
file_types:
  comics:
    android: [application/comics]
    ios: [public.my.comic.extension]
    windows: [.cbr]
`

// execute runs the CLI with an isolated config file
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0o644))
	t.Setenv(config.EnvConfigPath, configPath)

	cmd := newRootCmd(strings.NewReader(stdin))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeNotes(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "file-picker dev")
}

func TestPick_DryRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name: "android png",
			args: []string{"--platform", "android", "--png"},
			contains: []string{
				"Title:    Select file",
				"Types:    image/png",
				"Intent:   am start -a android.intent.action.GET_CONTENT -t */* -c android.intent.category.OPENABLE --esa android.intent.extra.MIME_TYPES image/png",
			},
		},
		{
			name:     "android any type",
			args:     []string{"--platform", "android"},
			contains: []string{"Types:    any", "Intent:   am start"},
			excludes: []string{"--esa"},
		},
		{
			name:     "ios images with title",
			args:     []string{"--platform", "ios", "--images", "--title", "Please select an image"},
			contains: []string{"Title:    Please select an image", "Types:    public.png, public.jpeg"},
			excludes: []string{"Intent:"},
		},
		{
			name:     "configured type",
			args:     []string{"--platform", "uwp", "--type", "comics"},
			contains: []string{"Platform: Windows", "Types:    .cbr"},
		},
		{
			name:     "explicit accept list",
			args:     []string{"--platform", "linux", "--accept", "application/pdf,text/plain"},
			contains: []string{"Types:    application/pdf, text/plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"pick", "--dry-run"}, tt.args...)
			stdout, _, err := execute(t, "", args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, stdout, unwanted)
			}
		})
	}
}

func TestPick_Prompt(t *testing.T) {
	path := writeNotes(t)

	stdout, stderr, err := execute(t, path+"\n", "pick", "--platform", "linux")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Enter file path")
	assert.Contains(t, stdout, "Name: notes.txt")
	assert.Contains(t, stdout, "Path: "+path+" (file)")
	assert.Contains(t, stdout, "Size: 5 B")
}

func TestPick_Cancelled(t *testing.T) {
	stdout, stderr, err := execute(t, "\n", "pick", "--platform", "linux")
	assert.ErrorIs(t, err, picker.ErrCancelled)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No file picked")
}

func TestPick_Cat(t *testing.T) {
	path := writeNotes(t)

	stdout, _, err := execute(t, path+"\n", "pick", "--platform", "linux", "--cat")
	require.NoError(t, err)
	assert.Equal(t, "hello", stdout)
}

func TestPick_Out(t *testing.T) {
	path := writeNotes(t)
	dest := filepath.Join(t.TempDir(), "copies", "notes-copy.txt")

	stdout, _, err := execute(t, path+"\n", "pick", "--platform", "linux", "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved notes.txt (5 B)")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestResolve_YAML(t *testing.T) {
	path := writeNotes(t)

	stdout, _, err := execute(t, "", "resolve", path, "--format", "yaml")
	require.NoError(t, err)

	var view resultView
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, "notes.txt", view.Name)
	assert.Equal(t, path, view.Path)
	assert.Equal(t, "file", view.PathSource)
	assert.Equal(t, uint64(5), view.Size)
	assert.NotEmpty(t, view.RequestID)
}

func TestTypes(t *testing.T) {
	stdout, _, err := execute(t, "", "types", "--platform", "android")
	require.NoError(t, err)
	assert.Contains(t, stdout, "images")
	assert.Contains(t, stdout, "image/png, image/jpeg [.png .jpg .jpeg]")
	assert.Contains(t, stdout, "comics")
	assert.Contains(t, stdout, "application/comics")
	assert.NotContains(t, stdout, "iOS")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown platform", args: []string{"pick", "--dry-run", "--platform", "plan9"}, want: "unknown platform"},
		{name: "unknown type", args: []string{"pick", "--dry-run", "--type", "missing"}, want: "not defined"},
		{name: "unknown backend", args: []string{"pick", "--backend", "nope"}, want: "unknown picker backend"},
		{name: "unknown format", args: []string{"resolve", "/tmp", "--format", "xml"}, want: "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
