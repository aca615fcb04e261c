package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the command tree in-process and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runCLIWithStderr(t, args...)
	return stdout, err
}

func runCLIWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_Convert(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "vault")
	require.NoError(t, os.WriteFile(filepath.Join(in, "202504211559 My Note.md"),
		[]byte("Title: Foo\nDate: 2024-01-01\nKeywords: #a #b\n[[202504211559]]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "scratch.md"), []byte("raw"), 0644))

	stdout, err := runCLI(t, in, out)
	require.NoError(t, err)
	assert.Equal(t, "Converted: 202504211559 My Note.md\nCopied: scratch.md\n", stdout)

	data, err := os.ReadFile(filepath.Join(out, "202504211559 My Note.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "---\n\n[[202504211559 My Note|202504211559]]\n"))

	stdout, err = runCLI(t, "inspect", filepath.Join(out, "202504211559 My Note.md"))
	require.NoError(t, err)
	titleAt := strings.Index(stdout, `"title"`)
	aliasesAt := strings.Index(stdout, `"aliases"`)
	assert.True(t, titleAt >= 0 && aliasesAt > titleAt, "unexpected inspect output:\n%s", stdout)
	assert.Contains(t, stdout, `"id": "202504211559"`)
}

func TestCLI_RequiresTwoArgs(t *testing.T) {
	_, err := runCLI(t, t.TempDir())
	assert.Error(t, err)

	_, err = runCLI(t)
	assert.Error(t, err)
}

func TestCLI_RefusesOutputEqualToInput(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "1 One.md"), []byte("x"), 0644))

	_, err := runCLI(t, in, in)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(in, "1 One.md"))
	assert.NoError(t, statErr)
}

func TestCLI_ErrorsAreNotPrintedByCobra(t *testing.T) {
	in := t.TempDir()

	_, stderr, err := runCLIWithStderr(t, in, in)
	require.Error(t, err)
	assert.NotContains(t, stderr, "Error:")
}

func TestCLI_InputNamedLikeSubcommand(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "watch"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "watch", "1 One.md"), []byte("Keywords:\n"), 0644))
	t.Chdir(base)

	stdout, err := runCLI(t, "./watch", "vault")
	require.NoError(t, err)
	assert.Equal(t, "Converted: 1 One.md\n", stdout)

	_, err = os.Stat(filepath.Join(base, "vault", "1 One.md"))
	assert.NoError(t, err)
}

func TestCLI_InspectRejectsPlainNotes(t *testing.T) {
	file := filepath.Join(t.TempDir(), "1 One.md")
	require.NoError(t, os.WriteFile(file, []byte("Title: x\n"), 0644))

	_, err := runCLI(t, "inspect", file)
	assert.Error(t, err)
}

func TestCLI_Version(t *testing.T) {
	stdout, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "zkconv version "))
}
