package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabhi256/jlint/internal/lint"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCompletionTargetFor(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		shell string
		path  string
	}{
		{"bash", filepath.Join(home, ".local/share/bash-completion/completions", "jlint")},
		{"zsh", filepath.Join(home, ".zsh/completions", "_jlint")},
		{"fish", filepath.Join(home, ".config/fish/completions", "jlint.fish")},
		{"powershell", filepath.Join(home, "jlint_completion.ps1")},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			target, err := completionTargetFor(rootCmd, tt.shell, home)
			require.NoError(t, err)
			assert.Equal(t, tt.path, target.path)
			assert.NotEmpty(t, target.activate)
		})
	}

	_, err := completionTargetFor(rootCmd, "tcsh", home)
	assert.ErrorContains(t, err, `not supported for "tcsh"`)
}

func TestWriteCompletion(t *testing.T) {
	target, err := completionTargetFor(rootCmd, "bash", t.TempDir())
	require.NoError(t, err)

	require.NoError(t, writeCompletion(target))

	script, err := os.ReadFile(target.path)
	require.NoError(t, err)
	assert.Contains(t, string(script), "__complete")
	assert.Contains(t, string(script), "jlint")
}

func TestCommandsDoNotTouchHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHELL", "/bin/bash")

	out := execute(t, "checks")
	assert.Contains(t, out, lint.EqualsHashCodeCheckName)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries, "only the install command may write completion files")
}

func TestCheckSelectionCompletesThroughRoot(t *testing.T) {
	out := execute(t, "__complete", "lint", "build/classes", "-c", "1,")

	assert.Contains(t, out, "1,5\t"+lint.CircularDependencyCheckName)
	assert.NotContains(t, out, "all\t")
}
