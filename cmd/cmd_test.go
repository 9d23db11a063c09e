package cmd

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabhi256/jlint/internal/lint"
)

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Available Lint Checks:\n"))
	for _, entry := range lint.Catalog() {
		assert.Contains(t, out, entry.Name)
	}
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "7. ")
}

func TestCompleteChecks(t *testing.T) {
	completions, directive := completeChecks(nil, nil, "")
	require.Len(t, completions, len(lint.Catalog())+1)
	assert.Equal(t, "all\tEvery check", completions[0])
	assert.Equal(t, "1\t"+lint.EqualsHashCodeCheckName, completions[1])
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp|cobra.ShellCompDirectiveNoSpace, directive)

	completions, _ = completeChecks(nil, nil, "1,3,")
	require.Len(t, completions, len(lint.Catalog()))
	assert.Equal(t, "1,3,1\t"+lint.EqualsHashCodeCheckName, completions[0])
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "A.class")
	require.NoError(t, os.WriteFile(file, []byte{0xCA, 0xFE}, 0644))

	assert.NoError(t, validateDir(dir))

	err := validateDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory does not exist")

	err = validateDir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestPromptLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"trims newline", "build/classes\n", "build/classes", false},
		{"no trailing newline", " 1,2 ", "1,2", false},
		{"empty input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptLine(bufio.NewReader(strings.NewReader(tt.input)), &out, "> ")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "> ", out.String())
		})
	}
}
