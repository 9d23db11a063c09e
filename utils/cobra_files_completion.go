package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// CompleteFilesByExtension suggests directories and files ending in one of the extensions
func CompleteFilesByExtension(extensions []string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completePaths(toComplete, func(name string) bool {
			return hasExtension(name, extensions)
		})
	}
}

// CompleteClassDirectories suggests directories only, for commands that analyse a class output folder
func CompleteClassDirectories() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return completePaths(toComplete, func(string) bool { return false })
	}
}

func completePaths(toComplete string, acceptFile func(name string) bool) ([]string, cobra.ShellCompDirective) {
	dir := filepath.Dir(toComplete)
	prefix := filepath.Base(toComplete)

	// If no path separator, we're completing in current directory
	if !strings.Contains(toComplete, "/") {
		dir = "."
		prefix = toComplete
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var suggestions []string
	for _, file := range files {
		name := file.Name()

		// Skip hidden files and non-matching prefixes
		if strings.HasPrefix(name, ".") || !strings.HasPrefix(name, prefix) {
			continue
		}

		suggestion := name
		if dir != "." {
			suggestion = filepath.Join(dir, name)
		}

		if file.IsDir() {
			suggestions = append(suggestions, suggestion+"/")
		} else if acceptFile(name) {
			suggestions = append(suggestions, suggestion)
		}
	}

	slices.Sort(suggestions)
	return suggestions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func hasExtension(filename string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
