package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/report"
	"github.com/mabhi256/jlint/utils"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List available lint checks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.OutOrStdout())
	},
}

func printCatalog(out io.Writer) {
	fmt.Fprintln(out, "Available Lint Checks:")
	for _, entry := range lint.Catalog() {
		check := entry.New(lint.CatalogOptions{})
		severity := report.Severity(entry.Name)
		fmt.Fprintf(out, "%d. %s %s - %s\n",
			entry.Number,
			utils.GetSeverityIcon(severity),
			utils.GetSeverityStyle(severity).Render(entry.Name),
			check.Description())
	}
}

// completeChecks offers check numbers after the last comma, e.g. "1,3,<TAB>"
func completeChecks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}

	completions := []string{}
	if prefix == "" {
		completions = append(completions, "all\tEvery check")
	}
	for _, entry := range lint.Catalog() {
		completions = append(completions, prefix+strconv.Itoa(entry.Number)+"\t"+entry.Name)
	}

	return completions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
