package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mabhi256/jlint/internal/graph"
	"github.com/mabhi256/jlint/utils"
)

var (
	depsJSON  bool
	depsClass string
)

var depsCmd = &cobra.Command{
	Use:               "deps [class-dir]",
	Short:             "Show relationships between classes and dependency cycles",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteClassDirectories(),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateDir(args[0])
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		cfg, err := loadConfig(cmd, dir)
		if err != nil {
			return err
		}

		ctx, err := loadContext(dir, cfg, newLogger(cfg))
		if err != nil {
			return err
		}

		edges := ctx.Matrix.Edges()
		if depsClass != "" {
			if !ctx.Matrix.Contains(depsClass) {
				return fmt.Errorf("class %s not found in %s", depsClass, dir)
			}
			edges = ctx.Matrix.Outgoing(depsClass)
		}
		cycles := graph.DetectCycles(ctx.Matrix)

		out := cmd.OutOrStdout()
		if depsJSON {
			var cycleStrings []string
			for _, c := range cycles {
				cycleStrings = append(cycleStrings, c.String())
			}
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(map[string]any{"edges": edges, "cycles": cycleStrings})
		}

		fmt.Fprintf(out, "🔗 %d relationship(s) between %d class(es)\n\n", len(edges), ctx.ClassCount())
		for _, e := range edges {
			style := utils.GetRelationshipStyle(e.Kind.String())
			fmt.Fprintf(out, "%s %s %s\n", e.From, style.Render(e.Kind.Describe()), e.To)
		}

		if len(cycles) == 0 {
			fmt.Fprintln(out, "\n✅ No dependency cycles")
			return nil
		}
		fmt.Fprintf(out, "\n🔴 %d dependency cycle(s)\n", len(cycles))
		for _, c := range cycles {
			fmt.Fprintf(out, "   %s\n", c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().BoolVar(&depsJSON, "json", false, "Print relationships as JSON")
	depsCmd.Flags().StringVar(&depsClass, "class", "", "Only show relationships going out of this class")
	addAnalysisFlags(depsCmd)
}
