package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mabhi256/jlint/internal/config"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/report"
	"github.com/mabhi256/jlint/internal/tui"
	"github.com/mabhi256/jlint/internal/uml"
	"github.com/mabhi256/jlint/utils"
)

var (
	checksSelection string
	outputFormat    string
	outFile         string
	umlRenderer     string
	interactive     bool
)

var lintCmd = &cobra.Command{
	Use:   "lint [class-dir]",
	Short: "Run lint checks over compiled .class files",
	Long: `Lint loads every .class file under a directory, classifies the relationships
between the classes and runs the selected checks.

Checks are selected by number (see 'jlint checks'):
  jlint lint build/classes                  # all checks, styled summary
  jlint lint build/classes -c 1,3,5         # only checks 1, 3 and 5
  jlint lint build/classes -o sarif --out-file lint.sarif
  jlint lint build/classes -o tui           # browse results interactively
  jlint lint -i                             # prompt for folder and checks`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: utils.CompleteClassDirectories(),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("output") && !slices.Contains(config.ValidOutputs, outputFormat) {
			return fmt.Errorf("invalid output format: %s. Valid options: %v", outputFormat, config.ValidOutputs)
		}
		if len(args) == 0 && !interactive {
			return fmt.Errorf("a class directory is required unless --interactive is set")
		}
		if len(args) == 1 {
			return validateDir(args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		var dir string
		if len(args) == 1 {
			dir = args[0]
		} else {
			var err error
			if dir, err = promptLine(in, out, "Enter the folder path containing .class files: "); err != nil {
				return err
			}
			if err := validateDir(dir); err != nil {
				return err
			}
		}

		cfg, err := loadConfig(cmd, dir)
		if err != nil {
			return err
		}
		applyLintFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		log := newLogger(cfg)

		if interactive {
			printCatalog(out)
			fmt.Fprintln(out)
			if cfg.Checks, err = promptLine(in, out, "Select checks to run (comma-separated, e.g., 1,2,4) or 'all' for all checks: "); err != nil {
				return err
			}
		}

		engine, selectionErrs := lint.NewEngineFromSelection(log.Named("engine"), cfg.Checks, lint.CatalogOptions{
			Diagram: lint.DiagramOptions{Renderer: cfg.UML.Renderer, Output: cfg.UML.Output},
		})
		for _, e := range selectionErrs {
			fmt.Fprintf(os.Stderr, "❌ %v\n", e)
		}
		if engine.CheckCount() == 0 {
			return fmt.Errorf("no valid checks selected")
		}
		if interactive {
			fmt.Fprintf(out, "\nConfigured %d check(s)\n\n", engine.CheckCount())
		}

		ctx, err := loadContext(dir, cfg, log)
		if err != nil {
			return err
		}

		violations := engine.Analyze(ctx)

		for _, check := range engine.Checks() {
			if diagram, ok := check.(*lint.DiagramCheck); ok && diagram.Written != "" {
				fmt.Fprintf(os.Stderr, "📄 PlantUML diagram written to %s\n", diagram.Written)
			}
		}

		if cfg.Output == config.OutputTUI {
			return tui.StartTUI(ctx, violations)
		}

		return writeReport(out, cfg.Output, violations, ctx)
	},
}

func applyLintFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("checks") {
		cfg.Checks = checksSelection
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFormat
	}
	if cmd.Flags().Changed("renderer") {
		cfg.UML.Renderer = umlRenderer
	}
}

func writeReport(out io.Writer, format string, violations []lint.Violation, ctx *lint.Context) error {
	if outFile == "" {
		return report.Write(out, format, violations, ctx)
	}

	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outFile, err)
	}
	defer file.Close()

	if err := report.Write(file, format, violations, ctx); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✅ Report written to %s\n", outFile)
	return nil
}

func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&checksSelection, "checks", "c", "all", "Checks to run: 'all' or comma-separated numbers")
	lintCmd.Flags().StringVarP(&outputFormat, "output", "o", config.OutputCLI, "Output format")
	lintCmd.Flags().StringVar(&outFile, "out-file", "", "Write the report to a file instead of stdout")
	lintCmd.Flags().StringVar(&umlRenderer, "renderer", uml.RendererNative, "PlantUML renderer for the diagram check (native|genuml)")
	lintCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the folder and check selection")
	addAnalysisFlags(lintCmd)

	// When user types: jlint lint dir -o <TAB>
	lintCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.ValidOutputs, cobra.ShellCompDirectiveNoFileComp
	})
	lintCmd.RegisterFlagCompletionFunc("renderer", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{uml.RendererNative, uml.RendererGenuml}, cobra.ShellCompDirectiveNoFileComp
	})
	lintCmd.RegisterFlagCompletionFunc("checks", completeChecks)
}
