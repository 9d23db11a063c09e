package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mabhi256/jlint/internal/uml"
	"github.com/mabhi256/jlint/utils"
)

var (
	umlOutput   string
	umlToStdout bool
)

var umlCmd = &cobra.Command{
	Use:               "uml [class-dir]",
	Short:             "Generate a PlantUML class diagram",
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
		if cmd.Flags().Changed("renderer") {
			cfg.UML.Renderer = umlRenderer
		}
		if cmd.Flags().Changed("out") {
			cfg.UML.Output = umlOutput
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, err := loadContext(dir, cfg, newLogger(cfg))
		if err != nil {
			return err
		}

		renderer, err := uml.NewRenderer(cfg.UML.Renderer)
		if err != nil {
			return err
		}

		content, err := uml.Generate(cmd.Context(), ctx.Classes, ctx.Matrix, ctx.Bytecode, renderer)
		if err != nil {
			return fmt.Errorf("failed to generate diagram: %w", err)
		}

		if umlToStdout {
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		}

		written, err := uml.WriteFile(dir, cfg.UML.Output, content)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ PlantUML diagram written to %s\n", written)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(umlCmd)

	umlCmd.Flags().StringVar(&umlOutput, "out", uml.DefaultOutput, "Diagram file name inside the class directory, or an absolute path")
	umlCmd.Flags().StringVar(&umlRenderer, "renderer", uml.RendererNative, "Class renderer (native|genuml)")
	umlCmd.Flags().BoolVar(&umlToStdout, "stdout", false, "Print the diagram instead of writing a file")
	addAnalysisFlags(umlCmd)

	umlCmd.RegisterFlagCompletionFunc("renderer", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{uml.RendererNative, uml.RendererGenuml}, cobra.ShellCompDirectiveNoFileComp
	})
}
