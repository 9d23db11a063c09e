package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mabhi256/jlint/internal/config"
	"github.com/mabhi256/jlint/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve lint tools over the Model Context Protocol (stdio)",
	Long: `Starts an MCP server on stdin/stdout exposing:
  lint_classes        run checks over a class directory
  list_checks         list the check catalogue
  class_dependencies  relationships and cycles between classes

Logs go to stderr so they never corrupt the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.New(newLogger(config.Default()), version).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
