package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mabhi256/jlint/internal/config"
	"github.com/mabhi256/jlint/internal/lint"
	"github.com/mabhi256/jlint/internal/loader"
	"github.com/mabhi256/jlint/internal/logger"
	"github.com/mabhi256/jlint/utils"
)

// Flags shared by every command that analyses a class directory
var (
	configPath       string
	ignorePatterns   []string
	includeSynthetic bool
)

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: <dir>/"+config.DefaultFileName+")")
	cmd.Flags().StringSliceVar(&ignorePatterns, "ignore", nil, "Gitignore-style patterns to skip, repeatable")
	cmd.Flags().BoolVar(&includeSynthetic, "include-synthetic", false, "Analyse compiler-generated members")

	cmd.RegisterFlagCompletionFunc("config", utils.CompleteFilesByExtension([]string{".yml", ".yaml"}))
}

// loadConfig reads the config file and applies any analysis flags the user set
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	cfg, err := config.Load(configPath, dir)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = append(cfg.Ignore, ignorePatterns...)
	}
	if cmd.Flags().Changed("include-synthetic") {
		cfg.IncludeSynthetic = includeSynthetic
	}

	return cfg, nil
}

// loadContext loads and classifies every class under dir. Files that could not be
// decoded are reported on stderr and skipped.
func loadContext(dir string, cfg *config.Config, log hclog.Logger) (*lint.Context, error) {
	ctx, problems, err := loader.New(log.Named("loader")).LoadContext(dir, cfg.Ignore, cfg.IncludeSynthetic)
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "⚠️  Skipping %s\n", p.Error())
	}
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

func newLogger(cfg *config.Config) hclog.Logger {
	return logger.New(cfg, "jlint")
}

func validateDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dir)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	return nil
}
