package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	installShell string
	installPrint bool
	installForce bool
)

var supportedShells = []string{"bash", "zsh", "fish", "powershell"}

// completionTarget is where and how one shell's completion script is installed
type completionTarget struct {
	shell    string
	path     string
	generate func(io.Writer) error
	activate string
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shell completions",
	Long: `Install writes the jlint completion script for your shell. Once loaded, the shell
completes class directories, check numbers for -c, output formats and renderers.

Nothing is installed unless this command is run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := installShell
		if shell == "" {
			shell = detectShell()
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}

		target, err := completionTargetFor(cmd.Root(), shell, home)
		if err != nil {
			return err
		}

		if installPrint {
			return target.generate(cmd.OutOrStdout())
		}

		out := cmd.OutOrStdout()
		if _, err := os.Stat(target.path); err == nil && !installForce {
			fmt.Fprintf(out, "✅ Already installed at %s (use --force to rewrite)\n", target.path)
			return nil
		}

		if err := writeCompletion(target); err != nil {
			return err
		}

		fmt.Fprintf(out, "✅ %s completions written to %s\n", target.shell, target.path)
		fmt.Fprintf(out, "🔄 Enable them now with:\n   %s\n", target.activate)
		fmt.Fprintln(out, "💡 Try: jlint lint <TAB>  or  jlint lint build/classes -c <TAB>")
		return nil
	},
}

func completionTargetFor(root *cobra.Command, shell, home string) (completionTarget, error) {
	name := root.Name()

	switch shell {
	case "bash":
		path := filepath.Join(home, ".local/share/bash-completion/completions", name)
		return completionTarget{
			shell:    shell,
			path:     path,
			generate: func(w io.Writer) error { return root.GenBashCompletionV2(w, true) },
			activate: "source " + path,
		}, nil
	case "zsh":
		dir := filepath.Join(home, ".zsh/completions")
		return completionTarget{
			shell:    shell,
			path:     filepath.Join(dir, "_"+name),
			generate: root.GenZshCompletion,
			activate: fmt.Sprintf("fpath=(%s $fpath) && autoload -U compinit && compinit", dir),
		}, nil
	case "fish":
		return completionTarget{
			shell:    shell,
			path:     filepath.Join(home, ".config/fish/completions", name+".fish"),
			generate: func(w io.Writer) error { return root.GenFishCompletion(w, true) },
			activate: "complete --do-complete=" + name,
		}, nil
	case "powershell":
		path := filepath.Join(home, name+"_completion.ps1")
		return completionTarget{
			shell:    shell,
			path:     path,
			generate: root.GenPowerShellCompletionWithDesc,
			activate: ". " + path,
		}, nil
	default:
		return completionTarget{}, fmt.Errorf("shell completion not supported for %q (supported: %v)", shell, supportedShells)
	}
}

func writeCompletion(target completionTarget) error {
	if err := os.MkdirAll(filepath.Dir(target.path), 0755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}

	file, err := os.Create(target.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target.path, err)
	}
	defer file.Close()

	if err := target.generate(file); err != nil {
		return fmt.Errorf("failed to generate %s completions: %w", target.shell, err)
	}
	return nil
}

func detectShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "bash"
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVar(&installShell, "shell", "", "Shell to install for (default: detected from $SHELL)")
	installCmd.Flags().BoolVar(&installPrint, "print", false, "Print the completion script instead of installing it")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Rewrite an existing completion script")

	installCmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return supportedShells, cobra.ShellCompDirectiveNoFileComp
	})
}
