// Package cli provides the command-line interface for reportctl.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grubhold/repo-reports-mcp/internal/config"
	"github.com/grubhold/repo-reports-mcp/internal/github"
	"github.com/grubhold/repo-reports-mcp/internal/store"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and store, built once per invocation
	cfg         config.Config
	reportStore *store.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Operate repo reports from the terminal",
	Long: `Reportctl reads and manages the Markdown reports a repo-reports-mcp
server exposes: list them, show one in full, flip its read state, or
delete it.

Configuration comes from the same environment variables the server
uses (GITHUB_TOKEN, REPORTS_REPO_OWNER, REPORTS_REPO_NAME, ...).`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		client := github.NewClient(github.Config{
			APIURL: cfg.GitHubAPIURL,
			Token:  cfg.GitHubToken,
			Owner:  cfg.RepoOwner,
			Repo:   cfg.RepoName,
			Branch: cfg.Branch,
		}, logger)
		reportStore = store.New(client, cfg.RootPath, cfg.StatusPath(), logger)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(rmCmd)
}
