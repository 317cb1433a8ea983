// Package config loads server configuration from the environment and
// sets up logging.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
)

// Config holds all configuration values. The repository coordinates
// are threaded explicitly into every component that needs them; there
// is no ambient repo state.
type Config struct {
	// GitHub repository holding the reports
	GitHubToken  string
	GitHubAPIURL string
	RepoOwner    string
	RepoName     string
	Branch       string

	// Report layout inside the repository
	RootPath   string
	StatusFile string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		GitHubToken:  getEnv("GITHUB_TOKEN", ""),
		GitHubAPIURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
		RepoOwner:    getEnv("REPORTS_REPO_OWNER", ""),
		RepoName:     getEnv("REPORTS_REPO_NAME", ""),
		Branch:       getEnv("REPORTS_BRANCH", "main"),

		RootPath:   getEnv("REPORTS_ROOT_PATH", "reports"),
		StatusFile: getEnv("REPORTS_STATUS_FILE", ".report-status.json"),

		LogFile:  getEnv("REPORTS_LOG_FILE", "/tmp/repo-reports-mcp.log"),
		LogLevel: parseLogLevel(getEnv("REPORTS_LOG_LEVEL", "INFO")),
	}
}

// Validate checks that the fields without usable defaults are set.
func (c Config) Validate() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}
	if c.RepoOwner == "" || c.RepoName == "" {
		return fmt.Errorf("REPORTS_REPO_OWNER and REPORTS_REPO_NAME are required")
	}
	return nil
}

// StatusPath is the repository path of the lifecycle-status file,
// stored alongside the reports under the root path.
func (c Config) StatusPath() string {
	return path.Join(c.RootPath, c.StatusFile)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
