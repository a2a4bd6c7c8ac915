// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultJiraURL is the hosted tracker queried when --jira-url is not given.
// The default server always requires authentication.
const DefaultJiraURL = "https://ephocks.atlassian.net"

// Config holds the application configuration. Flag values are layered on
// top by the command layer; this package only resolves env vars, defaults,
// and the per-user config directory.
type Config struct {
	JiraURL   string
	Username  string
	ConfigDir string
	DBPath    string
}

// Load reads configuration from environment variables and returns a
// validated Config. A .env file in the working directory is honoured when
// present. Optional variables: JIRACHECK_JIRA_URL (default DefaultJiraURL),
// JIRACHECK_USERNAME, JIRACHECK_CONFIG_DIR (default os.UserConfigDir()/jiracheck).
func Load() (*Config, error) {
	_ = godotenv.Load()

	jiraURL := DefaultJiraURL
	if v, ok := os.LookupEnv("JIRACHECK_JIRA_URL"); ok && v != "" {
		jiraURL = v
	}
	jiraURL = strings.TrimRight(jiraURL, "/")
	if !strings.HasPrefix(jiraURL, "http://") && !strings.HasPrefix(jiraURL, "https://") {
		return nil, fmt.Errorf("JIRACHECK_JIRA_URL %q is not an http(s) URL", jiraURL)
	}

	configDir := os.Getenv("JIRACHECK_CONFIG_DIR")
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		configDir = filepath.Join(base, "jiracheck")
	}

	return &Config{
		JiraURL:   jiraURL,
		Username:  os.Getenv("JIRACHECK_USERNAME"),
		ConfigDir: configDir,
		DBPath:    filepath.Join(configDir, "credentials.db"),
	}, nil
}
