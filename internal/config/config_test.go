package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every JIRACHECK_ env var that Load() reads.
var allConfigKeys = []string{
	"JIRACHECK_JIRA_URL",
	"JIRACHECK_USERNAME",
	"JIRACHECK_CONFIG_DIR",
}

// isolateConfigEnv saves and unsets all JIRACHECK_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultJiraURL, cfg.JiraURL)
	assert.Equal(t, "", cfg.Username)
	assert.NotEmpty(t, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(cfg.ConfigDir, "credentials.db"), cfg.DBPath)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JIRACHECK_JIRA_URL", "https://jira.example.com")
	t.Setenv("JIRACHECK_USERNAME", "testuser")
	t.Setenv("JIRACHECK_CONFIG_DIR", "/tmp/jiracheck-test")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.com", cfg.JiraURL)
	assert.Equal(t, "testuser", cfg.Username)
	assert.Equal(t, "/tmp/jiracheck-test", cfg.ConfigDir)
	assert.Equal(t, "/tmp/jiracheck-test/credentials.db", cfg.DBPath)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JIRACHECK_JIRA_URL", "https://jira.example.com/")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.com", cfg.JiraURL)
}

func TestLoad_RejectsNonHTTPURL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("JIRACHECK_JIRA_URL", "jira.example.com")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JIRACHECK_JIRA_URL")
}
