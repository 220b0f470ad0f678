package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the persistent flags after a test touches them.
func resetFlags(t *testing.T) {
	t.Helper()
	origConfig, origURL, origUser, origPass := configFlag, urlFlag, usernameFlag, passwordFlag
	t.Cleanup(func() {
		configFlag, urlFlag, usernameFlag, passwordFlag = origConfig, origURL, origUser, origPass
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	resetFlags(t)
	configFlag = ""
	urlFlag = ""
	usernameFlag = ""
	passwordFlag = ""

	// Run from an empty directory so no stray .shieldtop.yaml is found
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	t.Setenv("HOME", dir)

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Server.URL)
	assert.Equal(t, "admin", cfg.Server.Username)
	assert.Equal(t, 8888, cfg.ProxyPort)
	assert.Equal(t, 5*time.Second, cfg.Intervals.Stats)
	assert.Equal(t, 3*time.Second, cfg.Intervals.Proxy)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), ".shieldtop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`server:
  url: http://10.0.0.5:8000
  username: fileuser
  password: filepass
`), 0o600))

	configFlag = path
	urlFlag = "http://10.0.0.9:9000"
	usernameFlag = "flaguser"
	passwordFlag = ""

	cfg, err := loadConfig()
	require.NoError(t, err)

	// Flags win over the file; unset flags leave file values alone
	assert.Equal(t, "http://10.0.0.9:9000", cfg.Server.URL)
	assert.Equal(t, "flaguser", cfg.Server.Username)
	assert.Equal(t, "filepass", cfg.Server.Password)
}

func TestLoadConfigRejectsBadURL(t *testing.T) {
	resetFlags(t)
	configFlag = ""
	urlFlag = "not a url"

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"dash", "stats", "ports", "urls", "ddos", "init", "health", "version", "completion"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestPortsSubcommands(t *testing.T) {
	sub := map[string]bool{}
	for _, c := range portsCmd.Commands() {
		sub[c.Name()] = true
	}
	assert.True(t, sub["block"])
	assert.True(t, sub["unblock"])
}

func TestURLsSubcommands(t *testing.T) {
	sub := map[string]bool{}
	for _, c := range urlsCmd.Commands() {
		sub[c.Name()] = true
	}
	assert.True(t, sub["add"])
	assert.True(t, sub["remove"])
}
