package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCommandWithoutPassword(t *testing.T) {
	resetFlags(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "pyshield",
		})
	}))
	t.Cleanup(srv.Close)

	// Run from an empty directory so no stray .shieldtop.yaml is found
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	t.Setenv("HOME", dir)

	configFlag = ""
	urlFlag = srv.URL
	usernameFlag = ""
	passwordFlag = ""

	// No password anywhere and stdin is not a terminal under go test.
	// The health check must still succeed: the endpoint needs no auth.
	require.NoError(t, healthCommand())
}

func TestHealthCommandUnreachable(t *testing.T) {
	resetFlags(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	t.Setenv("HOME", dir)

	configFlag = ""
	urlFlag = srv.URL
	usernameFlag = ""
	passwordFlag = ""

	assert.Error(t, healthCommand())
}
