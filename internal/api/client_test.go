package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyshield/shieldtop/internal/errors"
)

// newTestServer returns an httptest server that checks Basic auth and
// dispatches on path, plus a client pointed at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "admin", "hunter2")
}

func TestStats(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "hunter2", pass)
		assert.Equal(t, "/stats", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"blocked_ips":    map[string]int{"1.2.3.4": 5, "5.6.7.8": 2},
			"blocked_urls":   map[string]int{"evil.test": 1},
			"blocked_ports":  []int{23, 445},
			"active_attacks": map[string]int{"syn_flood": 3},
		})
	})

	snap, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, snap.BlockedIPs["1.2.3.4"])
	assert.Equal(t, []int{23, 445}, snap.BlockedPorts)
	assert.Equal(t, 3, snap.ActiveAttacks["syn_flood"])
}

func TestProxyStats(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/proxy/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total_requests":   120,
			"allowed_requests": 100,
			"blocked_requests": 20,
			"block_rate":       16.67,
			"proxy_running":    true,
		})
	})

	agg, err := client.ProxyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, agg.TotalRequests)
	assert.Equal(t, 20, agg.BlockedRequests)
	assert.InDelta(t, 16.67, agg.BlockRate, 0.001)
	assert.True(t, agg.ProxyRunning)
}

func TestProxyRequests(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/proxy/requests", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"requests": []map[string]interface{}{
				{
					"timestamp": 1700000000.5,
					"method":    "GET",
					"url":       "http://example.test/page",
					"blocked":   false,
					"client_ip": "10.0.0.2",
				},
				{
					"timestamp":    1700000001.0,
					"method":       "POST",
					"url":          "http://evil.test/",
					"domain":       "evil.test",
					"blocked":      true,
					"block_reason": "URL blacklist",
					"client_ip":    "10.0.0.3",
				},
			},
			"proxy_enabled": true,
			"proxy_port":    8888,
		})
	})

	list, err := client.ProxyRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Requests, 2)
	assert.True(t, list.ProxyEnabled)
	assert.Equal(t, 8888, list.ProxyPort)

	assert.Empty(t, list.Requests[0].Domain)
	assert.Equal(t, "evil.test", list.Requests[1].Domain)
	assert.Equal(t, "URL blacklist", list.Requests[1].BlockReason)
}

func TestMutations(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = nil
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	ctx := context.Background()

	require.NoError(t, client.BlockPorts(ctx, []int{80, 443}))
	assert.Equal(t, "/ports/block", gotPath)
	assert.Equal(t, []interface{}{float64(80), float64(443)}, gotBody["ports"])

	require.NoError(t, client.UnblockPorts(ctx, []int{23}))
	assert.Equal(t, "/ports/unblock", gotPath)

	require.NoError(t, client.AddURLs(ctx, []string{"evil.test"}))
	assert.Equal(t, "/urls/add", gotPath)
	assert.Equal(t, []interface{}{"evil.test"}, gotBody["items"])

	require.NoError(t, client.RemoveURLs(ctx, []string{"evil.test"}))
	assert.Equal(t, "/urls/remove", gotPath)

	require.NoError(t, client.UpdateDDoSSettings(ctx, DDoSSettings{
		RequestLimit:  200,
		WindowSeconds: 60,
		BanSeconds:    900,
	}))
	assert.Equal(t, "/settings/ddos", gotPath)
	assert.Equal(t, float64(200), gotBody["request_limit"])
	assert.Equal(t, float64(900), gotBody["ban_seconds"])
}

func TestDDoSSettingsRoundTrip(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ddos/settings", r.URL.Path)
		json.NewEncoder(w).Encode(DDoSSettings{
			RequestLimit:  200,
			WindowSeconds: 60,
			BanSeconds:    900,
		})
	})

	s, err := client.DDoSSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, s.RequestLimit)
	assert.Equal(t, 60, s.WindowSeconds)
	assert.Equal(t, 900, s.BanSeconds)
}

func TestNonSuccessStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAPI))
}

func TestUnauthorizedStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAuth))
}

func TestUndecodableBody(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAPI))
}

func TestTransportFailure(t *testing.T) {
	srv, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from here on

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAPI))
}

func TestBaseURLTrailingSlash(t *testing.T) {
	client := NewClient("http://example.test/", "u", "p")
	assert.Equal(t, "http://example.test", client.BaseURL())
}
