package dash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyshield/shieldtop/internal/api"
)

func sampleSnapshot() *api.StatsSnapshot {
	return &api.StatsSnapshot{
		BlockedIPs:    map[string]int{"10.0.0.9": 3, "192.168.1.5": 12},
		BlockedURLs:   map[string]int{"evil.example.com": 1},
		BlockedPorts:  []int{23},
		ActiveAttacks: map[string]int{"ddos": 7},
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(8888)

	assert.Equal(t, 8888, s.ProxyPort)
	assert.Equal(t, StateUnknown, s.StatsHealth.State())
	assert.Equal(t, StateUnknown, s.ProxyHealth.State())
	assert.False(t, s.HaveAggregate)
	assert.False(t, s.RequestsFetched)
	assert.Equal(t, 0, s.Timeline.Len())
	assert.Equal(t, 0, s.Ledger.Len())
}

func TestApplyStatsReplacesWholesale(t *testing.T) {
	s := NewSession(8888)
	s.ApplyStats(sampleSnapshot(), time.Now())

	require.Len(t, s.IPSeries, 2)
	assert.Equal(t, 2, s.Counters.BlockedIPs)
	assert.Equal(t, 1, s.Timeline.Len())
	assert.Equal(t, StateOnline, s.StatsHealth.State())

	// A later snapshot with fewer entries replaces, never merges
	s.ApplyStats(&api.StatsSnapshot{
		BlockedIPs: map[string]int{"172.16.0.2": 1},
	}, time.Now())

	require.Len(t, s.IPSeries, 1)
	assert.Equal(t, "172.16.0.2", s.IPSeries[0].Label)
	assert.Empty(t, s.AttackSeries)
	assert.Equal(t, Counters{BlockedIPs: 1}, s.Counters)
	assert.Equal(t, 2, s.Timeline.Len())
}

func TestApplyStatsFailureKeepsPriorState(t *testing.T) {
	s := NewSession(8888)
	s.ApplyStats(sampleSnapshot(), time.Now())
	before := s.Counters

	s.ApplyStatsFailure()

	assert.Equal(t, before, s.Counters)
	assert.Len(t, s.IPSeries, 2)
	assert.Equal(t, 1, s.Timeline.Len())
	assert.Equal(t, StateOffline, s.StatsHealth.State())
	// The ledger is never written by the poll path
	assert.Equal(t, 0, s.Ledger.Len())
}

func TestApplyProxyStats(t *testing.T) {
	s := NewSession(8888)
	s.ApplyProxyStats(&api.ProxyAggregate{
		TotalRequests:   100,
		AllowedRequests: 90,
		BlockedRequests: 10,
		BlockRate:       10.0,
		ProxyRunning:    true,
	})

	assert.True(t, s.HaveAggregate)
	assert.Equal(t, 100, s.Aggregate.TotalRequests)
	assert.Equal(t, StateOnline, s.ProxyHealth.State())

	s.ApplyProxyStatsFailure()
	assert.Equal(t, StateOffline, s.ProxyHealth.State())
	// Last aggregate stays on display
	assert.Equal(t, 100, s.Aggregate.TotalRequests)
}

func TestApplyProxyRequests(t *testing.T) {
	s := NewSession(8888)
	s.ApplyProxyRequests(&api.ProxyRequestList{
		Requests: []api.ProxyRequest{
			{Method: "GET", URL: "http://a.example.com/"},
			{Method: "GET", URL: "http://b.example.com/"},
		},
		ProxyEnabled: true,
		ProxyPort:    9999,
	})

	assert.True(t, s.RequestsFetched)
	assert.True(t, s.ProxyEnabled)
	assert.Equal(t, 9999, s.ProxyPort)
	require.Len(t, s.Requests, 2)
	assert.Equal(t, "http://b.example.com/", s.Requests[0].URL)
	assert.Equal(t, StateOnline, s.ProxyHealth.State())
}

func TestApplyProxyRequestsKeepsDefaultPortWhenUnreported(t *testing.T) {
	s := NewSession(8888)
	s.ApplyProxyRequests(&api.ProxyRequestList{ProxyEnabled: false})

	assert.Equal(t, 8888, s.ProxyPort)
	assert.False(t, s.ProxyEnabled)
	assert.True(t, s.RequestsFetched)
}

func TestApplyProxyRequestsFailureKeepsRows(t *testing.T) {
	s := NewSession(8888)
	s.ApplyProxyRequests(&api.ProxyRequestList{
		Requests:     []api.ProxyRequest{{URL: "http://a.example.com/"}},
		ProxyEnabled: true,
		ProxyPort:    9999,
	})

	s.ApplyProxyRequestsFailure()

	assert.Equal(t, StateOffline, s.ProxyHealth.State())
	assert.Len(t, s.Requests, 1)
	assert.Equal(t, 9999, s.ProxyPort)
}
