package dash

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyshield/shieldtop/internal/api"
)

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(newFakeBackend())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestViewOverviewEmpty(t *testing.T) {
	m := sizedModel(t)
	out := stripANSI(m.View())

	assert.Contains(t, out, "shieldtop")
	assert.Contains(t, out, "waiting for data")
	assert.Contains(t, out, "overview")
	assert.Contains(t, out, "no samples yet")
}

func TestViewOverviewWithData(t *testing.T) {
	m := sizedModel(t)
	seq := m.scheduler.statsSeq.Issue()
	m, _ = update(t, m, statsResultMsg{seq: seq, snap: sampleSnapshot(), at: time.Now()})

	out := stripANSI(m.View())
	assert.Contains(t, out, "192.168.1.5")
	assert.Contains(t, out, "blocked IPs")
	assert.Contains(t, out, "updated")
}

func TestViewHeaderIndicators(t *testing.T) {
	m := sizedModel(t)

	out := stripANSI(m.View())
	assert.Contains(t, out, "api unknown")
	assert.Contains(t, out, "proxy unknown")

	seq := m.scheduler.statsSeq.Issue()
	m, _ = update(t, m, statsResultMsg{seq: seq, snap: sampleSnapshot(), at: time.Now()})

	out = stripANSI(m.View())
	assert.Contains(t, out, "api online")
}

func TestViewTrafficOfflineBanner(t *testing.T) {
	m := sizedModel(t)
	m.view = viewTraffic

	seq := m.scheduler.requestsSeq.Issue()
	m, _ = update(t, m, proxyRequestsResultMsg{seq: seq, err: assert.AnError, at: time.Now()})

	out := stripANSI(m.View())
	assert.Contains(t, out, "proxy service unreachable (port 8888)")
}

func TestViewTrafficProxyDisabledBanner(t *testing.T) {
	m := sizedModel(t)
	m.view = viewTraffic

	seq := m.scheduler.requestsSeq.Issue()
	m, _ = update(t, m, proxyRequestsResultMsg{
		seq:  seq,
		list: &api.ProxyRequestList{ProxyEnabled: false, ProxyPort: 9999},
		at:   time.Now(),
	})

	out := stripANSI(m.View())
	assert.Contains(t, out, "proxy is not running")
	assert.Contains(t, out, "9999")
}

func TestViewTrafficRequestRows(t *testing.T) {
	m := sizedModel(t)
	m.view = viewTraffic

	seq := m.scheduler.requestsSeq.Issue()
	m, _ = update(t, m, proxyRequestsResultMsg{
		seq: seq,
		list: &api.ProxyRequestList{
			Requests: []api.ProxyRequest{
				{Method: "GET", URL: "http://ok.example.com/", Timestamp: 1756216951},
				{Method: "POST", URL: "http://bad.example.com/", Blocked: true, BlockReason: "blacklisted", Timestamp: 1756216952},
			},
			ProxyEnabled: true,
			ProxyPort:    8888,
		},
		at: time.Now(),
	})

	out := stripANSI(m.View())
	assert.Contains(t, out, "BLOCKED")
	assert.Contains(t, out, "bad.example.com")
	// Selected row (newest, index 0) echoes its full URL and block reason
	assert.Contains(t, out, "blacklisted")
}

func TestViewActivity(t *testing.T) {
	m := sizedModel(t)
	m.session.Ledger.Record(KindBlock, "blocked ports 80, 443")
	m.view = viewActivity
	m.refreshActivityViewport()

	out := stripANSI(m.View())
	assert.Contains(t, out, "blocked ports 80, 443")
	assert.Contains(t, out, "block")
}

func TestViewHelpOverlay(t *testing.T) {
	m := sizedModel(t)
	m, _ = update(t, m, keyMsg("?"))

	out := stripANSI(m.View())
	assert.Contains(t, out, "shieldtop keys")
	assert.Contains(t, out, "quit")
}

func TestViewPromptAndNotice(t *testing.T) {
	m := sizedModel(t)
	m, _ = update(t, m, keyMsg("b"))
	m.setNotice("port block failed")

	out := stripANSI(m.View())
	assert.Contains(t, out, "block ports:")
	assert.Contains(t, out, "port block failed")
}

func TestViewQuitting(t *testing.T) {
	m := sizedModel(t)
	m, _ = update(t, m, keyMsg("q"))
	assert.Equal(t, "", m.View())
}

func TestRenderLedgerLinesNewestFirst(t *testing.T) {
	m := newTestModel(newFakeBackend())
	m.session.Ledger.Record(KindSystem, "first")
	m.session.Ledger.Record(KindAlert, "second")

	lines := strings.Split(stripANSI(m.renderLedgerLines()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "second")
	assert.Contains(t, lines[1], "first")
}
