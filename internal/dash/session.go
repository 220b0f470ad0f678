package dash

import (
	"time"

	"github.com/pyshield/shieldtop/internal/api"
)

// Session owns all state the dashboard renders: the chart series and
// counters derived from the latest stats snapshot, the rolling timeline, the
// activity ledger, the proxy aggregate and request rows, and the two health
// indicators. All mutation goes through the Apply methods so poll failures
// can leave prior state untouched.
type Session struct {
	IPSeries     []Category
	AttackSeries []Category
	Counters     Counters
	Timeline     *Timeline
	Ledger       *Ledger

	Aggregate     api.ProxyAggregate
	HaveAggregate bool

	Requests        []RequestRow
	RequestsFetched bool // at least one request fetch completed successfully
	ProxyEnabled    bool
	ProxyPort       int // last reported port, or the configured default

	StatsHealth Indicator
	ProxyHealth Indicator
}

// NewSession creates a session with empty buffers. defaultProxyPort is shown
// in the offline banner until the appliance reports the real port.
func NewSession(defaultProxyPort int) *Session {
	return &Session{
		Timeline:  NewTimeline(TimelineCap),
		Ledger:    NewLedger(LedgerCap),
		ProxyPort: defaultProxyPort,
	}
}

// ApplyStats replaces the three chart series and the counters wholesale from
// a successful stats poll and appends one timeline point.
func (s *Session) ApplyStats(snap *api.StatsSnapshot, at time.Time) {
	upd := BuildSeries(snap, at)
	s.IPSeries = upd.IPSeries
	s.AttackSeries = upd.AttackSeries
	s.Counters = upd.Counters
	s.Timeline.Append(upd.Point)
	s.StatsHealth.Observe(true)
}

// ApplyStatsFailure flips the stats indicator offline. The chart series keep
// their last successful values.
func (s *Session) ApplyStatsFailure() {
	s.StatsHealth.Observe(false)
}

// ApplyProxyStats overwrites the aggregate scalars from a successful
// proxy-stats poll.
func (s *Session) ApplyProxyStats(agg *api.ProxyAggregate) {
	s.Aggregate = *agg
	s.HaveAggregate = true
	s.ProxyHealth.Observe(true)
}

// ApplyProxyStatsFailure flips the proxy indicator offline, leaving the
// previous aggregate on display.
func (s *Session) ApplyProxyStatsFailure() {
	s.ProxyHealth.Observe(false)
}

// ApplyProxyRequests replaces the request rows from an on-demand fetch.
func (s *Session) ApplyProxyRequests(list *api.ProxyRequestList) {
	s.Requests = BuildRequestRows(list.Requests, MaxRequestRows)
	s.RequestsFetched = true
	s.ProxyEnabled = list.ProxyEnabled
	if list.ProxyPort != 0 {
		s.ProxyPort = list.ProxyPort
	}
	s.ProxyHealth.Observe(true)
}

// ApplyProxyRequestsFailure flips the proxy indicator offline. Previously
// fetched rows stay on display.
func (s *Session) ApplyProxyRequestsFailure() {
	s.ProxyHealth.Observe(false)
}
