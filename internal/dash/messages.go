package dash

import (
	"time"

	"github.com/pyshield/shieldtop/internal/api"
)

// statsResultMsg carries the outcome of one stats poll.
type statsResultMsg struct {
	seq  uint64
	snap *api.StatsSnapshot // nil on failure
	err  error
	at   time.Time
}

// proxyStatsResultMsg carries the outcome of one proxy-stats poll.
type proxyStatsResultMsg struct {
	seq uint64
	agg *api.ProxyAggregate // nil on failure
	err error
	at  time.Time
}

// proxyRequestsResultMsg carries the outcome of one on-demand request fetch.
type proxyRequestsResultMsg struct {
	seq  uint64
	list *api.ProxyRequestList // nil on failure
	err  error
	at   time.Time
}

// mutationResultMsg carries the outcome of a settings mutation issued from
// the TUI (port block/unblock, URL add/remove).
type mutationResultMsg struct {
	kind    EntryKind // ledger kind on success
	message string    // ledger message on success
	failure string    // notice and ledger prefix on failure
	err     error
}

// uiTickMsg drives the once-a-second refresh of relative timestamps and
// notice expiry.
type uiTickMsg time.Time
