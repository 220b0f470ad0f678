package dash

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyshield/shieldtop/internal/api"
	"github.com/pyshield/shieldtop/internal/logger"
)

// Backend is the slice of the API client the dashboard consumes. The
// concrete *api.Client satisfies it; tests substitute a fake.
type Backend interface {
	Stats(ctx context.Context) (*api.StatsSnapshot, error)
	ProxyStats(ctx context.Context) (*api.ProxyAggregate, error)
	ProxyRequests(ctx context.Context) (*api.ProxyRequestList, error)
	AddURLs(ctx context.Context, items []string) error
	RemoveURLs(ctx context.Context, items []string) error
	BlockPorts(ctx context.Context, ports []int) error
	UnblockPorts(ctx context.Context, ports []int) error
}

// Scheduler runs the two periodic polling tasks and the on-demand request
// fetch. The tasks are independent and never synchronized: each tick issues
// a new call without waiting for the previous one, so concurrent in-flight
// calls for the same task are possible. Sequence numbers let the model
// discard superseded completions.
//
// Results are forwarded into the Bubble Tea program through the send
// callback (program.Send), which is safe to call from any goroutine.
type Scheduler struct {
	backend    Backend
	send       func(tea.Msg)
	statsEvery time.Duration
	proxyEvery time.Duration
	log        logger.Logger

	statsSeq    taskSeq
	proxySeq    taskSeq
	requestsSeq taskSeq

	mu      sync.Mutex
	done    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewScheduler creates a stopped scheduler. Call SetSender before Start.
func NewScheduler(backend Backend, statsEvery, proxyEvery time.Duration, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Noop()
	}
	return &Scheduler{
		backend:    backend,
		statsEvery: statsEvery,
		proxyEvery: proxyEvery,
		log:        log,
	}
}

// SetSender installs the message bridge into the running Bubble Tea program.
func (s *Scheduler) SetSender(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

// Start launches both periodic tasks. Each fires an immediate first poll and
// then repeats at its fixed period until Stop. Starting a running scheduler
// is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.send == nil {
		return
	}
	s.running = true
	s.done = make(chan struct{})

	s.runTask(s.statsEvery, s.pollStats)
	s.runTask(s.proxyEvery, s.pollProxyStats)
	s.log.Debug("scheduler started (stats %s, proxy %s)", s.statsEvery, s.proxyEvery)
}

// Stop cancels both timers. In-flight calls complete in their own goroutines
// and their results are discarded by the model. Stop returns once the tick
// loops have exited; it does not wait for in-flight calls.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	s.mu.Unlock()

	s.wg.Wait()
	s.log.Debug("scheduler stopped")
}

// Running reports whether the periodic tasks are active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// PollStats issues one stats poll immediately (manual refresh).
func (s *Scheduler) PollStats() { s.pollStats() }

// PollProxyStats issues one proxy-stats poll immediately (manual refresh).
func (s *Scheduler) PollProxyStats() { s.pollProxyStats() }

// FetchRequests issues the on-demand proxy request fetch. It is triggered by
// traffic-view activation, not by a timer, and may race with the periodic
// proxy-stats task without conflict: they write disjoint state.
func (s *Scheduler) FetchRequests() {
	seq := s.requestsSeq.Issue()
	go func() {
		list, err := s.backend.ProxyRequests(context.Background())
		s.emit(proxyRequestsResultMsg{seq: seq, list: list, err: err, at: time.Now()})
	}()
}

// runTask starts one tick loop: an immediate first fire, then one fire per
// period. Fires never block on the network; each poll runs in its own
// goroutine.
func (s *Scheduler) runTask(every time.Duration, fire func()) {
	done := s.done
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		fire()
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fire()
			}
		}
	}()
}

func (s *Scheduler) pollStats() {
	seq := s.statsSeq.Issue()
	go func() {
		snap, err := s.backend.Stats(context.Background())
		s.emit(statsResultMsg{seq: seq, snap: snap, err: err, at: time.Now()})
	}()
}

func (s *Scheduler) pollProxyStats() {
	seq := s.proxySeq.Issue()
	go func() {
		agg, err := s.backend.ProxyStats(context.Background())
		s.emit(proxyStatsResultMsg{seq: seq, agg: agg, err: err, at: time.Now()})
	}()
}

func (s *Scheduler) emit(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}
