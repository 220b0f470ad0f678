package dash

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyshield/shieldtop/internal/errors"
	"github.com/pyshield/shieldtop/internal/logger"
)

// noticeDuration is how long a transient failure notice stays visible.
const noticeDuration = 5 * time.Second

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	session   *Session
	scheduler *Scheduler
	backend   Backend
	log       logger.Logger

	view     viewID
	selected int // selected request row in the traffic view
	width    int
	height   int

	lastUpdate time.Time
	quitting   bool
	showHelp   bool

	notice        string
	noticeExpires time.Time

	prompt promptKind
	input  textinput.Model

	activityViewport viewport.Model
	viewportReady    bool
}

// Options configure a dashboard model.
type Options struct {
	StatsInterval time.Duration
	ProxyInterval time.Duration
	ProxyPort     int // fallback shown when the proxy endpoint is unreachable
	Logger        logger.Logger
}

// NewModel creates a dashboard model polling the given backend.
func NewModel(backend Backend, opts Options) Model {
	if opts.StatsInterval <= 0 {
		opts.StatsInterval = 5 * time.Second
	}
	if opts.ProxyInterval <= 0 {
		opts.ProxyInterval = 3 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[dash]")
	}

	return Model{
		session:   NewSession(opts.ProxyPort),
		scheduler: NewScheduler(backend, opts.StatsInterval, opts.ProxyInterval, opts.Logger),
		backend:   backend,
		log:       opts.Logger,
	}
}

// Bind installs the program's Send as the scheduler's message bridge. Must
// be called after tea.NewProgram and before Run.
func (m Model) Bind(p *tea.Program) {
	m.scheduler.SetSender(p.Send)
}

// Session exposes the session state for testing and for callers that want
// to inspect final state after the program exits.
func (m Model) Session() *Session {
	return m.session
}

// Init starts the polling scheduler and the UI tick.
func (m Model) Init() tea.Cmd {
	m.session.Ledger.Record(KindSystem, "dashboard session started")
	m.scheduler.Start()
	return m.uiTickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var handled bool
		var cmd tea.Cmd
		if m.prompt != promptNone {
			handled, cmd = m.handlePromptKey(msg)
		} else {
			handled, cmd = m.handleKey(msg)
		}
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeActivityViewport()

	case uiTickMsg:
		if m.notice != "" && time.Now().After(m.noticeExpires) {
			m.notice = ""
		}
		return m, m.uiTickCmd()

	case statsResultMsg:
		// Last-issued-wins: a completion older than the newest applied one
		// is discarded so a slow response cannot overwrite fresher state.
		if !m.scheduler.statsSeq.Apply(msg.seq) {
			m.log.Debug("discarding superseded stats result (seq %d)", msg.seq)
			return m, nil
		}
		m.lastUpdate = msg.at
		if msg.err != nil {
			m.session.ApplyStatsFailure()
			m.log.Debug("stats poll failed: %v", msg.err)
		} else {
			m.session.ApplyStats(msg.snap, msg.at)
		}

	case proxyStatsResultMsg:
		if !m.scheduler.proxySeq.Apply(msg.seq) {
			m.log.Debug("discarding superseded proxy-stats result (seq %d)", msg.seq)
			return m, nil
		}
		m.lastUpdate = msg.at
		if msg.err != nil {
			m.session.ApplyProxyStatsFailure()
			m.log.Debug("proxy-stats poll failed: %v", msg.err)
		} else {
			m.session.ApplyProxyStats(msg.agg)
		}

	case proxyRequestsResultMsg:
		if !m.scheduler.requestsSeq.Apply(msg.seq) {
			m.log.Debug("discarding superseded request-list result (seq %d)", msg.seq)
			return m, nil
		}
		if msg.err != nil {
			m.session.ApplyProxyRequestsFailure()
			m.log.Debug("request fetch failed: %v", msg.err)
		} else {
			m.session.ApplyProxyRequests(msg.list)
			if m.selected >= len(m.session.Requests) {
				m.selected = len(m.session.Requests) - 1
			}
			if m.selected < 0 {
				m.selected = 0
			}
		}

	case mutationResultMsg:
		if msg.err != nil {
			m.session.Ledger.Record(KindAlert, msg.failure+": "+errSummary(msg.err))
			m.setNotice(msg.failure)
		} else {
			m.session.Ledger.Record(msg.kind, msg.message)
			// A successful mutation changes what the next stats poll will
			// report; refresh instead of waiting for the tick.
			m.scheduler.PollStats()
		}
		m.refreshActivityViewport()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Stop shuts down the polling scheduler. Exposed for callers that exit the
// program without going through the quit key.
func (m Model) Stop() {
	m.scheduler.Stop()
}

// uiTickCmd drives relative-timestamp refresh and notice expiry.
func (m Model) uiTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return uiTickMsg(t)
	})
}

// mutateCmd issues a settings mutation in the background and reports the
// outcome as a mutationResultMsg.
func (m *Model) mutateCmd(kind EntryKind, okText, failText string, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := call(context.Background())
		return mutationResultMsg{kind: kind, message: okText, failure: failText, err: err}
	}
}

// setNotice shows a transient footer notice.
func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeExpires = time.Now().Add(noticeDuration)
}

// openPrompt opens a mutation input prompt.
func (m *Model) openPrompt(kind promptKind) {
	m.prompt = kind
	ti := textinput.New()
	ti.Placeholder = kind.promptPlaceholder()
	ti.CharLimit = 200
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

// closePrompt dismisses the open prompt.
func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// applied poll result.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// resizeActivityViewport sizes the activity viewport to the current window.
func (m *Model) resizeActivityViewport() {
	headerHeight := 4
	footerHeight := 3
	vpHeight := m.height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.viewportReady {
		m.activityViewport = viewport.New(m.width, vpHeight)
		m.viewportReady = true
	} else {
		m.activityViewport.Width = m.width
		m.activityViewport.Height = vpHeight
	}
	m.refreshActivityViewport()
}

// refreshActivityViewport re-renders the ledger into the viewport.
func (m *Model) refreshActivityViewport() {
	if !m.viewportReady {
		return
	}
	m.activityViewport.SetContent(m.renderLedgerLines())
}

// errSummary reduces an error to a single compact line for notices and
// ledger entries. Structured errors render multi-line by design.
func errSummary(err error) string {
	var stErr *errors.Error
	if stderrors.As(err, &stErr) {
		return stErr.Message
	}
	return err.Error()
}
