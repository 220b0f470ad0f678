package dash

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyshield/shieldtop/internal/util"
)

// viewID identifies one of the dashboard views.
type viewID int

const (
	viewOverview viewID = iota
	viewTraffic
	viewActivity
)

// String returns the tab label for a view.
func (v viewID) String() string {
	switch v {
	case viewTraffic:
		return "traffic"
	case viewActivity:
		return "activity"
	default:
		return "overview"
	}
}

// promptKind identifies which mutation prompt is open.
type promptKind int

const (
	promptNone promptKind = iota
	promptBlockPorts
	promptUnblockPorts
	promptAddURL
	promptRemoveURL
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyNextView    = "tab"
	KeyOverview    = "1"
	KeyTraffic     = "2"
	KeyActivity    = "3"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeyClearLog    = "c"
	KeyBlockPorts  = "b"
	KeyUnblockPort = "u"
	KeyAddURL      = "a"
	KeyRemoveURL   = "x"
	KeyToggleHelp  = "?"
	KeyCancel      = "esc"
	KeySubmit      = "enter"
)

// handleKey processes keyboard input outside of an open prompt.
// Returns true if the key was handled.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}
	if m.showHelp && key == KeyCancel {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.scheduler.Stop()
		return true, tea.Quit

	case KeyRefresh:
		m.scheduler.PollStats()
		m.scheduler.PollProxyStats()
		if m.view == viewTraffic {
			m.scheduler.FetchRequests()
		}
		return true, nil

	case KeyNextView:
		m.switchView(viewID((int(m.view) + 1) % 3))
		return true, nil

	case KeyOverview:
		m.switchView(viewOverview)
		return true, nil

	case KeyTraffic:
		m.switchView(viewTraffic)
		return true, nil

	case KeyActivity:
		m.switchView(viewActivity)
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.view == viewTraffic && m.selected > 0 {
			m.selected--
		} else if m.view == viewActivity && m.viewportReady {
			m.activityViewport.ScrollUp(1)
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.view == viewTraffic && m.selected < len(m.session.Requests)-1 {
			m.selected++
		} else if m.view == viewActivity && m.viewportReady {
			m.activityViewport.ScrollDown(1)
		}
		return true, nil

	case KeyClearLog:
		if m.view == viewActivity {
			m.session.Ledger.Clear()
			m.refreshActivityViewport()
			return true, nil
		}

	case KeyBlockPorts:
		m.openPrompt(promptBlockPorts)
		return true, nil

	case KeyUnblockPort:
		m.openPrompt(promptUnblockPorts)
		return true, nil

	case KeyAddURL:
		m.openPrompt(promptAddURL)
		return true, nil

	case KeyRemoveURL:
		m.openPrompt(promptRemoveURL)
		return true, nil
	}

	return false, nil
}

// switchView changes the active view. Activating the traffic view triggers
// the on-demand request fetch; the request list is not polled periodically.
func (m *Model) switchView(v viewID) {
	prev := m.view
	m.view = v
	if v == viewTraffic && prev != viewTraffic {
		m.scheduler.FetchRequests()
	}
	if v == viewActivity {
		m.refreshActivityViewport()
	}
}

// handlePromptKey routes keys to the open mutation prompt.
func (m *Model) handlePromptKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyCancel:
		m.closePrompt()
		return true, nil
	case KeySubmit:
		cmd := m.submitPrompt()
		m.closePrompt()
		return true, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return true, cmd
}

// submitPrompt parses the prompt input and issues the mutation.
func (m *Model) submitPrompt() tea.Cmd {
	value := m.input.Value()

	switch m.prompt {
	case promptBlockPorts, promptUnblockPorts:
		ports := util.ParsePorts(value)
		if len(ports) == 0 {
			m.setNotice("no valid ports in input")
			return nil
		}
		if m.prompt == promptBlockPorts {
			return m.mutateCmd(KindBlock,
				"blocked ports "+util.JoinPorts(ports),
				"port block failed",
				func(ctx context.Context) error { return m.backend.BlockPorts(ctx, ports) })
		}
		return m.mutateCmd(KindConfig,
			"unblocked ports "+util.JoinPorts(ports),
			"port unblock failed",
			func(ctx context.Context) error { return m.backend.UnblockPorts(ctx, ports) })

	case promptAddURL, promptRemoveURL:
		items := util.SplitItems(value)
		if len(items) == 0 {
			m.setNotice("no URLs in input")
			return nil
		}
		if m.prompt == promptAddURL {
			return m.mutateCmd(KindBlock,
				"blacklisted "+util.JoinOrDefault(items, ""),
				"URL blacklist add failed",
				func(ctx context.Context) error { return m.backend.AddURLs(ctx, items) })
		}
		return m.mutateCmd(KindConfig,
			"removed "+util.JoinOrDefault(items, "")+" from blacklist",
			"URL blacklist remove failed",
			func(ctx context.Context) error { return m.backend.RemoveURLs(ctx, items) })
	}

	return nil
}

// promptLabel returns the inline label for an open prompt.
func (k promptKind) promptLabel() string {
	switch k {
	case promptBlockPorts:
		return "block ports"
	case promptUnblockPorts:
		return "unblock ports"
	case promptAddURL:
		return "blacklist URL"
	case promptRemoveURL:
		return "remove URL"
	default:
		return ""
	}
}

// promptPlaceholder returns the placeholder text for an open prompt.
func (k promptKind) promptPlaceholder() string {
	switch k {
	case promptBlockPorts, promptUnblockPorts:
		return "80, 443"
	case promptAddURL, promptRemoveURL:
		return "evil.example.com"
	default:
		return ""
	}
}
