package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// render assembles the full dashboard frame.
func (m Model) render() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.view {
	case viewTraffic:
		b.WriteString(m.renderTraffic())
	case viewActivity:
		b.WriteString(m.renderActivity())
	default:
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader shows the title, both health indicators, and the age of the
// most recent applied poll result.
func (m Model) renderHeader() string {
	title := HeaderStyle.Render("⛨ shieldtop")

	ind := renderIndicator("api", m.session.StatsHealth.State()) +
		"  " + renderIndicator("proxy", m.session.ProxyHealth.State())

	age := "waiting for data"
	if !m.lastUpdate.IsZero() {
		age = fmt.Sprintf("updated %ds ago", m.SecondsSinceUpdate())
	}

	left := title + "  " + ind
	right := LabelStyle.Render(age)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderTabs draws the view tab bar.
func (m Model) renderTabs() string {
	var tabs []string
	for i, v := range []viewID{viewOverview, viewTraffic, viewActivity} {
		label := fmt.Sprintf(" %d %s ", i+1, v.String())
		if v == m.view {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// renderOverview draws the counters row, the two distribution charts, and
// the blocked-IP timeline sparkline.
func (m Model) renderOverview() string {
	s := m.session

	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCounter("blocked IPs", s.Counters.BlockedIPs),
		renderCounter("blacklisted URLs", s.Counters.BlockedURLs),
		renderCounter("blocked ports", s.Counters.BlockedPorts),
		renderCounter("active attacks", s.Counters.ActiveAttacks),
	)

	chartWidth := m.panelWidth(2)
	ipPanel := renderChartPanel("top blocked IPs", s.IPSeries, chartWidth)
	attackPanel := renderChartPanel("attack types", s.AttackSeries, chartWidth)
	charts := lipgloss.JoinHorizontal(lipgloss.Top, ipPanel, attackPanel)

	sparkWidth := m.panelWidth(1) - 4
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	var spark string
	if s.Timeline.Len() == 0 {
		spark = LabelStyle.Render("no samples yet")
	} else {
		spark = RenderSparkline(s.Timeline.Values(), sparkWidth, ColorGraph) +
			"\n" + LabelStyle.Render(fmt.Sprintf("blocked IPs over the last %d polls", s.Timeline.Len()))
	}
	timeline := PanelStyle.Width(m.panelWidth(1)).Render(
		PanelTitleStyle.Render("timeline") + "\n" + spark)

	return counters + "\n" + charts + "\n" + timeline
}

// renderCounter draws one scalar counter card.
func renderCounter(label string, value int) string {
	return PanelStyle.Render(
		ValueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + LabelStyle.Render(label))
}

// renderChartPanel draws one distribution bar chart inside a panel.
func renderChartPanel(title string, cats []Category, width int) string {
	body := LabelStyle.Render("no data")
	if len(cats) > 0 {
		labelWidth := 18
		barWidth := width - labelWidth - 10
		if barWidth < 8 {
			barWidth = 8
		}
		body = RenderBarChart(cats, labelWidth, barWidth, ColorBars)
	}
	return PanelStyle.Width(width).Render(PanelTitleStyle.Render(title) + "\n" + body)
}

// renderTraffic draws the proxy aggregate panel and the request table.
func (m Model) renderTraffic() string {
	s := m.session
	var b strings.Builder

	if s.HaveAggregate {
		barWidth := m.panelWidth(1) - 30
		if barWidth < 10 {
			barWidth = 10
		}
		agg := fmt.Sprintf("%s %s   %s %s   %s %s",
			LabelStyle.Render("total"), ValueStyle.Render(fmt.Sprintf("%d", s.Aggregate.TotalRequests)),
			LabelStyle.Render("allowed"), BadgeAllowedStyle.Render(fmt.Sprintf("%d", s.Aggregate.AllowedRequests)),
			LabelStyle.Render("blocked"), BadgeBlockedStyle.Render(fmt.Sprintf("%d", s.Aggregate.BlockedRequests)))
		rate := LabelStyle.Render("block rate ") + RenderRateBar(s.Aggregate.BlockRate, barWidth) +
			ValueStyle.Render(fmt.Sprintf(" %.1f%%", s.Aggregate.BlockRate))
		b.WriteString(PanelStyle.Width(m.panelWidth(1)).Render(
			PanelTitleStyle.Render("proxy traffic") + "\n" + agg + "\n" + rate))
	} else {
		b.WriteString(PanelStyle.Width(m.panelWidth(1)).Render(
			PanelTitleStyle.Render("proxy traffic") + "\n" + LabelStyle.Render("no data")))
	}
	b.WriteString("\n")

	switch {
	case s.ProxyHealth.State() == StateOffline:
		b.WriteString(OfflineBannerStyle.Render(fmt.Sprintf(
			" proxy service unreachable (port %d) ", s.ProxyPort)))
		b.WriteString("\n")
	case s.RequestsFetched && !s.ProxyEnabled:
		b.WriteString(OfflineBannerStyle.Render(fmt.Sprintf(
			" proxy is not running. start it on port %d to capture traffic ", s.ProxyPort)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderRequestTable())
	return b.String()
}

// renderRequestTable draws the intercepted-request rows, newest first, with
// the selected row's full URL echoed below the table.
func (m Model) renderRequestTable() string {
	s := m.session
	if len(s.Requests) == 0 {
		msg := "no requests captured yet"
		if !s.RequestsFetched {
			msg = "fetching requests…"
		}
		return PanelStyle.Width(m.panelWidth(1)).Render(
			PanelTitleStyle.Render("recent requests") + "\n" + LabelStyle.Render(msg))
	}

	var rows []string
	header := LabelStyle.Render(fmt.Sprintf("%-8s %-7s %-52s %-8s", "TIME", "METHOD", "URL", "STATUS"))
	rows = append(rows, header)

	maxRows := m.tableHeight()
	for i, r := range s.Requests {
		if i >= maxRows {
			rows = append(rows, LabelStyle.Render(fmt.Sprintf("… %d more", len(s.Requests)-maxRows)))
			break
		}
		status := BadgeAllowedStyle.Render("allowed")
		if r.Blocked {
			status = BadgeBlockedStyle.Render("BLOCKED")
		}
		line := fmt.Sprintf("%-8s %s %-52s %s",
			r.Time.Format("15:04:05"), methodLabel(r.Method), r.DisplayURL, status)
		if i == m.selected {
			line = SelectedRowStyle.Render(line)
		}
		rows = append(rows, line)
	}

	detail := ""
	if m.selected >= 0 && m.selected < len(s.Requests) {
		sel := s.Requests[m.selected]
		detail = "\n" + LabelStyle.Render("url ") + ValueStyle.Render(sel.URL)
		if sel.Blocked && sel.BlockReason != "" {
			detail += "  " + BlockReasonStyle.Render("("+sel.BlockReason+")")
		}
		if sel.ClientIP != "" {
			detail += "  " + LabelStyle.Render("from "+sel.ClientIP)
		}
	}

	return PanelStyle.Width(m.panelWidth(1)).Render(
		PanelTitleStyle.Render("recent requests") + "\n" + strings.Join(rows, "\n") + detail)
}

// renderActivity draws the scrollable ledger.
func (m Model) renderActivity() string {
	if m.session.Ledger.Len() == 0 {
		return LabelStyle.Render("no activity recorded")
	}
	if m.viewportReady {
		return m.activityViewport.View()
	}
	return m.renderLedgerLines()
}

// renderLedgerLines formats the ledger entries newest-first.
func (m Model) renderLedgerLines() string {
	entries := m.session.Ledger.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			LabelStyle.Render(e.Timestamp),
			kindStyles[e.Kind].Render(fmt.Sprintf("%-6s", e.Kind.String())),
			e.Message))
	}
	return strings.Join(lines, "\n")
}

// renderFooter draws the notice, the prompt when open, and the key hints.
func (m Model) renderFooter() string {
	var b strings.Builder

	if m.prompt != promptNone {
		b.WriteString(PromptStyle.Render(m.prompt.promptLabel()+":") + " " + m.input.View())
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(NoticeStyle.Render("⚠ " + m.notice))
		b.WriteString("\n")
	}

	hints := "q quit · r refresh · tab view · b/u ports · a/x urls · ? help"
	if m.view == viewActivity {
		hints = "q quit · c clear · ↑/↓ scroll · tab view · ? help"
	}
	b.WriteString(FooterStyle.Render(hints))
	return b.String()
}

// renderHelp draws the full-screen help overlay.
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"1 / 2 / 3", "switch to overview, traffic, or activity"},
		{"tab", "cycle views"},
		{"r", "refresh now (re-polls stats and proxy stats)"},
		{"↑/k  ↓/j", "move row selection or scroll the ledger"},
		{"b", "block ports (comma or space separated)"},
		{"u", "unblock ports"},
		{"a", "add URLs to the blacklist"},
		{"x", "remove URLs from the blacklist"},
		{"c", "clear the activity ledger (activity view)"},
		{"esc", "cancel a prompt or close this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("shieldtop keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ValueStyle.Render(padLabel(r[0], 10)), LabelStyle.Render(r[1])))
	}
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("press ? or esc to return"))
	return b.String()
}

// panelWidth returns the usable width for n side-by-side panels.
func (m Model) panelWidth(n int) int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	per := w/n - 2
	if per < 24 {
		per = 24
	}
	return per
}

// tableHeight returns how many request rows fit in the current window.
func (m Model) tableHeight() int {
	h := m.height - 14
	if h < 5 {
		h = 5
	}
	if h > MaxRequestRows {
		h = MaxRequestRows
	}
	return h
}
