package dash

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette - dark terminal security console
const (
	ColorBg      = lipgloss.Color("#0C1014") // near-black blue
	ColorPanelBg = lipgloss.Color("#11161D") // panel surface
	ColorBorder  = lipgloss.Color("#263445") // steel border

	// Semantic colors
	ColorOnline  = lipgloss.Color("#2BD66B") // green
	ColorOffline = lipgloss.Color("#F23F42") // red
	ColorWarn    = lipgloss.Color("#E8A33D") // amber
	ColorUnknown = lipgloss.Color("#5C6B7A") // slate

	// Text colors
	ColorText      = lipgloss.Color("#D8DEE9")
	ColorTextDim   = lipgloss.Color("#8292A2")
	ColorTextFaint = lipgloss.Color("#4C5966")

	// Accents
	ColorAccent = lipgloss.Color("#35B5FF") // signal blue
	ColorGraph  = lipgloss.Color("#35B5FF")
	ColorBars   = lipgloss.Color("#6FD3FB")
)

// Base styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextFaint).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarn).
			Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(lipgloss.Color("#1D2A38"))

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextFaint).
				Padding(0, 1)

	// Request badges
	BadgeBlockedStyle = lipgloss.NewStyle().
				Foreground(ColorOffline).
				Bold(true)

	BadgeAllowedStyle = lipgloss.NewStyle().
				Foreground(ColorOnline)

	BlockReasonStyle = lipgloss.NewStyle().
				Foreground(ColorWarn)

	OfflineBannerStyle = lipgloss.NewStyle().
				Foreground(ColorOffline).
				Bold(true).
				Padding(0, 1)
)

// Indicator glyphs
const (
	GlyphOnline  = "●"
	GlyphOffline = "○"
	GlyphUnknown = "◌"
)

// indicatorStyles maps indicator states to their rendering style.
var indicatorStyles = map[IndicatorState]lipgloss.Style{
	StateOnline:  lipgloss.NewStyle().Foreground(ColorOnline),
	StateOffline: lipgloss.NewStyle().Foreground(ColorOffline),
	StateUnknown: lipgloss.NewStyle().Foreground(ColorUnknown),
}

// kindStyles maps ledger entry kinds to their rendering style.
var kindStyles = map[EntryKind]lipgloss.Style{
	KindBlock:  lipgloss.NewStyle().Foreground(ColorOffline),
	KindAlert:  lipgloss.NewStyle().Foreground(ColorWarn),
	KindConfig: lipgloss.NewStyle().Foreground(ColorAccent),
	KindSystem: lipgloss.NewStyle().Foreground(ColorTextDim),
}

// renderIndicator renders a labeled endpoint-family indicator for the header.
func renderIndicator(label string, state IndicatorState) string {
	glyph := GlyphUnknown
	switch state {
	case StateOnline:
		glyph = GlyphOnline
	case StateOffline:
		glyph = GlyphOffline
	}
	return indicatorStyles[state].Render(glyph) + " " + LabelStyle.Render(label+" "+state.String())
}
