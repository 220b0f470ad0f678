package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pyshield/shieldtop/internal/dash"
)

// dashCmd starts the live TUI dashboard.
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Live firewall and proxy dashboard",
	Long: `Open an interactive dashboard that polls the appliance continuously:
firewall statistics every few seconds, proxy traffic counters on a separate
cadence, and the intercepted-request list on demand.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  1 / 2 / 3   Switch to overview, traffic, or activity view
  Tab         Cycle views
  r           Refresh now
  b / u       Block / unblock ports
  a / x       Add / remove blacklisted URLs
  c           Clear the activity log (activity view)
  ?           Show help

Examples:
  shieldtop dash
  shieldtop dash --url http://10.0.0.1:8000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand()
	},
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

// dashCommand wires the API client, the model, and the Bubble Tea program
// together and blocks until the user quits.
func dashCommand() error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	model := dash.NewModel(client, dash.Options{
		StatsInterval: cfg.Intervals.Stats,
		ProxyInterval: cfg.Intervals.Proxy,
		ProxyPort:     cfg.ProxyPort,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.Bind(p)

	final, err := p.Run()
	if fm, ok := final.(dash.Model); ok {
		fm.Stop()
	}
	return err
}
