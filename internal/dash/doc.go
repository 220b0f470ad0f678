// Package dash implements the live appliance dashboard.
//
// The package is organized around a Bubble Tea model backed by an explicit
// Session that owns all rendered state:
//
//   - Scheduler runs the two periodic polling tasks (stats, proxy stats) and
//     the on-demand proxy request fetch, forwarding results into the program
//     via a send bridge. Each task carries a sequence number so a slow stale
//     response can never overwrite fresher state.
//   - Session holds the chart series, scalar counters, the rolling Timeline,
//     the activity Ledger, proxy display state, and the two health
//     Indicators. Reconciliation (BuildSeries, BuildRequestRows) is pure so
//     the bounded-buffer logic is testable without a terminal.
//   - Model/view wire the session to the terminal with lipgloss rendering.
//
// Poll failures never clear previously rendered state: the last known values
// stay on screen and only the relevant indicator flips to offline.
package dash
