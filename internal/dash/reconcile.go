package dash

import (
	"sort"
	"time"

	"github.com/pyshield/shieldtop/internal/api"
)

// Category is one bar of a distribution chart.
type Category struct {
	Label string
	Value int
}

// Counters are the scalar displays derived from a stats snapshot.
type Counters struct {
	BlockedIPs    int // distinct blocked IPs
	BlockedURLs   int // distinct blacklisted URLs
	BlockedPorts  int // blocked port count
	ActiveAttacks int // distinct active attack types
}

// SeriesUpdate is the full set of render instructions derived from one
// stats snapshot. A snapshot either produces a complete update or none;
// series are never partially replaced.
type SeriesUpdate struct {
	IPSeries     []Category
	AttackSeries []Category
	Counters     Counters
	Point        TimelinePoint
}

// BuildSeries recomputes the chart series and counters from a snapshot.
// The distribution series have one category per map key, sorted by count
// descending (label ascending on ties) for a stable render. The timeline
// point carries the poll completion time and the distinct blocked-IP count.
func BuildSeries(snap *api.StatsSnapshot, at time.Time) SeriesUpdate {
	return SeriesUpdate{
		IPSeries:     buildCategories(snap.BlockedIPs),
		AttackSeries: buildCategories(snap.ActiveAttacks),
		Counters: Counters{
			BlockedIPs:    len(snap.BlockedIPs),
			BlockedURLs:   len(snap.BlockedURLs),
			BlockedPorts:  len(snap.BlockedPorts),
			ActiveAttacks: len(snap.ActiveAttacks),
		},
		Point: TimelinePoint{
			Label: at.Format("15:04:05"),
			Value: len(snap.BlockedIPs),
		},
	}
}

func buildCategories(m map[string]int) []Category {
	cats := make([]Category, 0, len(m))
	for label, value := range m {
		cats = append(cats, Category{Label: label, Value: value})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Value != cats[j].Value {
			return cats[i].Value > cats[j].Value
		}
		return cats[i].Label < cats[j].Label
	})
	return cats
}
