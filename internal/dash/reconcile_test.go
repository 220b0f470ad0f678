package dash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyshield/shieldtop/internal/api"
)

func TestBuildSeries(t *testing.T) {
	snap := &api.StatsSnapshot{
		BlockedIPs: map[string]int{
			"10.0.0.9":    3,
			"192.168.1.5": 12,
			"172.16.0.2":  3,
		},
		BlockedURLs:  map[string]int{"evil.example.com": 1},
		BlockedPorts: []int{23, 445},
		ActiveAttacks: map[string]int{
			"ddos":      7,
			"port_scan": 2,
		},
	}
	at := time.Date(2026, 8, 26, 14, 2, 31, 0, time.UTC)

	upd := BuildSeries(snap, at)

	// Sorted by count descending, label ascending on ties
	require.Len(t, upd.IPSeries, 3)
	assert.Equal(t, Category{Label: "192.168.1.5", Value: 12}, upd.IPSeries[0])
	assert.Equal(t, Category{Label: "10.0.0.9", Value: 3}, upd.IPSeries[1])
	assert.Equal(t, Category{Label: "172.16.0.2", Value: 3}, upd.IPSeries[2])

	require.Len(t, upd.AttackSeries, 2)
	assert.Equal(t, "ddos", upd.AttackSeries[0].Label)

	assert.Equal(t, Counters{
		BlockedIPs:    3,
		BlockedURLs:   1,
		BlockedPorts:  2,
		ActiveAttacks: 2,
	}, upd.Counters)

	assert.Equal(t, TimelinePoint{Label: "14:02:31", Value: 3}, upd.Point)
}

func TestBuildSeriesEmptySnapshot(t *testing.T) {
	upd := BuildSeries(&api.StatsSnapshot{}, time.Now())

	assert.Empty(t, upd.IPSeries)
	assert.Empty(t, upd.AttackSeries)
	assert.Equal(t, Counters{}, upd.Counters)
	assert.Equal(t, 0, upd.Point.Value)
}

func TestBuildCategoriesStableOrder(t *testing.T) {
	m := map[string]int{"c": 1, "a": 1, "b": 1}

	// Map iteration order varies; the output must not
	for i := 0; i < 10; i++ {
		cats := buildCategories(m)
		require.Len(t, cats, 3)
		assert.Equal(t, "a", cats[0].Label)
		assert.Equal(t, "b", cats[1].Label)
		assert.Equal(t, "c", cats[2].Label)
	}
}
