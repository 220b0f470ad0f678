package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution
// (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders a single-row sparkline of the timeline values.
// One character per point, right-aligned when fewer points than width are
// available, scaled to the data's own range.
func RenderSparkline(data []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := findMinMax(data)

	var b strings.Builder
	for i := 0; i < width-len(data); i++ {
		b.WriteRune(' ')
	}
	for _, val := range data {
		normalized := normalizeValue(val, minVal, maxVal)
		idx := clampInt(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1)
		b.WriteRune(sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// RenderBarChart renders a horizontal bar chart of the given categories.
// Labels are truncated to labelWidth; bars scale to the largest value.
func RenderBarChart(cats []Category, labelWidth, barWidth int, color lipgloss.Color) string {
	if len(cats) == 0 {
		return LabelStyle.Render("no data")
	}

	maxVal := 0
	for _, c := range cats {
		if c.Value > maxVal {
			maxVal = c.Value
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(color)

	var lines []string
	for _, c := range cats {
		label := padLabel(c.Label, labelWidth)

		filled := 0
		if maxVal > 0 {
			filled = c.Value * barWidth / maxVal
		}
		if c.Value > 0 && filled == 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		lines = append(lines,
			LabelStyle.Render(label)+" "+barStyle.Render(bar)+" "+ValueStyle.Render(fmt.Sprintf("%d", c.Value)))
	}
	return strings.Join(lines, "\n")
}

// RenderRateBar renders a horizontal percentage bar for the proxy block rate.
func RenderRateBar(percent float64, width int) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	color := ColorOnline
	switch {
	case percent >= 50:
		color = ColorOffline
	case percent >= 20:
		color = ColorWarn
	}

	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorTextFaint)
	return filledStyle.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))
}

// padLabel truncates or right-pads a label to exactly width characters.
func padLabel(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// findMinMax returns the minimum and maximum values in a slice.
func findMinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 0
	}
	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
