package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/ui"
)

// sparkChars are the bar glyphs from lowest to highest
var sparkChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// ArrayChart draws an array as a row of bars, one per element
type ArrayChart struct {
	Label string
	Array arrayinput.Array
	Width int
}

// NewArrayChart creates a chart of array scaled to width glyphs
func NewArrayChart(label string, array arrayinput.Array, width int) *ArrayChart {
	return &ArrayChart{Label: label, Array: array, Width: width}
}

// Bars returns the unstyled bar glyphs
func (c *ArrayChart) Bars() string {
	if len(c.Array) == 0 || c.Width < 1 {
		return ""
	}

	lo, hi := c.Array[0].Float64(), c.Array[0].Float64()
	for _, n := range c.Array[1:] {
		v := n.Float64()
		lo = min(lo, v)
		hi = max(hi, v)
	}

	step := max(1, (len(c.Array)+c.Width-1)/c.Width)

	var result strings.Builder
	for i := 0; i < len(c.Array); i += step {
		normalized := 0.0
		if hi > lo {
			normalized = (c.Array[i].Float64() - lo) / (hi - lo)
		}
		index := min(int(normalized*float64(len(sparkChars)-1)), len(sparkChars)-1)
		result.WriteString(sparkChars[index])
	}

	return result.String()
}

// Render renders the label and bars
func (c *ArrayChart) Render() string {
	styles := ui.GetStyles()

	bars := c.Bars()
	if bars == "" {
		bars = styles.Muted.Render("(empty)")
	} else {
		bars = styles.Success.UnsetBold().Render(bars)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, styles.Muted.Render(c.Label+" "), bars)
}
