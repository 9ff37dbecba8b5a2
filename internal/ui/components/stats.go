package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/emoji"
	"github.com/yildizm/sortflow/internal/scene"
	"github.com/yildizm/sortflow/internal/ui"
)

// StatsCard represents a statistics card component
type StatsCard struct {
	Title       string
	Value       string
	Description string
	Status      string // "success", "warning", "error", "info"
	Icon        string
	Width       int
}

// NewStatsCard creates a new stats card
func NewStatsCard(title, value, description string) *StatsCard {
	return &StatsCard{
		Title:       title,
		Value:       value,
		Description: description,
		Status:      "info",
		Width:       20,
	}
}

// SetStatus sets the status color of the card
func (s *StatsCard) SetStatus(status string) *StatsCard {
	s.Status = status
	return s
}

// SetIcon sets the icon for the card
func (s *StatsCard) SetIcon(icon string) *StatsCard {
	s.Icon = icon
	return s
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	styles := ui.GetStyles()

	var valueStyle lipgloss.Style
	switch s.Status {
	case "success":
		valueStyle = styles.Success
	case "warning":
		valueStyle = styles.Warning
	case "error":
		valueStyle = styles.Error
	default:
		valueStyle = styles.Info.Bold(true)
	}

	title := styles.Subheader.Render(s.Title)
	if s.Icon != "" {
		title = s.Icon + " " + title
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		valueStyle.Render(s.Value),
		styles.Muted.Render(s.Description),
	)

	return styles.Box.Padding(0, 1).Width(s.Width).Render(content)
}

// StatsDashboard represents a row-wrapped collection of stats cards
type StatsDashboard struct {
	cards   []*StatsCard
	columns int
}

// NewStatsDashboard creates a new stats dashboard
func NewStatsDashboard(columns int) *StatsDashboard {
	return &StatsDashboard{columns: max(1, columns)}
}

// AddCard adds a stats card to the dashboard
func (d *StatsDashboard) AddCard(card *StatsCard) {
	d.cards = append(d.cards, card)
}

// Cards returns the cards in insertion order
func (d *StatsDashboard) Cards() []*StatsCard {
	return d.cards
}

// Render renders the stats dashboard
func (d *StatsDashboard) Render() string {
	if len(d.cards) == 0 {
		return ""
	}

	var rows []string
	for i := 0; i < len(d.cards); i += d.columns {
		end := min(i+d.columns, len(d.cards))

		rowCards := make([]string, 0, end-i)
		for _, card := range d.cards[i:end] {
			rowCards = append(rowCards, card.Render())
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CreatePlanStats creates stats cards from a scene plan
func CreatePlanStats(plan *scene.Plan) *StatsDashboard {
	dashboard := NewStatsDashboard(3)
	n := len(plan.Input)

	dashboard.AddCard(NewStatsCard(
		"Elements",
		formatNumber(n),
		plan.Name,
	).SetIcon(emoji.GetEmoji("number")))

	dashboard.AddCard(NewStatsCard(
		"Comparisons",
		formatNumber(plan.Comparisons),
		fmt.Sprintf("of %s worst case", formatNumber(n*(n-1)/2)),
	).SetIcon(emoji.GetEmoji("compare")))

	moves, label := plan.Swaps, "Swaps"
	if plan.Algorithm == algorithm.Insertion {
		moves, label = plan.Shifts, "Shifts"
	}
	status := "success"
	if moves > 0 {
		status = "warning"
	}
	dashboard.AddCard(NewStatsCard(
		label,
		formatNumber(moves),
		fmt.Sprintf("%s animation steps", formatNumber(len(plan.Steps))),
	).SetIcon(emoji.GetEmoji("swap")).SetStatus(status))

	return dashboard
}

// formatNumber formats large numbers with commas
func formatNumber(n int) string {
	str := strconv.Itoa(n)
	if len(str) <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// SummaryBox creates a summary information box
type SummaryBox struct {
	Title   string
	Content []string
	Width   int
}

// NewSummaryBox creates a new summary box
func NewSummaryBox(title string, width int) *SummaryBox {
	return &SummaryBox{
		Title: title,
		Width: width,
	}
}

// AddLine adds a line to the summary
func (s *SummaryBox) AddLine(line string) {
	s.Content = append(s.Content, line)
}

// AddKeyValue adds a key-value pair to the summary
func (s *SummaryBox) AddKeyValue(key, value string) {
	s.Content = append(s.Content, fmt.Sprintf("%-10s %s", key+":", value))
}

// Render renders the summary box
func (s *SummaryBox) Render() string {
	styles := ui.GetStyles()

	content := make([]string, 0, len(s.Content)+2)
	content = append(content, styles.Header.Render(s.Title), "")
	for _, line := range s.Content {
		content = append(content, styles.Body.Render(line))
	}

	joined := lipgloss.JoinVertical(lipgloss.Left, content...)
	return styles.Box.Width(s.Width).Render(joined)
}
