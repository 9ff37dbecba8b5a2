package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/sortflow/internal/emoji"
	"github.com/yildizm/sortflow/internal/process"
	"github.com/yildizm/sortflow/internal/ui"
)

// RenderStatus shows a spinner while a job runs and its outcome afterwards
type RenderStatus struct {
	Label     string
	StartTime time.Time

	spinner  spinner.Model
	running  bool
	finished bool
	result   process.Result
}

// NewRenderStatus creates an idle status line
func NewRenderStatus() *RenderStatus {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.GetStyles().Spinner
	return &RenderStatus{spinner: sp}
}

// Start switches to the running state and returns the first spinner tick
func (s *RenderStatus) Start(label string, now time.Time) tea.Cmd {
	s.Label = label
	s.StartTime = now
	s.running = true
	s.finished = false
	return s.spinner.Tick
}

// Finish records the job result and stops the spinner
func (s *RenderStatus) Finish(result process.Result) {
	s.running = false
	s.finished = true
	s.result = result
}

// Running reports whether the spinner is active
func (s *RenderStatus) Running() bool {
	return s.running
}

// Update advances the spinner while running
func (s *RenderStatus) Update(msg tea.Msg) tea.Cmd {
	if !s.running {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// Render renders the status line
func (s *RenderStatus) Render() string {
	styles := ui.GetStyles()

	switch {
	case s.running:
		elapsed := time.Since(s.StartTime)
		return fmt.Sprintf("%s %s %s", s.spinner.View(), s.Label, styles.Muted.Render(formatDuration(elapsed)))
	case s.finished && s.result.Success():
		return styles.Success.Render(fmt.Sprintf("%s %s", emoji.GetEmoji("success"), s.result.Summary()))
	case s.finished:
		return styles.Error.Render(fmt.Sprintf("%s %s", emoji.GetEmoji("error"), s.result.Summary()))
	default:
		return styles.Muted.Render("Idle")
	}
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
