package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sortflow/internal/process"
	"github.com/yildizm/sortflow/internal/ui"
)

// LogView is a scrolling view over the output lines of a child process
type LogView struct {
	Title      string
	ShowStream bool

	viewport viewport.Model
	lines    []process.Line
	maxLines int
	dropped  int
	width    int
	height   int
}

// NewLogView creates a log view that keeps at most maxLines lines
func NewLogView(title string, maxLines, width, height int) *LogView {
	if maxLines < 1 {
		maxLines = 1
	}
	v := &LogView{
		Title:      title,
		ShowStream: true,
		viewport:   viewport.New(width, height),
		maxLines:   maxLines,
	}
	v.SetSize(width, height)
	return v
}

// SetSize resizes the view, keeping room for the title
func (v *LogView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(1, width-4)
	v.viewport.Height = max(1, height-4)
	v.refresh(v.viewport.AtBottom())
}

// Append adds a line and follows the tail if the view was at the bottom
func (v *LogView) Append(line process.Line) {
	follow := v.viewport.AtBottom()

	v.lines = append(v.lines, line)
	if over := len(v.lines) - v.maxLines; over > 0 {
		v.lines = append(v.lines[:0:0], v.lines[over:]...)
		v.dropped += over
	}

	v.refresh(follow)
}

// AppendText adds a line that did not come from the process itself
func (v *LogView) AppendText(text string, level process.Level) {
	v.Append(process.Line{Stream: process.Stdout, Text: text, Level: level})
}

// Lines returns the lines currently held
func (v *LogView) Lines() []process.Line {
	return v.lines
}

// Dropped returns how many old lines were discarded
func (v *LogView) Dropped() int {
	return v.dropped
}

// Reset clears all lines
func (v *LogView) Reset() {
	v.lines = nil
	v.dropped = 0
	v.refresh(true)
}

// Update forwards scrolling keys and mouse events to the viewport
func (v *LogView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *LogView) refresh(follow bool) {
	rendered := make([]string, 0, len(v.lines))
	for _, line := range v.lines {
		rendered = append(rendered, v.renderLine(line))
	}
	v.viewport.SetContent(strings.Join(rendered, "\n"))
	if follow {
		v.viewport.GotoBottom()
	}
}

// Render renders the log view
func (v *LogView) Render() string {
	styles := ui.GetStyles()

	title := v.Title
	if len(v.lines) > 0 {
		title = fmt.Sprintf("%s (%d lines)", v.Title, len(v.lines)+v.dropped)
	}

	var body string
	if len(v.lines) == 0 {
		body = styles.Muted.Render("Waiting for output...")
	} else {
		body = v.viewport.View()
	}

	joined := lipgloss.JoinVertical(lipgloss.Left, styles.Header.Render(title), body)
	return styles.Panel.Width(max(1, v.width-2)).Render(joined)
}

// renderLine renders a single line, coloured by its detected level
func (v *LogView) renderLine(line process.Line) string {
	styles := ui.GetStyles()

	text := line.Text
	if v.ShowStream && line.Stream == process.Stderr {
		text = styles.Muted.Render("│") + " " + text
	}

	switch line.Level {
	case process.LevelError, process.LevelFatal:
		return styles.Error.Render(text)
	case process.LevelWarn:
		return styles.Warning.Render(text)
	case process.LevelDebug:
		return styles.Muted.Render(text)
	default:
		return styles.Body.Render(text)
	}
}
