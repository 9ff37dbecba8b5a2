package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sortflow/internal/emoji"
	"github.com/yildizm/sortflow/internal/navigator"
	"github.com/yildizm/sortflow/internal/ui"
	"github.com/yildizm/sortflow/internal/ui/components"
)

const logo = `
╔═╗┌─┐┬─┐┌┬┐╔═╗┬  ┌─┐┬ ┬
╚═╗│ │├┬┘ │ ╠╣ │  │ ││││
╚═╝└─┘┴└─ ┴ ╚  ┴─┘└─┘└┴┘`

// View renders the active screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state.Screen {
	case navigator.Landing:
		body = m.renderLanding()
	case navigator.AlgorithmChoice:
		body = m.renderAlgorithmChoice()
	case navigator.ArrayInput:
		body = m.renderArrayInput()
	case navigator.RenderProgress:
		body = m.renderProgress()
	case navigator.Playback:
		body = m.renderPlayback()
	}

	footer := m.help.View(m.keys.helpFor(m.state))
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", body, "", footer)
}

func (m *Model) renderHeader() string {
	styles := ui.GetStyles()
	title := styles.Title.Render("SortFlow")
	if m.state.Screen == navigator.Landing {
		return title
	}
	return title + styles.Muted.Render("› "+m.state.Screen.String())
}

func (m *Model) renderLanding() string {
	styles := ui.GetStyles()

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Header.Render(logo),
		"",
		styles.Subheader.Render("Animated sorting algorithms"),
		"",
		styles.Body.Render(emoji.GetEmoji("rocket")+" Press enter to start"),
	)

	box := styles.Box.Width(min(max(20, m.width-4), 60)).Align(lipgloss.Center)
	return lipgloss.Place(m.width, max(1, m.height-6), lipgloss.Center, lipgloss.Center, box.Render(content))
}

func (m *Model) renderAlgorithmChoice() string {
	a, ok := components.SelectedAlgorithm(m.list)
	if !ok {
		return m.list.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.Render(), "  ", m.renderPseudocode(a))
}

func (m *Model) renderArrayInput() string {
	styles := ui.GetStyles()

	lines := []string{
		styles.Header.Render(fmt.Sprintf("%s %s", emoji.GetEmoji("number"), m.state.Algorithm.String())),
		styles.Muted.Render("Type the numbers to sort, e.g. 2, 3, 1, 4, 7, 6, 5, 9, 8"),
		"",
		m.input.View(),
	}
	if m.state.InputError != nil {
		lines = append(lines, "", styles.Error.Render("Error: "+m.state.InputError.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderProgress() string {
	styles := ui.GetStyles()

	lines := []string{styles.Success.Render(m.notice), "", m.status.Render()}
	if m.job != nil {
		lines = append(lines,
			styles.Muted.Render("Job "+m.job.ID),
			styles.Command.Render(m.job.Command.String()),
		)
	}
	if m.state.Render == navigator.RenderCrashed {
		lines = append(lines, styles.Error.Render(fmt.Sprintf("%s Rendering stopped. Press q to quit.", emoji.GetEmoji("error"))))
	}
	lines = append(lines, "", m.logView.Render())

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderPlayback() string {
	styles := ui.GetStyles()
	path := m.player.PathFor(m.state.Algorithm)

	summary := components.NewSummaryBox(emoji.GetEmoji("playback")+" "+m.state.Algorithm.String(), min(max(30, m.width-4), 80))
	summary.AddKeyValue("Video", path)
	summary.AddKeyValue("Player", m.playerStatus())
	summary.AddKeyValue("Array", m.state.Array.Literal())

	lines := []string{summary.Render()}
	if m.plan != nil {
		width := max(10, min(m.width-12, 60))
		lines = append(lines,
			"",
			components.CreatePlanStats(m.plan).Render(),
			"",
			components.NewArrayChart("before", m.plan.Input, width).Render(),
			components.NewArrayChart("after ", m.plan.Output, width).Render(),
		)
	}
	if m.state.PlaybackError != nil {
		lines = append(lines, "", styles.Error.Render("Error: "+m.state.PlaybackError.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// playerStatus describes the player state in words
func (m *Model) playerStatus() string {
	switch m.state.Playback {
	case navigator.PlayerPlaying:
		return "Playing..."
	case navigator.PlayerFinished:
		return "Finished"
	case navigator.PlayerFailed:
		return "Failed"
	case navigator.PlayerCancelled:
		return "Stopped"
	default:
		return "Ready"
	}
}
