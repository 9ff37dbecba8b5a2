package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/process"
)

// Messages delivered back into Update
type (
	lineMsg struct {
		jobID string
		line  process.Line
	}

	jobDoneMsg struct {
		jobID  string
		result process.Result
	}

	playbackDoneMsg struct {
		err error
	}
)

// waitLineCmd waits for the next output line. Once the stream is drained it
// waits for the exit and reports the result instead.
func waitLineCmd(job *process.Job) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-job.Lines()
		if !ok {
			return jobDoneMsg{jobID: job.ID, result: job.Wait()}
		}
		return lineMsg{jobID: job.ID, line: line}
	}
}

// failedCmd reports a render that could not be started
func failedCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return jobDoneMsg{result: process.Result{ExitCode: -1, Err: err}}
	}
}

// playCmd runs the player in the background until it exits or ctx ends
func playCmd(ctx context.Context, player Player, a algorithm.Algorithm) tea.Cmd {
	return func() tea.Msg {
		return playbackDoneMsg{err: player.Play(ctx, a)}
	}
}
