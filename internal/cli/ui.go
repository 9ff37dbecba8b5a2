package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yildizm/sortflow/internal/app"
	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/logger"
	"github.com/yildizm/sortflow/internal/playback"
	"github.com/yildizm/sortflow/internal/render"
)

func newUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive terminal UI",
		Long: `Start the interactive terminal UI.

Walks through the landing page, the algorithm choice and the array input,
then streams the render log and plays the finished video. Press ? for the
key bindings of the current screen.`,
		Args: cobra.NoArgs,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	// The alternate screen owns the terminal, so logs go to a file or nowhere
	if cfg.Output.LogFile != "" {
		f, err := tea.LogToFile(cfg.Output.LogFile, "sortflow")
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.Output.LogFile, err)
		}
		defer func() {
			if err := f.Close(); err != nil && isVerbose() {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close log file: %v\n", err)
			}
		}()
		logger.SetDefaultOutput(f)
	} else {
		logger.SetDefaultOutput(io.Discard)
	}
	defer logger.SetDefaultOutput(nil)

	return app.Run(cmd.Context(), app.Options{
		Renderer: render.NewDispatcher(cfg.Render, newLogger("render")),
		Player:   playback.NewTrigger(cfg.Playback, newLogger("playback")),
		Handoff:  arrayinput.NewHandoff(cfg.Handoff.Path, cfg.Handoff.Variable),
		Logger:   newLogger("app"),
		LogLines: cfg.Render.LogLines,
	})
}
