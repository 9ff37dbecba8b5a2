package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/app"
	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/config"
	"github.com/yildizm/sortflow/internal/playback"
	"github.com/yildizm/sortflow/internal/process"
	"github.com/yildizm/sortflow/internal/render"
)

var (
	renderAlgorithm string
	renderPlay      bool
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <array>",
		Short: "Render an animation without the terminal UI",
		Long: `Write the array to the hand-off file and run the containerised render
for the chosen algorithm. Renderer output is streamed to stdout and the
exit status mirrors the render's.

Examples:
  sortflow render --algorithm bubble "5, 3, 1, 4"
  sortflow render -a insertion --play 9 8 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRender,
	}

	addAlgorithmFlag(cmd, &renderAlgorithm)
	cmd.Flags().BoolVarP(&renderPlay, "play", "p", false, "open the video in the player when the render succeeds")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := algorithm.Parse(renderAlgorithm)
	if err != nil {
		return err
	}

	cfg := GetGlobalConfig()
	handoff := arrayinput.NewHandoff(cfg.Handoff.Path, cfg.Handoff.Variable)

	array, err := handoff.Submit(joinArrayArgs(args))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.SavedNotice)
	if isVerbose() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s -> %s\n", GetEmoji("file"), array.Literal(), handoff.Path())
	}

	ctx := cmd.Context()
	result, err := streamRender(ctx, render.NewDispatcher(cfg.Render, newLogger("render")), a, out)
	if err != nil {
		return err
	}
	if !result.Success() {
		return &ExitError{Code: renderExitCode(result)}
	}

	if renderPlay {
		return playVideo(ctx, cmd, cfg.Playback, a)
	}
	return nil
}

// joinArrayArgs lets the array be passed quoted or split over several
// arguments. Split arguments are one element each, with or without commas.
func joinArrayArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	elements := make([]string, 0, len(args))
	for _, arg := range args {
		if e := strings.Trim(arg, ", \t"); e != "" {
			elements = append(elements, e)
		}
	}
	return strings.Join(elements, ", ")
}

// streamRender dispatches the render and copies its output to out until it exits
func streamRender(ctx context.Context, dispatcher *render.Dispatcher, a algorithm.Algorithm, out io.Writer) (process.Result, error) {
	job, err := dispatcher.Dispatch(ctx, a)
	if err != nil {
		return process.Result{}, err
	}

	for line := range job.Lines() {
		if isVerbose() && line.Level >= process.LevelWarn {
			fmt.Fprintf(out, "%s %s\n", GetLevelEmoji(line.Level), line.Text)
			continue
		}
		fmt.Fprintln(out, line.Text)
	}

	result := job.Wait()
	dispatcher.Report(job, result)
	fmt.Fprintf(out, "%s %s\n", GetResultEmoji(result), result.Summary())
	return result, nil
}

// renderExitCode maps a failed result onto a non-zero process status
func renderExitCode(result process.Result) int {
	if result.ExitCode > 0 {
		return result.ExitCode
	}
	return 1
}

func playVideo(ctx context.Context, cmd *cobra.Command, cfg config.PlaybackConfig, a algorithm.Algorithm) error {
	trigger := playback.NewTrigger(cfg, newLogger("playback"))
	fmt.Fprintf(cmd.OutOrStdout(), "%s Playing %s\n", GetEmoji("playback"), trigger.PathFor(a))
	if err := trigger.Play(ctx, a); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
