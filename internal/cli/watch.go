package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/render"
)

// watchDebounce coalesces the burst of events a single save produces
const watchDebounce = 200 * time.Millisecond

var watchAlgorithm string

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the hand-off file changes",
		Long: `Watch the hand-off file and re-run the render for the chosen algorithm
each time a new array is written to it, from the terminal UI, from
"sortflow render" or from an editor. Press Ctrl+C to stop watching.

Examples:
  sortflow watch --algorithm bubble`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	addAlgorithmFlag(cmd, &watchAlgorithm)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := algorithm.Parse(watchAlgorithm)
	if err != nil {
		return err
	}

	cfg := GetGlobalConfig()
	handoff := arrayinput.NewHandoff(cfg.Handoff.Path, cfg.Handoff.Variable)
	dispatcher := render.NewDispatcher(cfg.Render, newLogger("render"))
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if err := os.MkdirAll(filepath.Dir(handoff.Path()), 0o750); err != nil {
		return fmt.Errorf("failed to create hand-off directory: %w", err)
	}

	watcher, target, cleanup, err := setupFileWatcher(handoff.Path())
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprintf(out, "%s Watching %s for %s arrays. Press Ctrl+C to stop...\n", GetEmoji("watch"), target, a)

	rerun := func(ctx context.Context) {
		array, err := handoff.Read()
		if err != nil {
			fmt.Fprintf(errOut, "%s Skipping change: %v\n", GetEmoji("warning"), err)
			return
		}
		fmt.Fprintf(out, "%s Rendering %s %s\n", GetEmoji("render"), a, array.Literal())
		if _, err := streamRender(ctx, dispatcher, a, out); err != nil {
			fmt.Fprintf(errOut, "%s %v\n", GetEmoji("error"), err)
		}
	}

	return runWatchLoop(cmd.Context(), watcher, target, watchDebounce, errOut, rerun)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// createWatcher watches the directory holding target. Writers replace the
// file by rename, which would drop a watch on the file itself.
func createWatcher(target string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return watcher, nil
}

// setupFileWatcher validates path and watches it. It returns the absolute
// path that watcher events are reported under.
func setupFileWatcher(path string) (*fsnotify.Watcher, string, func(), error) {
	target, err := validateWatchFilePath(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("invalid file path: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", target)
	}

	watcher, err := createWatcher(target)
	if err != nil {
		return nil, "", nil, err
	}

	return watcher, target, func() { cleanupWatcher(watcher) }, nil
}

// runWatchLoop calls rerun once per settled change of target until ctx ends.
// rerun blocks the loop; changes made meanwhile trigger one more run.
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, debounce time.Duration, errOut io.Writer, rerun func(context.Context)) error {
	target = filepath.Clean(target)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if isVerbose() {
				fmt.Fprintf(errOut, "\nReceived interrupt signal, stopping...\n")
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if isHandoffChange(event, target) {
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if isVerbose() {
				fmt.Fprintf(errOut, "Watcher error: %v\n", err)
			}

		case <-timer.C:
			rerun(ctx)
		}
	}
}

// isHandoffChange reports whether event wrote or replaced target
func isHandoffChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// validateWatchFilePath resolves path to an absolute file path that can be
// watched. Relative hand-off paths, including ones above the working
// directory, are resolved the same way the render command writes them.
func validateWatchFilePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty file path")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	// The file may not exist yet, but its directory must
	info, err := os.Stat(filepath.Dir(absPath))
	if err != nil {
		return "", fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("parent of %s is not a directory", absPath)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return "", fmt.Errorf("cannot watch directory, must be a file")
	}

	return absPath, nil
}
