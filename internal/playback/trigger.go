// Package playback launches the external media player on a rendered video.
package playback

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/config"
	"github.com/yildizm/sortflow/internal/logger"
	"github.com/yildizm/sortflow/internal/process"
)

// ErrCancelled is returned when playback is stopped through its context
var ErrCancelled = errors.New("playback cancelled")

// Trigger runs the configured player against the rendered video
type Trigger struct {
	cfg config.PlaybackConfig
	log *logger.Logger
}

// NewTrigger creates a playback trigger
func NewTrigger(cfg config.PlaybackConfig, log *logger.Logger) *Trigger {
	if log == nil {
		log = logger.New("playback", nil)
	}
	return &Trigger{cfg: cfg, log: log}
}

// PathFor returns the video the renderer writes for an algorithm.
// No existence check is made.
func (t *Trigger) PathFor(a algorithm.Algorithm) string {
	return filepath.Join(t.cfg.MediaDir, a.SceneModule(), t.cfg.Quality, a.SceneClass()+".mp4")
}

// CommandFor returns the player invocation for an algorithm
func (t *Trigger) CommandFor(a algorithm.Algorithm) process.Command {
	args := make([]string, 0, len(t.cfg.PlayerArgs)+1)
	args = append(args, t.cfg.PlayerArgs...)
	args = append(args, t.PathFor(a))
	return process.Command{Name: t.cfg.Player, Args: args}
}

// Play runs the player and blocks until it exits or ctx is cancelled
func (t *Trigger) Play(ctx context.Context, a algorithm.Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d", algorithm.ErrUnknownAlgorithm, int(a))
	}

	cmd := t.CommandFor(a)
	job := process.Start(ctx, cmd, process.Options{})
	t.log.InfoWithFields("Playback started", []logger.Field{logger.JobID(job.ID), logger.F("command", cmd.String())})

	for line := range job.Lines() {
		t.log.Debug("%s: %s", cmd.Name, line.Text)
	}

	result := job.Wait()
	switch {
	case result.Success():
		t.log.InfoWithFields("Playback finished", []logger.Field{logger.JobID(job.ID), logger.Duration(result.Duration)})
		return nil
	case errors.Is(result.Err, process.ErrCancelled):
		t.log.Info("Playback cancelled")
		return ErrCancelled
	default:
		t.log.ErrorWithFields("Playback failed", []logger.Field{logger.JobID(job.ID), logger.F("exit_code", result.ExitCode), logger.Error(result.Err)})
		return fmt.Errorf("player %s failed on %s: %w", cmd.Name, t.PathFor(a), result.Err)
	}
}
