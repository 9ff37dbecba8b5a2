// Package render builds and launches the containerised scene render.
package render

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/config"
	"github.com/yildizm/sortflow/internal/logger"
	"github.com/yildizm/sortflow/internal/process"
)

// Dispatcher maps an algorithm to its render command and starts it
type Dispatcher struct {
	cfg config.RenderConfig
	log *logger.Logger
}

// NewDispatcher creates a dispatcher for the given render settings
func NewDispatcher(cfg config.RenderConfig, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.New("render", nil)
	}
	return &Dispatcher{cfg: cfg, log: log}
}

// HostDir returns the directory mounted into the container
func (d *Dispatcher) HostDir() (string, error) {
	dir := d.cfg.HostDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(config.ExpandPath(dir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve host directory %s: %w", dir, err)
	}
	return abs, nil
}

// Script returns the shell line run inside the container
func (d *Dispatcher) Script(a algorithm.Algorithm) string {
	scenes := path.Join(d.cfg.MountTarget, d.cfg.ScenesDir) + "/"
	renderer := append([]string{d.cfg.Renderer}, d.cfg.RendererArgs...)
	return fmt.Sprintf("cd %s && %s %s", scenes, strings.Join(renderer, " "), a.SceneFile())
}

// CommandFor returns the fixed render command for an algorithm
func (d *Dispatcher) CommandFor(a algorithm.Algorithm) (process.Command, error) {
	if !a.Valid() {
		return process.Command{}, fmt.Errorf("%w: %d", algorithm.ErrUnknownAlgorithm, int(a))
	}
	hostDir, err := d.HostDir()
	if err != nil {
		return process.Command{}, err
	}
	return process.Command{
		Name: d.cfg.Runtime,
		Args: []string{
			"run", "--rm",
			"-v", hostDir + ":" + d.cfg.MountTarget,
			d.cfg.Image,
			d.cfg.Shell, "-c", d.Script(a),
		},
	}, nil
}

// Dispatch starts the render for an algorithm. The job runs until it exits
// or ctx is cancelled; it is never retried.
func (d *Dispatcher) Dispatch(ctx context.Context, a algorithm.Algorithm) (*process.Job, error) {
	cmd, err := d.CommandFor(a)
	if err != nil {
		return nil, err
	}

	job := process.Start(ctx, cmd, process.Options{
		MaxLineLength: d.cfg.MaxLineLength,
		Timeout:       d.cfg.Timeout,
	})
	d.log.InfoWithFields("Render started", []logger.Field{
		logger.JobID(job.ID),
		logger.F("algorithm", a.Key()),
		logger.F("command", cmd.String()),
	})
	return job, nil
}

// Report logs the outcome of a finished job
func (d *Dispatcher) Report(job *process.Job, result process.Result) {
	fields := []logger.Field{
		logger.JobID(job.ID),
		logger.F("exit_code", result.ExitCode),
		logger.Duration(result.Duration),
	}
	if result.Success() {
		d.log.InfoWithFields("Render finished", fields)
		return
	}
	if result.Err != nil {
		fields = append(fields, logger.Error(result.Err))
	}
	d.log.ErrorWithFields("Render crashed", fields)
}
