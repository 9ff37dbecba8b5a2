package process

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrTimeout is reported when a job exceeds Options.Timeout
	ErrTimeout = errors.New("process timed out")
	// ErrCancelled is reported when the job's context is cancelled before exit
	ErrCancelled = errors.New("process cancelled")
)

const (
	defaultMaxLineLength = 1024 * 1024 // 1MB
	defaultLineBuffer    = 256
)

// Stream identifies which standard stream a line was read from
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Line is one line of child output
type Line struct {
	Stream Stream    `json:"stream"`
	Text   string    `json:"text"`
	Level  Level     `json:"level"`
	Time   time.Time `json:"time"`
}

// Result describes how a job ended
type Result struct {
	ExitCode int           `json:"exit_code"` // -1 when killed by a signal or never started
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Success reports whether the process exited with code 0
func (r Result) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// Summary returns the line appended to the log view when the job ends
func (r Result) Summary() string {
	if r.Success() {
		return FinishedMessage(r.ExitCode)
	}
	return CrashedMessage(r.ExitCode)
}

// FinishedMessage formats the normal-exit log line
func FinishedMessage(code int) string {
	return fmt.Sprintf("Process finished successfully with exit code: %d.", code)
}

// CrashedMessage formats the failure log line
func CrashedMessage(code int) string {
	return fmt.Sprintf("Process crashed with exit code: %d.", code)
}

// Options tune a job
type Options struct {
	MaxLineLength int           // longer lines are delivered in chunks
	Timeout       time.Duration // 0 disables the timeout
	LineBuffer    int           // capacity of the Lines channel
}

func (o Options) withDefaults() Options {
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = defaultMaxLineLength
	}
	if o.LineBuffer <= 0 {
		o.LineBuffer = defaultLineBuffer
	}
	return o
}

// Job is a running child process whose output is streamed line by line
type Job struct {
	ID        string
	Command   Command
	StartedAt time.Time

	lines    chan Line
	finished chan struct{}
	result   Result
	cancel   context.CancelFunc
}

// Start launches cmd in the background. It never fails synchronously: a
// process that cannot be started is reported through Wait with exit code -1.
// Lines is closed once both streams are drained, before Done is closed.
func Start(ctx context.Context, cmd Command, opts Options) *Job {
	opts = opts.withDefaults()

	var jobCtx context.Context
	var cancel context.CancelFunc
	if opts.Timeout > 0 {
		jobCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
	} else {
		jobCtx, cancel = context.WithCancel(ctx)
	}

	job := &Job{
		ID:        uuid.NewString(),
		Command:   cmd,
		StartedAt: time.Now(),
		lines:     make(chan Line, opts.LineBuffer),
		finished:  make(chan struct{}),
		cancel:    cancel,
	}

	go job.run(jobCtx, opts)
	return job
}

// Lines returns the channel of output lines
func (j *Job) Lines() <-chan Line {
	return j.lines
}

// Done is closed when the job has exited
func (j *Job) Done() <-chan struct{} {
	return j.finished
}

// Wait blocks until the job exits and returns its result
func (j *Job) Wait() Result {
	<-j.finished
	return j.result
}

// Cancel kills the process if it is still running
func (j *Job) Cancel() {
	j.cancel()
}

func (j *Job) finish(result Result) {
	j.result = result
	close(j.finished)
	j.cancel()
}

func (j *Job) run(ctx context.Context, opts Options) {
	// #nosec G204 - commands are built from configuration, not user input
	cmd := exec.CommandContext(ctx, j.Command.Name, j.Command.Args...)
	cmd.Dir = j.Command.Dir
	if len(j.Command.Env) > 0 {
		cmd.Env = append(os.Environ(), j.Command.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		close(j.lines)
		j.finish(Result{ExitCode: -1, Err: fmt.Errorf("stdout pipe: %w", err)})
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		close(j.lines)
		j.finish(Result{ExitCode: -1, Err: fmt.Errorf("stderr pipe: %w", err)})
		return
	}

	if err := cmd.Start(); err != nil {
		close(j.lines)
		j.finish(Result{ExitCode: -1, Err: fmt.Errorf("start %s: %w", j.Command.Name, err), Duration: time.Since(j.StartedAt)})
		return
	}

	eg, egCtx := errgroup.WithContext(ctx)
	// Unblocks pending reads when the job is cancelled or a pump fails
	stop := context.AfterFunc(egCtx, func() {
		_ = stdout.Close()
		_ = stderr.Close()
	})
	defer stop()

	eg.Go(func() error { return j.pump(egCtx, stdout, Stdout, opts.MaxLineLength) })
	eg.Go(func() error { return j.pump(egCtx, stderr, Stderr, opts.MaxLineLength) })

	pumpErr := eg.Wait()
	close(j.lines)
	if pumpErr != nil {
		j.cancel()
	}

	waitErr := cmd.Wait()
	result := Result{ExitCode: exitCode(waitErr), Duration: time.Since(j.StartedAt)}

	switch {
	case waitErr == nil && pumpErr == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Err = fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
	case ctx.Err() != nil:
		result.Err = ErrCancelled
	case pumpErr != nil:
		result.Err = pumpErr
	default:
		result.Err = waitErr
	}
	if result.Err != nil && result.ExitCode == 0 {
		result.ExitCode = -1
	}

	j.finish(result)
}

// pump forwards the lines of one stream in arrival order
func (j *Job) pump(ctx context.Context, r io.Reader, stream Stream, maxLine int) error {
	classifier := NewClassifier()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, min(4096, maxLine)), maxLine)
	scanner.Split(splitLines(maxLine))

	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		line := Line{Stream: stream, Text: text, Level: classifier.Classify(text), Time: time.Now()}
		select {
		case j.lines <- line:
		case <-ctx.Done():
			return nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("read %s: %w", stream, err)
	}
	return nil
}

// splitLines splits on \n or \r so carriage-return progress updates arrive
// as separate lines. Tokens never exceed limit bytes.
func splitLines(limit int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexAny(data, "\r\n"); i >= 0 && i <= limit {
			return i + 1, data[:i], nil
		}
		if len(data) >= limit {
			return limit, data[:limit], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// exitCode maps a Wait error to the reported exit code
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
