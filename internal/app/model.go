// Package app is the terminal user interface: a Bubble Tea program that walks
// the user from algorithm choice to the rendered video.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/logger"
	"github.com/yildizm/sortflow/internal/navigator"
	"github.com/yildizm/sortflow/internal/playback"
	"github.com/yildizm/sortflow/internal/process"
	"github.com/yildizm/sortflow/internal/scene"
	"github.com/yildizm/sortflow/internal/ui"
	"github.com/yildizm/sortflow/internal/ui/components"
)

// Texts shown on the array input and render screens
const (
	InputPlaceholder = "Enter a list of numbers (comma separated)"
	SavedNotice      = "Array successfully saved. Generating animation..."
)

// Renderer starts render jobs
type Renderer interface {
	Dispatch(ctx context.Context, a algorithm.Algorithm) (*process.Job, error)
	Report(job *process.Job, result process.Result)
}

// Player plays the rendered video of an algorithm
type Player interface {
	PathFor(a algorithm.Algorithm) string
	Play(ctx context.Context, a algorithm.Algorithm) error
}

// Submitter validates raw input and writes the hand-off file
type Submitter interface {
	Submit(raw string) (arrayinput.Array, error)
	Path() string
}

// Options wire the model to its collaborators
type Options struct {
	Renderer Renderer
	Player   Player
	Handoff  Submitter
	Logger   *logger.Logger
	LogLines int // lines kept in the render log view
}

// Model is the Bubble Tea model of the application
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	state navigator.State
	keys  keyMap
	help  help.Model

	list    *components.List
	input   textinput.Model
	logView *components.LogView
	status  *components.RenderStatus

	markdown   *glamour.TermRenderer
	pseudocode map[algorithm.Algorithm]string

	renderer Renderer
	player   Player
	handoff  Submitter
	log      *logger.Logger

	job        *process.Job
	plan       *scene.Plan
	playCancel context.CancelFunc
	notice     string

	width    int
	height   int
	quitting bool
}

// New creates the model. Cancelling ctx, or quitting, stops any running job.
func New(ctx context.Context, opts Options) *Model {
	ctx, cancel := context.WithCancel(ctx)

	log := opts.Logger
	if log == nil {
		log = logger.New("app", nil)
	}
	logLines := opts.LogLines
	if logLines <= 0 {
		logLines = 5000
	}

	ti := textinput.New()
	ti.Placeholder = InputPlaceholder
	ti.Prompt = "│ "
	ti.CharLimit = 4096
	ti.Width = 60

	m := &Model{
		ctx:        ctx,
		cancel:     cancel,
		state:      navigator.Initial(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		list:       components.NewAlgorithmList(40),
		input:      ti,
		logView:    components.NewLogView("Render log", logLines, 80, 20),
		status:     components.NewRenderStatus(),
		pseudocode: make(map[algorithm.Algorithm]string),
		renderer:   opts.Renderer,
		player:     opts.Player,
		handoff:    opts.Handoff,
		log:        log,
		width:      80,
		height:     24,
	}
	m.markdown = newMarkdownRenderer(60)
	return m
}

// State returns the current navigation state
func (m *Model) State() navigator.State {
	return m.state
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		if m.state.Screen == navigator.RenderProgress {
			return m, m.logView.Update(msg)
		}
	case spinner.TickMsg:
		return m, m.status.Update(msg)
	case lineMsg:
		return m.handleLine(msg)
	case jobDoneMsg:
		return m.handleJobDone(msg)
	case playbackDoneMsg:
		return m.handlePlaybackDone(msg)
	}

	if m.state.Screen == navigator.ArrayInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.input.Width = max(10, min(msg.Width-8, 80))
	m.logView.SetSize(msg.Width, max(6, msg.Height-10))

	wrap := max(20, msg.Width/2-6)
	m.markdown = newMarkdownRenderer(wrap)
	clear(m.pseudocode)
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		return m.quit()
	}

	// While typing every other key belongs to the input
	if m.state.Screen == navigator.ArrayInput {
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state.Screen {
	case navigator.Landing:
		if key.Matches(msg, m.keys.Enter) {
			m.apply(navigator.StartClicked{})
		}
	case navigator.AlgorithmChoice:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.list.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.list.MoveDown()
		case key.Matches(msg, m.keys.Enter):
			a, ok := components.SelectedAlgorithm(m.list)
			if !ok {
				return m, nil
			}
			if m.apply(navigator.AlgorithmConfirmed{Algorithm: a}) {
				return m, m.input.Focus()
			}
		}
	case navigator.RenderProgress:
		return m, m.logView.Update(msg)
	case navigator.Playback:
		switch {
		case key.Matches(msg, m.keys.Replay):
			return m.startPlayback()
		case key.Matches(msg, m.keys.Cancel):
			if m.playCancel != nil && m.state.Playback == navigator.PlayerPlaying {
				m.playCancel()
			}
		}
	}
	return m, nil
}

// apply runs a navigator transition and reports whether it was accepted
func (m *Model) apply(ev navigator.Event) bool {
	next, err := navigator.Transition(m.state, ev)
	if err != nil {
		m.log.Debug("Ignored event: %v", err)
		return false
	}
	m.state = next
	return true
}

// submit validates the input, writes the hand-off file and starts the render
func (m *Model) submit() (tea.Model, tea.Cmd) {
	array, err := m.handoff.Submit(m.input.Value())
	if err != nil {
		m.log.WarnWithFields("Array rejected", []logger.Field{logger.Error(err)})
		m.apply(navigator.ArrayRejected{Err: err})
		return m, nil
	}

	if !m.apply(navigator.ArrayAccepted{Array: array}) {
		return m, nil
	}
	m.input.Blur()
	m.notice = SavedNotice
	m.log.InfoWithFields("Array saved", []logger.Field{
		logger.F("path", m.handoff.Path()),
		logger.F("array", array.Literal()),
	})

	if plan, err := scene.Build(m.state.Algorithm, array); err == nil {
		m.plan = plan
	}

	spin := m.status.Start("Rendering "+m.state.Algorithm.String(), time.Now())

	job, err := m.renderer.Dispatch(m.ctx, m.state.Algorithm)
	if err != nil {
		m.log.ErrorWithFields("Render could not start", []logger.Field{logger.Error(err)})
		return m, tea.Batch(spin, failedCmd(err))
	}
	m.job = job
	return m, tea.Batch(spin, waitLineCmd(job))
}

func (m *Model) handleLine(msg lineMsg) (tea.Model, tea.Cmd) {
	if m.job == nil || msg.jobID != m.job.ID {
		return m, nil
	}
	m.logView.Append(msg.line)
	return m, waitLineCmd(m.job)
}

func (m *Model) handleJobDone(msg jobDoneMsg) (tea.Model, tea.Cmd) {
	if m.job != nil && msg.jobID != m.job.ID {
		return m, nil
	}

	result := msg.result
	if m.job != nil {
		m.renderer.Report(m.job, result)
	}
	m.status.Finish(result)

	if !result.Success() {
		if result.Err != nil {
			m.logView.AppendText(result.Err.Error(), process.LevelError)
		}
		m.logView.AppendText(result.Summary(), process.LevelError)
		m.apply(navigator.RenderFailed{ExitCode: result.ExitCode})
		return m, nil
	}

	m.logView.AppendText(result.Summary(), process.LevelInfo)
	if !m.apply(navigator.RenderSucceeded{}) {
		return m, nil
	}
	return m.startPlayback()
}

// startPlayback launches the player as a cancellable background command
func (m *Model) startPlayback() (tea.Model, tea.Cmd) {
	if !m.apply(navigator.PlaybackStarted{}) {
		return m, nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.playCancel = cancel
	return m, playCmd(ctx, m.player, m.state.Algorithm)
}

func (m *Model) handlePlaybackDone(msg playbackDoneMsg) (tea.Model, tea.Cmd) {
	if m.playCancel != nil {
		m.playCancel()
		m.playCancel = nil
	}

	if errors.Is(msg.err, playback.ErrCancelled) {
		m.apply(navigator.PlaybackCancelled{})
		return m, nil
	}
	m.apply(navigator.PlaybackFinished{Err: msg.err})
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// newMarkdownRenderer returns nil when glamour cannot be initialised; the
// pseudocode is then shown as plain text.
func newMarkdownRenderer(wrap int) *glamour.TermRenderer {
	style := glamour.WithAutoStyle()
	if ui.IsColorDisabled() {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil
	}
	return r
}

// renderPseudocode renders the snippet of a once per width
func (m *Model) renderPseudocode(a algorithm.Algorithm) string {
	if out, ok := m.pseudocode[a]; ok {
		return out
	}

	out := a.Pseudocode()
	if m.markdown != nil {
		doc := fmt.Sprintf("### %s\n\n```python\n%s\n```\n", a.String(), a.Pseudocode())
		if rendered, err := m.markdown.Render(doc); err == nil {
			out = rendered
		}
	}
	m.pseudocode[a] = out
	return out
}
