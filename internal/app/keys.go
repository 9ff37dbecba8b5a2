package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/yildizm/sortflow/internal/navigator"
)

// keyMap defines the keyboard shortcuts of the application
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Submit key.Binding
	Replay key.Binding
	Cancel key.Binding
	Scroll key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "render"),
		),
		Replay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play again"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop player"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("↑/↓/pgup/pgdn", "scroll log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// screenHelp lists the bindings that apply to one screen
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h screenHelp) ShortHelp() []key.Binding  { return h.short }
func (h screenHelp) FullHelp() [][]key.Binding { return h.full }

// helpFor returns the bindings shown in the footer of a screen
func (k keyMap) helpFor(s navigator.State) screenHelp {
	var short []key.Binding
	switch s.Screen {
	case navigator.Landing:
		short = []key.Binding{k.Enter, k.Quit}
	case navigator.AlgorithmChoice:
		short = []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
	case navigator.ArrayInput:
		short = []key.Binding{k.Submit, k.Force}
	case navigator.RenderProgress:
		short = []key.Binding{k.Scroll, k.Quit}
	case navigator.Playback:
		if s.Playback == navigator.PlayerPlaying {
			short = []key.Binding{k.Cancel, k.Quit}
		} else {
			short = []key.Binding{k.Replay, k.Quit}
		}
	}
	return screenHelp{
		short: short,
		full:  [][]key.Binding{short, {k.Help}},
	}
}
