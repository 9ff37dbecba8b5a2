// Package navigator implements the forward-only screen flow of the UI.
package navigator

import (
	"errors"
	"fmt"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
)

// ErrInvalidTransition is returned for an event the current screen does not accept
var ErrInvalidTransition = errors.New("invalid transition")

// Screen identifies the active page
type Screen int

const (
	Landing Screen = iota
	AlgorithmChoice
	ArrayInput
	RenderProgress
	Playback
)

func (s Screen) String() string {
	switch s {
	case Landing:
		return "Landing"
	case AlgorithmChoice:
		return "Algorithm Choice"
	case ArrayInput:
		return "Array Input"
	case RenderProgress:
		return "Render Progress"
	case Playback:
		return "Playback"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// RenderStatus tracks the render job of the current session
type RenderStatus int

const (
	RenderIdle RenderStatus = iota
	RenderRunning
	RenderDone
	RenderCrashed
)

func (s RenderStatus) String() string {
	switch s {
	case RenderIdle:
		return "Idle"
	case RenderRunning:
		return "Running"
	case RenderDone:
		return "Succeeded"
	case RenderCrashed:
		return "Failed"
	default:
		return fmt.Sprintf("RenderStatus(%d)", int(s))
	}
}

// PlaybackStatus tracks the player
type PlaybackStatus int

const (
	PlayerIdle PlaybackStatus = iota
	PlayerPlaying
	PlayerFinished
	PlayerFailed
	PlayerCancelled
)

func (s PlaybackStatus) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerPlaying:
		return "Playing"
	case PlayerFinished:
		return "Finished"
	case PlayerFailed:
		return "Failed"
	case PlayerCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("PlaybackStatus(%d)", int(s))
	}
}

// State is the whole navigation state. Exactly one screen is active.
type State struct {
	Screen        Screen
	Algorithm     algorithm.Algorithm
	Array         arrayinput.Array
	InputError    error // last rejected submission
	Render        RenderStatus
	ExitCode      int // render exit code once it crashed
	Playback      PlaybackStatus
	PlaybackError error
}

// Event drives a transition
type Event interface {
	event()
}

// StartClicked leaves the landing page
type StartClicked struct{}

// AlgorithmConfirmed carries the chosen algorithm
type AlgorithmConfirmed struct{ Algorithm algorithm.Algorithm }

// ArrayRejected keeps the user on the input page with an error
type ArrayRejected struct{ Err error }

// ArrayAccepted carries the parsed array; the render starts
type ArrayAccepted struct{ Array arrayinput.Array }

// RenderSucceeded moves on to playback
type RenderSucceeded struct{}

// RenderFailed stalls the pipeline on the progress page
type RenderFailed struct{ ExitCode int }

// PlaybackStarted marks the player as running
type PlaybackStarted struct{}

// PlaybackFinished reports the player's exit; Err is nil on success
type PlaybackFinished struct{ Err error }

// PlaybackCancelled reports a player stopped by the user
type PlaybackCancelled struct{}

func (StartClicked) event() {}
func (AlgorithmConfirmed) event() {}
func (ArrayRejected) event() {}
func (ArrayAccepted) event() {}
func (RenderSucceeded) event() {}
func (RenderFailed) event() {}
func (PlaybackStarted) event() {}
func (PlaybackFinished) event() {}
func (PlaybackCancelled) event() {}

// Initial returns the state at application start
func Initial() State {
	return State{Screen: Landing}
}

// Transition applies ev to s. Unsupported pairs return ErrInvalidTransition
// together with the unchanged state.
func Transition(s State, ev Event) (State, error) {
	next := s
	switch s.Screen {
	case Landing:
		if _, ok := ev.(StartClicked); ok {
			next.Screen = AlgorithmChoice
			return next, nil
		}
	case AlgorithmChoice:
		if e, ok := ev.(AlgorithmConfirmed); ok {
			if !e.Algorithm.Valid() {
				return s, fmt.Errorf("%w: %w", ErrInvalidTransition, algorithm.ErrUnknownAlgorithm)
			}
			next.Screen = ArrayInput
			next.Algorithm = e.Algorithm
			return next, nil
		}
	case ArrayInput:
		switch e := ev.(type) {
		case ArrayRejected:
			next.InputError = e.Err
			return next, nil
		case ArrayAccepted:
			next.Screen = RenderProgress
			next.Array = e.Array.Clone()
			next.InputError = nil
			next.Render = RenderRunning
			return next, nil
		}
	case RenderProgress:
		if s.Render != RenderRunning {
			break
		}
		switch e := ev.(type) {
		case RenderSucceeded:
			next.Screen = Playback
			next.Render = RenderDone
			next.Playback = PlayerIdle
			return next, nil
		case RenderFailed:
			next.Render = RenderCrashed
			next.ExitCode = e.ExitCode
			return next, nil
		}
	case Playback:
		switch e := ev.(type) {
		case PlaybackStarted:
			if s.Playback == PlayerPlaying {
				break
			}
			next.Playback = PlayerPlaying
			next.PlaybackError = nil
			return next, nil
		case PlaybackFinished:
			if s.Playback != PlayerPlaying {
				break
			}
			next.Playback = PlayerFinished
			if e.Err != nil {
				next.Playback = PlayerFailed
				next.PlaybackError = e.Err
			}
			return next, nil
		case PlaybackCancelled:
			if s.Playback != PlayerPlaying {
				break
			}
			next.Playback = PlayerCancelled
			return next, nil
		}
	}
	return s, fmt.Errorf("%w: %T on %s", ErrInvalidTransition, ev, s.Screen)
}
