// Package modes holds the screen stack. Only the top mode receives input,
// update and draw; the transition table lists every legal push.
package modes

import (
	"errors"
	"fmt"
	"slices"

	cfg "github.com/automoto/koopa/config"
)

var (
	ErrEmptyStack        = errors.New("mode stack is empty")
	ErrInvalidTransition = errors.New("invalid mode transition")
)

// Mode is a screen the stack can hold.
type Mode interface {
	ID() cfg.ModeID
}

// Resumer is implemented by modes that refresh when uncovered by a pop.
type Resumer interface {
	Resume()
}

// Transitions maps a mode to the modes that may be pushed on top of it.
// ModeNone is the empty stack.
var Transitions = map[cfg.ModeID][]cfg.ModeID{
	cfg.ModeNone:            {cfg.ModeTitle},
	cfg.ModeTitle:           {cfg.ModeFileSelect, cfg.ModeOverworldEditor},
	cfg.ModeFileSelect:      {cfg.ModeOverworld},
	cfg.ModeOverworld:       {cfg.ModeLevel},
	cfg.ModeLevel:           {cfg.ModeGameOver, cfg.ModeWin},
	cfg.ModeOverworldEditor: {cfg.ModeLevelEditor},
}

// Allowed reports whether next may sit directly above below.
func Allowed(below, next cfg.ModeID) bool {
	return slices.Contains(Transitions[below], next)
}

// Stack is a LIFO of modes.
type Stack[M Mode] struct {
	modes []M
}

func (s *Stack[M]) Len() int { return len(s.modes) }

// Top returns the active mode.
func (s *Stack[M]) Top() (M, bool) {
	var zero M
	if len(s.modes) == 0 {
		return zero, false
	}
	return s.modes[len(s.modes)-1], true
}

// IDs lists the stack bottom first.
func (s *Stack[M]) IDs() []cfg.ModeID {
	ids := make([]cfg.ModeID, len(s.modes))
	for i, m := range s.modes {
		ids[i] = m.ID()
	}
	return ids
}

func (s *Stack[M]) topID() cfg.ModeID {
	if len(s.modes) == 0 {
		return cfg.ModeNone
	}
	return s.modes[len(s.modes)-1].ID()
}

// Push makes m the active mode.
func (s *Stack[M]) Push(m M) error {
	if below := s.topID(); !Allowed(below, m.ID()) {
		return fmt.Errorf("%w: push %v over %v", ErrInvalidTransition, m.ID(), below)
	}
	s.modes = append(s.modes, m)
	return nil
}

// Pop removes the active mode and resumes the one beneath it.
func (s *Stack[M]) Pop() (M, error) {
	var zero M
	if len(s.modes) == 0 {
		return zero, ErrEmptyStack
	}
	top := s.modes[len(s.modes)-1]
	s.modes[len(s.modes)-1] = zero
	s.modes = s.modes[:len(s.modes)-1]
	s.resume()
	return top, nil
}

// Replace swaps the active mode for m.
func (s *Stack[M]) Replace(m M) error {
	if len(s.modes) == 0 {
		return ErrEmptyStack
	}
	below := cfg.ModeNone
	if len(s.modes) > 1 {
		below = s.modes[len(s.modes)-2].ID()
	}
	if !Allowed(below, m.ID()) {
		return fmt.Errorf("%w: replace with %v over %v", ErrInvalidTransition, m.ID(), below)
	}
	s.modes[len(s.modes)-1] = m
	return nil
}

// PopTo pops until a mode with id is on top. The stack is unchanged when no
// such mode is present.
func (s *Stack[M]) PopTo(id cfg.ModeID) error {
	i := len(s.modes) - 1
	for i >= 0 && s.modes[i].ID() != id {
		i--
	}
	if i < 0 {
		return fmt.Errorf("%w: %v is not on the stack", ErrInvalidTransition, id)
	}
	if i == len(s.modes)-1 {
		return nil
	}
	var zero M
	for j := i + 1; j < len(s.modes); j++ {
		s.modes[j] = zero
	}
	s.modes = s.modes[:i+1]
	s.resume()
	return nil
}

func (s *Stack[M]) resume() {
	top, ok := s.Top()
	if !ok {
		return
	}
	if r, ok := any(top).(Resumer); ok {
		r.Resume()
	}
}
