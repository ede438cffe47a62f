// Package dragdrop models a list's drag interaction as a pair of injected
// callbacks: a source that produces a payload when a gesture starts and a
// target that validates and applies a payload when it ends.
package dragdrop

import (
	"errors"

	"github.com/jask/placelist/internal/place"
)

// ErrNotDragging is returned when a gesture step arrives while idle.
var ErrNotDragging = errors.New("dragdrop: no gesture in progress")

// ErrAlreadyDragging is returned by Begin while another gesture is live.
var ErrAlreadyDragging = errors.New("dragdrop: gesture already in progress")

// ErrNoHandler is returned when the callback a step needs is not set.
var ErrNoHandler = errors.New("dragdrop: no handler configured")

// Source produces the payload for the row at index.
type Source func(index int) (place.Item, error)

// Reorder applies a drop that started in the same list.
type Reorder func(from, to int) error

// Target validates and applies an item dropped at index.
type Target func(item place.Item, index int) error

// State of a session.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session tracks a single in-progress gesture over one list.
type Session struct {
	Source  Source
	Reorder Reorder
	Target  Target

	state  State
	origin int
	over   int
	item   place.Item
}

// State reports whether a gesture is live.
func (s *Session) State() State { return s.state }

// Origin is the index the live gesture started from.
func (s *Session) Origin() int { return s.origin }

// Over is the index the live gesture currently hovers.
func (s *Session) Over() int { return s.over }

// Item is the payload produced when the live gesture started.
func (s *Session) Item() place.Item { return s.item }

// Begin starts a gesture at index. The source is asked for the payload
// up front; if it fails no gesture starts.
func (s *Session) Begin(index int) error {
	if s.state == Dragging {
		return ErrAlreadyDragging
	}
	if s.Source == nil {
		return ErrNoHandler
	}
	item, err := s.Source(index)
	if err != nil {
		return err
	}
	s.state, s.origin, s.over, s.item = Dragging, index, index, item
	return nil
}

// Hover moves the pending drop position. Nothing is applied until End.
func (s *Session) Hover(index int) error {
	if s.state != Dragging {
		return ErrNotDragging
	}
	s.over = index
	return nil
}

// End drops the gesture at the hovered index and reports the final
// position. The session is idle afterwards even if the drop failed.
func (s *Session) End() (int, error) {
	if s.state != Dragging {
		return 0, ErrNotDragging
	}
	from, to := s.origin, s.over
	s.reset()
	if s.Reorder == nil {
		return from, ErrNoHandler
	}
	if err := s.Reorder(from, to); err != nil {
		return from, err
	}
	return to, nil
}

// Cancel abandons the gesture without mutating anything.
func (s *Session) Cancel() {
	s.reset()
}

// Drop handles an item that originated outside this list. A session
// without a Target accepts nothing.
func (s *Session) Drop(item place.Item, index int) error {
	if s.Target == nil {
		return place.ErrUnsupportedPayloadKind
	}
	return s.Target(item, index)
}

func (s *Session) reset() {
	s.state, s.origin, s.over, s.item = Idle, 0, 0, place.Item{}
}
