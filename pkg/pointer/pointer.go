// Package pointer defines the unified pointer event shape consumed by the
// interaction layer, along with the capture capability that binds an
// in-progress gesture to one target.
package pointer

import (
	"strings"
	"time"

	"github.com/go-easel/easel/pkg/graphics"
)

// ID identifies one pointer (a mouse, or one touch contact) across the
// events it produces.
type ID int64

// Phase describes where an event sits in a pointer's down/move/up cycle.
type Phase uint8

const (
	// PhaseDown is reported when a button is pressed.
	PhaseDown Phase = iota
	// PhaseMove is reported when the pointer moves.
	PhaseMove
	// PhaseUp is reported when a button is released.
	PhaseUp
	// PhaseCancel is reported when the host abandons the pointer, for
	// example because the window lost focus mid-gesture.
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Buttons is a set of pointer buttons.
type Buttons uint8

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Contain reports whether all buttons in set are held in b.
func (b Buttons) Contain(set Buttons) bool {
	return b&set == set
}

func (b Buttons) String() string {
	var names []string
	if b.Contain(ButtonPrimary) {
		names = append(names, "primary")
	}
	if b.Contain(ButtonSecondary) {
		names = append(names, "secondary")
	}
	if b.Contain(ButtonTertiary) {
		names = append(names, "tertiary")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Event is one low-level pointer event as delivered by the host.
//
// Button carries the single button whose state changed in this event
// (meaningful for PhaseDown and PhaseUp); Buttons carries the full set of
// buttons held after the event, so a move event reports which buttons are
// still down.
type Event struct {
	ID       ID
	Phase    Phase
	Button   Buttons
	Buttons  Buttons
	Position graphics.Offset
	Time     time.Time
}

// Capturer is the capture capability of an interaction target. While a
// pointer is captured, the host routes all of its events to the capturing
// target regardless of position.
//
// Implementations must make ReleasePointerCapture a no-op for pointers
// that are not currently captured, so release is safe on every
// session-teardown path.
type Capturer interface {
	SetPointerCapture(id ID)
	ReleasePointerCapture(id ID)
	HasPointerCapture(id ID) bool
}
