// Package gesturetest synthesizes deterministic pointer event sequences
// for exercising the interaction layer in tests.
//
// A Driver owns one pointer identity, a position, and a synthetic clock.
// Events carry explicit timestamps from that clock, so time-window
// classification is reproducible without sleeping:
//
//	d := gesturetest.NewDriver(tracker.HandlePointer)
//	d.Down(10, 10)
//	d.Advance(200 * time.Millisecond)
//	d.MoveTo(11, 10)
//	d.Up()
package gesturetest

import (
	"sync/atomic"
	"time"

	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/pointer"
)

// nextPointerID is incremented for each new driver to avoid collisions.
var nextPointerID int64

// stepDelay separates the events of composite helpers like Click.
const stepDelay = 5 * time.Millisecond

// Driver feeds synthesized pointer events into a sink, typically
// (*gestures.Tracker).HandlePointer or (*scene.Canvas).Route.
type Driver struct {
	send    func(pointer.Event)
	id      pointer.ID
	pos     graphics.Offset
	now     time.Time
	buttons pointer.Buttons
}

// NewDriver returns a driver with a fresh pointer identity and a clock
// starting at an arbitrary fixed epoch.
func NewDriver(send func(pointer.Event)) *Driver {
	return &Driver{
		send: send,
		id:   pointer.ID(atomic.AddInt64(&nextPointerID, 1)),
		now:  time.Unix(1000, 0),
	}
}

// PointerID returns the pointer identity this driver emits events for.
func (d *Driver) PointerID() pointer.ID {
	return d.id
}

// Now returns the driver's current synthetic time.
func (d *Driver) Now() time.Time {
	return d.now
}

// Advance moves the synthetic clock forward.
func (d *Driver) Advance(dt time.Duration) {
	d.now = d.now.Add(dt)
}

// Down presses the primary button at (x, y).
func (d *Driver) Down(x, y float64) {
	d.DownWith(pointer.ButtonPrimary, x, y)
}

// DownWith presses the given button at (x, y).
func (d *Driver) DownWith(button pointer.Buttons, x, y float64) {
	d.pos = graphics.Offset{X: x, Y: y}
	d.buttons |= button
	d.send(pointer.Event{
		ID:       d.id,
		Phase:    pointer.PhaseDown,
		Button:   button,
		Buttons:  d.buttons,
		Position: d.pos,
		Time:     d.now,
	})
}

// MoveTo moves the pointer to (x, y) with the held buttons unchanged.
func (d *Driver) MoveTo(x, y float64) {
	d.pos = graphics.Offset{X: x, Y: y}
	d.send(pointer.Event{
		ID:       d.id,
		Phase:    pointer.PhaseMove,
		Buttons:  d.buttons,
		Position: d.pos,
		Time:     d.now,
	})
}

// Up releases the primary button at the current position.
func (d *Driver) Up() {
	d.UpWith(pointer.ButtonPrimary)
}

// UpWith releases the given button at the current position.
func (d *Driver) UpWith(button pointer.Buttons) {
	d.buttons &^= button
	d.send(pointer.Event{
		ID:       d.id,
		Phase:    pointer.PhaseUp,
		Button:   button,
		Buttons:  d.buttons,
		Position: d.pos,
		Time:     d.now,
	})
}

// Cancel abandons the pointer, releasing all held buttons.
func (d *Driver) Cancel() {
	d.buttons = 0
	d.send(pointer.Event{
		ID:       d.id,
		Phase:    pointer.PhaseCancel,
		Position: d.pos,
		Time:     d.now,
	})
}

// Click presses and releases the primary button at (x, y).
func (d *Driver) Click(x, y float64) {
	d.Down(x, y)
	d.Advance(stepDelay)
	d.Up()
}

// DoubleClick performs two rapid clicks at (x, y).
func (d *Driver) DoubleClick(x, y float64) {
	d.Click(x, y)
	d.Advance(50 * time.Millisecond)
	d.Click(x, y)
}

// DragBy presses at the current position, emits move events stepping by
// (dx, dy) in total, and releases. Intermediate moves are spread over a
// few steps so drift-based classification sees the motion build up.
func (d *Driver) DragBy(dx, dy float64) {
	start := d.pos
	d.Down(start.X, start.Y)
	const steps = 4
	for i := 1; i <= steps; i++ {
		d.Advance(stepDelay)
		frac := float64(i) / steps
		d.MoveTo(start.X+dx*frac, start.Y+dy*frac)
	}
	d.Advance(stepDelay)
	d.Up()
}

// DragFrom moves the pointer to (x, y) without emitting an event, then
// performs DragBy.
func (d *Driver) DragFrom(x, y, dx, dy float64) {
	d.pos = graphics.Offset{X: x, Y: y}
	d.DragBy(dx, dy)
}

// MoveBy emits a move event displaced by (dx, dy) from the current
// position.
func (d *Driver) MoveBy(dx, dy float64) {
	d.MoveTo(d.pos.X+dx, d.pos.Y+dy)
}
