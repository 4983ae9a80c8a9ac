// Package gestures converts raw pointer events into interaction
// semantics for canvas and graph editors.
//
// The Tracker is the single place with temporal and spatial logic: it
// buffers one in-progress pointer session and classifies it as a click,
// double click, or drag once enough information is available. The host
// decides what a click or drag means; the tracker only tells it which
// one happened.
//
// # Usage
//
// Bind a tracker to a capture target, forward events, and assign the
// callbacks for the interaction right after the press that opens it:
//
//	tracker := gestures.New(region, nil)
//
//	// on pointer down over a node:
//	tracker.Down(ev)
//	tracker.OnClick = func(e pointer.Event) { editor.Select(node) }
//	tracker.OnDragStart = func(t *gestures.Tracker) { editor.BeginMove(node) }
//	tracker.OnDrag = func(e pointer.Event) { editor.MoveTo(node, e.Position) }
//	tracker.OnDragEnd = func(e pointer.Event) { editor.EndMove(node) }
//	tracker.SetFinally(func() { editor.ClearHover() })
//
// Callbacks must be assigned after Down: opening a session closes any
// previous one through the Reset path, which clears every callback slot.
//
// # Classification
//
// A session stays a click candidate while the pointer remains within
// Config.MaxClickDrift pixels of the press and closes before
// Config.BufferTime elapses. Crossing either limit during a move turns
// the session into a drag. A release far from the press with no
// intervening move ("teleport") closes as an immediate drag. Two plain
// clicks pair as a double click when the second press lands within
// Config.DoubleClickWindow and a widened spatial tolerance.
package gestures
