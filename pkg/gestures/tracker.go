package gestures

import (
	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/pointer"
)

// Tracker reduces a raw stream of pointer events into interaction
// semantics: click, double click, drag start, drag move and drag end.
//
// A tracker is bound to one capture target for its lifetime and follows at
// most one pointer session at a time. A session opens on Down, is advanced
// by Move, and closes on Up, on a button release observed inside a move,
// or on Reset. The host forwards events in arrival order; callbacks fire
// synchronously from inside the entry points.
//
// Callbacks are assigned per session, typically right after the Down call
// that opens it, because Reset clears all of them. OnDrag may fire many
// times in one session; every other callback fires at most once and is
// cleared as it fires.
type Tracker struct {
	// OnDragStart fires when the session is classified as a drag. The
	// slot is cleared as it fires, so it runs at most once per
	// registration even across sessions.
	OnDragStart func(*Tracker)
	// OnDrag fires for every qualifying move while the session is open,
	// whether or not the drag classification has happened yet.
	OnDrag func(pointer.Event)
	// OnDragEnd fires when a session that entered the drag state closes.
	OnDragEnd func(pointer.Event)
	// OnClick fires when a session closes as a plain click.
	OnClick func(pointer.Event)
	// OnDoubleClick fires instead of OnClick when the closing click pairs
	// with the previous one.
	OnDoubleClick func(pointer.Event)

	// ClearEventsOnReset governs whether the recorded down/move/up events
	// are dropped on Reset. Defaults to true via New; switch it off to
	// inspect the last session's events after it closes.
	ClearEventsOnReset bool

	target pointer.Capturer
	config *Config

	pid    pointer.ID      // pointer owning the open session
	button pointer.Buttons // button that opened the session

	down *pointer.Event
	move *pointer.Event
	up   *pointer.Event

	// lastClickDown is the down event of the most recent completed plain
	// click. It survives Reset so the next click can pair with it, and is
	// consumed by a successful pairing.
	lastClickDown *pointer.Event

	dragStarted bool
	isDown      bool
	isDouble    bool

	finally func()
}

// New returns a tracker bound to the given capture target. A nil config
// selects the shared DefaultConfig.
func New(target pointer.Capturer, config *Config) *Tracker {
	if config == nil {
		config = defaultConfig
	}
	return &Tracker{
		ClearEventsOnReset: true,
		target:             target,
		config:             config,
	}
}

// Config returns the configuration the tracker classifies against.
func (t *Tracker) Config() *Config {
	return t.config
}

// IsDown reports whether a session is open.
func (t *Tracker) IsDown() bool {
	return t.isDown
}

// IsDouble reports whether the current session emitted a double click.
func (t *Tracker) IsDouble() bool {
	return t.isDouble
}

// Dragging reports whether the current session has been classified as a
// drag. It never reverts to false within a session.
func (t *Tracker) Dragging() bool {
	return t.dragStarted
}

// DownEvent returns the down event of the current session, or nil.
func (t *Tracker) DownEvent() *pointer.Event {
	return t.down
}

// MoveEvent returns the last move event of the current session, or nil.
func (t *Tracker) MoveEvent() *pointer.Event {
	return t.move
}

// UpEvent returns the closing event of the current session, or nil.
func (t *Tracker) UpEvent() *pointer.Event {
	return t.up
}

// SetFinally replaces the cleanup slot. The previously held callback, if
// any, is invoked during the call, so a registered cleanup always runs
// before being displaced. Reset runs the slot by assigning nil.
//
// The new value is stored before the old one runs; a callback that
// reenters the tracker therefore cannot run itself a second time.
func (t *Tracker) SetFinally(f func()) {
	prev := t.finally
	t.finally = f
	if prev != nil {
		prev()
	}
}

// Finally returns the currently registered cleanup callback, or nil.
func (t *Tracker) Finally() func() {
	return t.finally
}

// Down opens a new session from a press event. Any session already in
// progress is closed first through the Reset path, so a redundant down
// simply restarts tracking. Capture is acquired on the bound target for
// the event's pointer.
func (t *Tracker) Down(e pointer.Event) {
	t.Reset()
	ev := e
	t.down = &ev
	t.move = nil
	t.up = nil
	t.pid = e.ID
	t.button = e.Button
	if t.button == 0 {
		// A press with no changed button recorded; assume primary.
		t.button = pointer.ButtonPrimary
	}
	t.isDown = true
	if t.target != nil {
		t.target.SetPointerCapture(e.ID)
	}
}

// Move advances the open session. It is a no-op when no session is open.
//
// A move reporting no held buttons means the release happened where the
// host could not observe it; the session is torn down without a click or
// drag callback. A move whose button set no longer includes the session's
// button is the functional equivalent of an up event and completes the
// session. Otherwise the event is recorded, OnDrag fires, and the drag
// classification is evaluated if it has not happened yet.
func (t *Tracker) Move(e pointer.Event) {
	if !t.isDown {
		return
	}
	if e.Buttons == 0 {
		// Missed the up event entirely.
		t.Reset()
		return
	}
	if !e.Buttons.Contain(t.button) {
		t.complete(e)
		t.Reset()
		return
	}

	ev := e
	t.move = &ev
	if t.OnDrag != nil {
		t.OnDrag(e)
	}
	if t.dragStarted {
		return
	}
	held := e.Time.Sub(t.down.Time)
	drift := graphics.SquaredDistance(t.down.Position.X, t.down.Position.Y, e.Position.X, e.Position.Y)
	if held >= t.config.BufferTime || drift > t.config.MaxClickDriftSquared() {
		t.startDrag()
	}
}

// Up closes the open session with a release event and reports whether it
// closed as a plain click. Releases of buttons that did not open the
// session are ignored and leave the session intact; Up then returns
// false. A release with no changed button recorded is treated as a
// primary release, matching the coercion Down applies. It also returns false when no session is open or when the
// session had entered the drag state.
func (t *Tracker) Up(e pointer.Event) bool {
	if !t.isDown || t.down == nil {
		return false
	}
	button := e.Button
	if button == 0 {
		// Mirror the coercion in Down so a host that never fills Button
		// can still close its sessions.
		button = pointer.ButtonPrimary
	}
	if button != t.button {
		return false
	}
	t.complete(e)
	wasDrag := t.dragStarted
	t.Reset()
	return !wasDrag
}

// Reset tears the session down: it runs the finally slot, clears every
// per-session callback and flag, optionally drops the recorded events,
// and releases capture if it is still held. Safe to call at any time;
// calling it twice runs the finally slot and releases capture only once.
func (t *Tracker) Reset() {
	t.SetFinally(nil)
	t.OnDragStart = nil
	t.OnDrag = nil
	t.OnDragEnd = nil
	t.OnClick = nil
	t.OnDoubleClick = nil
	t.isDown = false
	t.isDouble = false
	t.dragStarted = false
	if t.ClearEventsOnReset {
		t.down = nil
		t.move = nil
		t.up = nil
	}
	if t.target != nil && t.target.HasPointerCapture(t.pid) {
		t.target.ReleasePointerCapture(t.pid)
	}
}

// HandlePointer dispatches a phase-tagged event to the matching entry
// point, letting a tracker sit directly behind host event routing. Cancel
// tears the session down with no classification.
func (t *Tracker) HandlePointer(e pointer.Event) {
	switch e.Phase {
	case pointer.PhaseDown:
		t.Down(e)
	case pointer.PhaseMove:
		t.Move(e)
	case pointer.PhaseUp:
		t.Up(e)
	case pointer.PhaseCancel:
		t.Reset()
	}
}

// complete classifies the session against its closing event. Shared by Up
// and the button-released-during-move path; the caller resets afterwards.
func (t *Tracker) complete(e pointer.Event) {
	ev := e
	t.up = &ev

	if t.dragStarted {
		t.fireDragEnd(e)
		return
	}

	drift := graphics.SquaredDistance(t.down.Position.X, t.down.Position.Y, e.Position.X, e.Position.Y)
	if drift > t.config.MaxClickDriftSquared() {
		// The pointer ended up far from the press with no move having
		// reported it, e.g. the device was repositioned outside the
		// capture surface. Classify as a drag that starts and ends here.
		t.startDrag()
		t.fireDragEnd(e)
		return
	}

	if t.OnDoubleClick != nil && t.pairsWithLastClick() {
		t.isDouble = true
		cb := t.OnDoubleClick
		t.OnDoubleClick = nil
		cb(e)
		// Consume the pairing so a third rapid click starts fresh.
		t.lastClickDown = nil
		return
	}

	if t.OnClick != nil {
		cb := t.OnClick
		t.OnClick = nil
		cb(e)
	}
	down := *t.down
	t.lastClickDown = &down
}

// startDrag performs the drag classification once per session. The
// OnDragStart slot is cleared before it runs so it can never fire again,
// in this session or any later one sharing the tracker.
func (t *Tracker) startDrag() {
	if t.dragStarted {
		return
	}
	t.dragStarted = true
	if t.OnDragStart != nil {
		cb := t.OnDragStart
		t.OnDragStart = nil
		cb(t)
	}
}

func (t *Tracker) fireDragEnd(e pointer.Event) {
	if t.OnDragEnd == nil {
		return
	}
	cb := t.OnDragEnd
	t.OnDragEnd = nil
	cb(e)
}

// pairsWithLastClick reports whether the current press pairs with the
// previous completed click as a double click. The time delta must be
// strictly positive, so a click can never pair with itself or with a
// click carrying a clock anomaly, and strictly inside the window. Two
// separate presses carry more positional noise than a press/release
// pair, so the spatial tolerance is three times the linear drift
// threshold rather than its square.
func (t *Tracker) pairsWithLastClick() bool {
	if t.down == nil || t.lastClickDown == nil {
		return false
	}
	dt := t.down.Time.Sub(t.lastClickDown.Time)
	if dt <= 0 || dt >= t.config.DoubleClickWindow {
		return false
	}
	drift := graphics.SquaredDistance(
		t.lastClickDown.Position.X, t.lastClickDown.Position.Y,
		t.down.Position.X, t.down.Position.Y,
	)
	return drift <= 3*t.config.MaxClickDrift()
}
