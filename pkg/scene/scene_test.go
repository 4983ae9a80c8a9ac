package scene_test

import (
	"testing"
	"time"

	easelerrors "github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/gestures"
	"github.com/go-easel/easel/pkg/gesturetest"
	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/pointer"
	"github.com/go-easel/easel/pkg/scene"
)

// recordingHandler logs every event it receives.
type recordingHandler struct {
	events []pointer.Event
}

func (h *recordingHandler) HandlePointer(e pointer.Event) {
	h.events = append(h.events, e)
}

func ev(id pointer.ID, phase pointer.Phase, x, y float64) pointer.Event {
	return pointer.Event{
		ID:       id,
		Phase:    phase,
		Button:   pointer.ButtonPrimary,
		Buttons:  pointer.ButtonPrimary,
		Position: graphics.Offset{X: x, Y: y},
		Time:     time.Unix(0, 0),
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	c := scene.NewCanvas()
	bottom := &recordingHandler{}
	top := &recordingHandler{}
	c.Add(graphics.RectFromLTWH(0, 0, 100, 100), bottom)
	c.Add(graphics.RectFromLTWH(40, 40, 100, 100), top)

	if !c.Route(ev(1, pointer.PhaseDown, 50, 50)) {
		t.Fatal("event in the overlap should be handled")
	}
	if len(top.events) != 1 || len(bottom.events) != 0 {
		t.Errorf("overlap went to bottom: top=%d bottom=%d", len(top.events), len(bottom.events))
	}

	c.Route(ev(1, pointer.PhaseDown, 10, 10))
	if len(bottom.events) != 1 {
		t.Error("event outside the top region should reach the bottom one")
	}
}

func TestRouteUnhandled(t *testing.T) {
	c := scene.NewCanvas()
	c.Add(graphics.RectFromLTWH(0, 0, 10, 10), &recordingHandler{})
	if c.Route(ev(1, pointer.PhaseDown, 50, 50)) {
		t.Error("event outside every region should be unhandled")
	}
}

func TestDecorativeRegionSkipped(t *testing.T) {
	c := scene.NewCanvas()
	interactive := &recordingHandler{}
	c.Add(graphics.RectFromLTWH(0, 0, 100, 100), interactive)
	c.Add(graphics.RectFromLTWH(0, 0, 100, 100), nil) // decorative overlay

	c.Route(ev(1, pointer.PhaseDown, 50, 50))
	if len(interactive.events) != 1 {
		t.Error("decorative region absorbed the event")
	}
}

func TestCaptureOverridesHitTest(t *testing.T) {
	c := scene.NewCanvas()
	a := &recordingHandler{}
	b := &recordingHandler{}
	ra := c.Add(graphics.RectFromLTWH(0, 0, 50, 50), a)
	c.Add(graphics.RectFromLTWH(50, 0, 50, 50), b)

	ra.SetPointerCapture(1)
	// Pointer is over b's region, but a holds the capture.
	c.Route(ev(1, pointer.PhaseMove, 75, 25))
	if len(a.events) != 1 || len(b.events) != 0 {
		t.Fatalf("capture ignored: a=%d b=%d", len(a.events), len(b.events))
	}

	// A different pointer is not affected by the grant.
	c.Route(ev(2, pointer.PhaseMove, 75, 25))
	if len(b.events) != 1 {
		t.Error("uncaptured pointer should follow hit testing")
	}

	ra.ReleasePointerCapture(1)
	c.Route(ev(1, pointer.PhaseMove, 75, 25))
	if len(b.events) != 2 {
		t.Error("released pointer should follow hit testing again")
	}
}

func TestReleaseNotHeldIsNoop(t *testing.T) {
	c := scene.NewCanvas()
	ra := c.Add(graphics.RectFromLTWH(0, 0, 50, 50), &recordingHandler{})
	rb := c.Add(graphics.RectFromLTWH(50, 0, 50, 50), &recordingHandler{})

	ra.SetPointerCapture(1)
	rb.ReleasePointerCapture(1) // not the holder
	if !ra.HasPointerCapture(1) {
		t.Error("release by a non-holder must not drop the grant")
	}
	ra.ReleasePointerCapture(1)
	ra.ReleasePointerCapture(1) // second release is a no-op
	if ra.HasPointerCapture(1) {
		t.Error("grant should be gone")
	}
}

func TestRemoveReleasesCapture(t *testing.T) {
	c := scene.NewCanvas()
	under := &recordingHandler{}
	c.Add(graphics.RectFromLTWH(0, 0, 100, 100), under)
	top := c.Add(graphics.RectFromLTWH(0, 0, 100, 100), &recordingHandler{})

	top.SetPointerCapture(1)
	c.Remove(top)
	c.Route(ev(1, pointer.PhaseMove, 10, 10))
	if len(under.events) != 1 {
		t.Error("capture of a removed region should not swallow events")
	}
}

func TestRaise(t *testing.T) {
	c := scene.NewCanvas()
	a := &recordingHandler{}
	b := &recordingHandler{}
	ra := c.Add(graphics.RectFromLTWH(0, 0, 100, 100), a)
	c.Add(graphics.RectFromLTWH(0, 0, 100, 100), b)

	c.Raise(ra)
	c.Route(ev(1, pointer.PhaseDown, 10, 10))
	if len(a.events) != 1 {
		t.Error("raised region should be topmost")
	}
}

// panicHandler panics on the first event, then behaves.
type panicHandler struct {
	calls int
}

func (h *panicHandler) HandlePointer(pointer.Event) {
	h.calls++
	if h.calls == 1 {
		panic("handler exploded")
	}
}

type collectingHandler struct {
	panics []*easelerrors.PanicError
}

func (c *collectingHandler) HandleError(*easelerrors.EaselError) {}
func (c *collectingHandler) HandlePanic(err *easelerrors.PanicError) {
	c.panics = append(c.panics, err)
}

func TestRoutePanicRecovered(t *testing.T) {
	reports := &collectingHandler{}
	easelerrors.SetHandler(reports)
	defer easelerrors.SetHandler(nil)

	c := scene.NewCanvas()
	h := &panicHandler{}
	c.Add(graphics.RectFromLTWH(0, 0, 100, 100), h)

	if !c.Route(ev(1, pointer.PhaseDown, 10, 10)) {
		t.Error("panicking dispatch should still count as handled")
	}
	if len(reports.panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(reports.panics))
	}
	if reports.panics[0].Op != "scene.Canvas.Route" {
		t.Errorf("panic Op = %q", reports.panics[0].Op)
	}

	// The canvas survives and keeps routing.
	c.Route(ev(1, pointer.PhaseMove, 10, 10))
	if h.calls != 2 {
		t.Errorf("handler calls = %d, want 2", h.calls)
	}
}

// TestTrackerOnCanvas drives a full drag through canvas routing: the
// tracker captures its region's pointer on down, so moves that leave the
// region keep reaching it until release.
func TestTrackerOnCanvas(t *testing.T) {
	c := scene.NewCanvas()
	region := c.Add(graphics.RectFromLTWH(0, 0, 20, 20), nil)
	tracker := gestures.New(region, nil)
	// The region both routes to the tracker and serves as its capture
	// target.
	region.SetHandler(tracker)

	var dragEnd *pointer.Event
	d := gesturetest.NewDriver(func(e pointer.Event) {
		if e.Phase == pointer.PhaseDown {
			c.Route(e)
			tracker.OnDragEnd = func(e pointer.Event) { dragEnd = &e }
			return
		}
		c.Route(e)
	})

	d.Down(10, 10)
	// Far outside the region: only capture keeps these flowing.
	for i := 0; i < 3; i++ {
		d.Advance(10 * time.Millisecond)
		d.MoveBy(40, 0)
	}
	d.Up()

	if dragEnd == nil {
		t.Fatal("drag should survive leaving the region via capture")
	}
	if dragEnd.Position.X != 130 {
		t.Errorf("drag ended at %v, want x=130", dragEnd.Position)
	}
	if region.HasPointerCapture(d.PointerID()) {
		t.Error("capture must be released when the session closes")
	}
}
