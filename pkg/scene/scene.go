// Package scene routes raw pointer events to interaction handlers.
//
// A Canvas owns a set of rectangular regions in stacking order and
// dispatches each pointer event to the topmost region under the pointer.
// Regions implement the capture capability: while a region holds capture
// for a pointer, all of that pointer's events are routed to it regardless
// of position, which is what keeps a drag alive after the pointer leaves
// the region that started it.
package scene

import (
	"sync"

	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/pointer"
)

// Handler receives pointer events routed from hit testing.
type Handler interface {
	HandlePointer(event pointer.Event)
}

// Region is one rectangular interaction target on a canvas.
type Region struct {
	canvas  *Canvas
	frame   graphics.Rect
	handler Handler
	name    string
}

// Canvas dispatches pointer events across stacked regions.
//
// Dispatch itself is single-threaded in the spirit of a host event loop;
// the lock only guards the region list against mutation from handlers
// running inside a dispatch.
type Canvas struct {
	mu       sync.Mutex
	regions  []*Region // stacking order, last is topmost
	captures map[pointer.ID]*Region
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{captures: make(map[pointer.ID]*Region)}
}

// Add places a region on top of the stack and returns it. A nil handler
// makes the region decorative: it never hit-tests and never receives
// events.
func (c *Canvas) Add(frame graphics.Rect, handler Handler) *Region {
	r := &Region{canvas: c, frame: frame, handler: handler}
	c.mu.Lock()
	c.regions = append(c.regions, r)
	c.mu.Unlock()
	return r
}

// Remove takes a region off the canvas and releases any capture grants it
// still holds.
func (c *Canvas) Remove(r *Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, reg := range c.regions {
		if reg == r {
			c.regions = append(c.regions[:i], c.regions[i+1:]...)
			break
		}
	}
	for id, holder := range c.captures {
		if holder == r {
			delete(c.captures, id)
		}
	}
}

// Raise moves a region to the top of the stack.
func (c *Canvas) Raise(r *Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, reg := range c.regions {
		if reg == r {
			c.regions = append(c.regions[:i], c.regions[i+1:]...)
			c.regions = append(c.regions, r)
			return
		}
	}
}

// HitTest returns the topmost interactive region containing the point, or
// nil. Decorative regions are skipped, matching normal dispatch where
// decorations don't absorb events.
func (c *Canvas) HitTest(p graphics.Offset) *Region {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hitTestLocked(p)
}

func (c *Canvas) hitTestLocked(p graphics.Offset) *Region {
	for i := len(c.regions) - 1; i >= 0; i-- {
		r := c.regions[i]
		if r.handler == nil {
			continue
		}
		if r.frame.Contains(p) {
			return r
		}
	}
	return nil
}

// Route delivers one pointer event. A capture grant for the event's
// pointer wins over hit testing. Panics escaping the handler are reported
// through the errors package rather than tearing the event loop down.
// Route reports whether any handler received the event.
func (c *Canvas) Route(e pointer.Event) (handled bool) {
	defer errors.Recover("scene.Canvas.Route")

	c.mu.Lock()
	target := c.captures[e.ID]
	if target == nil {
		target = c.hitTestLocked(e.Position)
	}
	c.mu.Unlock()

	if target == nil || target.handler == nil {
		return false
	}
	handled = true
	target.handler.HandlePointer(e)
	return handled
}

// Frame returns the region's current rectangle.
func (r *Region) Frame() graphics.Rect {
	r.canvas.mu.Lock()
	defer r.canvas.mu.Unlock()
	return r.frame
}

// SetFrame moves or resizes the region.
func (r *Region) SetFrame(frame graphics.Rect) {
	r.canvas.mu.Lock()
	r.frame = frame
	r.canvas.mu.Unlock()
}

// SetHandler swaps the region's handler. Setting it after Add resolves
// the cycle between a region and a tracker that needs the region as its
// capture target.
func (r *Region) SetHandler(h Handler) {
	r.canvas.mu.Lock()
	r.handler = h
	r.canvas.mu.Unlock()
}

// SetName attaches a diagnostic name used in error reports.
func (r *Region) SetName(name string) {
	r.name = name
}

// Name returns the diagnostic name, if any.
func (r *Region) Name() string {
	return r.name
}

// SetPointerCapture grants this region the capture for a pointer,
// displacing any previous holder.
func (r *Region) SetPointerCapture(id pointer.ID) {
	c := r.canvas
	c.mu.Lock()
	c.captures[id] = r
	c.mu.Unlock()
}

// ReleasePointerCapture drops the grant if this region holds it. Releasing
// a pointer captured elsewhere, or not at all, is a no-op.
func (r *Region) ReleasePointerCapture(id pointer.ID) {
	c := r.canvas
	c.mu.Lock()
	if c.captures[id] == r {
		delete(c.captures, id)
	}
	c.mu.Unlock()
}

// HasPointerCapture reports whether this region holds the grant.
func (r *Region) HasPointerCapture(id pointer.ID) bool {
	c := r.canvas
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.captures[id] == r
}

var _ pointer.Capturer = (*Region)(nil)
