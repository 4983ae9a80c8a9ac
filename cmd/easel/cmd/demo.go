package cmd

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-easel/easel/cmd/easel/internal/config"
	"github.com/go-easel/easel/pkg/gestures"
	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/pointer"
	"github.com/go-easel/easel/pkg/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the interactive gesture demo",
		Long: `Run an interactive terminal canvas with draggable boxes.

Click a box to select it, double-click to recolor it, and drag to move
it. Thresholds come from easel.yaml in the current directory if present.
Press q or Escape to quit.`,
		Usage: "easel demo",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	app := newDemoApp(screen, resolved)
	app.run()
	return nil
}

// mouseID is the single pointer identity a terminal mouse provides.
const mouseID pointer.ID = 1

type demoBox struct {
	region   *scene.Region
	label    rune
	hue      float64
	selected bool
}

func (b *demoBox) color() tcell.Color {
	c := colorful.Hsv(b.hue, 0.65, 0.85)
	r, g, bl := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

type demoApp struct {
	screen     tcell.Screen
	canvas     *scene.Canvas
	background *scene.Region
	boxes      []*demoBox // draw order, last on top
	status     string
	held       pointer.Buttons // last reported tcell button mask
	quit       bool
}

func newDemoApp(screen tcell.Screen, resolved *config.Resolved) *demoApp {
	app := &demoApp{
		screen: screen,
		canvas: scene.NewCanvas(),
		status: "click: select   double-click: recolor   drag: move   q: quit",
	}

	w, h := screen.Size()
	app.background = app.canvas.Add(graphics.RectFromLTWH(0, 0, float64(w), float64(h)), nil)
	app.background.SetName("background")
	app.background.SetHandler(newBackgroundHandler(app))

	for i := 0; i < resolved.Boxes; i++ {
		app.addBox(i, resolved)
	}
	return app
}

func (a *demoApp) addBox(i int, resolved *config.Resolved) {
	const boxW, boxH = 14, 5
	x := float64(3 + (i%3)*(boxW+3))
	y := float64(2 + (i/3)*(boxH+2))
	box := &demoBox{
		label: rune('A' + i),
		hue:   float64(i) * 360 / float64(resolved.Boxes),
	}
	box.region = a.canvas.Add(graphics.RectFromLTWH(x, y, boxW, boxH), nil)
	box.region.SetName(string(box.label))
	box.region.SetHandler(newBoxHandler(a, box, resolved.Gestures))
	a.boxes = append(a.boxes, box)
}

// raise moves a box to the top of both the hit-test stack and the draw
// order.
func (a *demoApp) raise(box *demoBox) {
	a.canvas.Raise(box.region)
	for i, b := range a.boxes {
		if b == box {
			a.boxes = append(a.boxes[:i], a.boxes[i+1:]...)
			a.boxes = append(a.boxes, box)
			return
		}
	}
}

func (a *demoApp) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
}

func (a *demoApp) run() {
	a.redraw()
	for !a.quit {
		switch e := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
				a.quit = true
			}
		case *tcell.EventMouse:
			a.handleMouse(e)
			a.redraw()
		case *tcell.EventResize:
			a.screen.Sync()
			w, h := a.screen.Size()
			a.background.SetFrame(graphics.RectFromLTWH(0, 0, float64(w), float64(h)))
			a.redraw()
		}
	}
}

// handleMouse turns tcell's stateful button mask into discrete pointer
// transitions: one down per newly pressed button, one up per released
// button, and a move when the mask is unchanged.
func (a *demoApp) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	pos := graphics.Offset{X: float64(x), Y: float64(y)}
	held := convertButtons(e.Buttons())
	pressed := held &^ a.held
	released := a.held &^ held
	a.held = held

	base := pointer.Event{
		ID:       mouseID,
		Buttons:  held,
		Position: pos,
		Time:     e.When(),
	}

	for _, b := range []pointer.Buttons{pointer.ButtonPrimary, pointer.ButtonSecondary, pointer.ButtonTertiary} {
		if pressed.Contain(b) {
			ev := base
			ev.Phase = pointer.PhaseDown
			ev.Button = b
			a.canvas.Route(ev)
		}
		if released.Contain(b) {
			ev := base
			ev.Phase = pointer.PhaseUp
			ev.Button = b
			a.canvas.Route(ev)
		}
	}
	if pressed == 0 && released == 0 {
		ev := base
		ev.Phase = pointer.PhaseMove
		a.canvas.Route(ev)
	}
}

func convertButtons(mask tcell.ButtonMask) pointer.Buttons {
	var b pointer.Buttons
	if mask&tcell.ButtonPrimary != 0 {
		b |= pointer.ButtonPrimary
	}
	if mask&tcell.ButtonSecondary != 0 {
		b |= pointer.ButtonSecondary
	}
	if mask&tcell.ButtonMiddle != 0 {
		b |= pointer.ButtonTertiary
	}
	return b
}

// boxHandler owns the tracker for one box and arms its callbacks at the
// start of every session: which gesture the session turns out to be is
// unknown at down time, so every outcome gets a callback and the tracker
// fires the one that matches.
type boxHandler struct {
	app     *demoApp
	box     *demoBox
	tracker *gestures.Tracker
}

func newBoxHandler(app *demoApp, box *demoBox, cfg *gestures.Config) *boxHandler {
	return &boxHandler{
		app:     app,
		box:     box,
		tracker: gestures.New(box.region, cfg),
	}
}

func (h *boxHandler) HandlePointer(e pointer.Event) {
	if e.Phase == pointer.PhaseDown {
		h.tracker.Down(e)
		h.arm(e)
		return
	}
	h.tracker.HandlePointer(e)
}

func (h *boxHandler) arm(down pointer.Event) {
	app, box := h.app, h.box
	start := box.region.Frame()

	h.tracker.OnClick = func(e pointer.Event) {
		box.selected = !box.selected
		app.setStatus("click on %c", box.label)
	}
	h.tracker.OnDoubleClick = func(e pointer.Event) {
		box.hue += 40
		if box.hue >= 360 {
			box.hue -= 360
		}
		app.setStatus("double-click on %c", box.label)
	}
	h.tracker.OnDragStart = func(*gestures.Tracker) {
		app.raise(box)
		app.setStatus("dragging %c", box.label)
	}
	h.tracker.OnDrag = func(e pointer.Event) {
		delta := e.Position.Sub(down.Position)
		box.region.SetFrame(start.Translate(delta.X, delta.Y))
	}
	h.tracker.OnDragEnd = func(e pointer.Event) {
		frame := box.region.Frame()
		app.setStatus("dropped %c at %.0f,%.0f", box.label, frame.Left, frame.Top)
	}
}

// backgroundHandler clears the selection when empty canvas is clicked.
type backgroundHandler struct {
	app     *demoApp
	tracker *gestures.Tracker
}

func newBackgroundHandler(app *demoApp) *backgroundHandler {
	return &backgroundHandler{app: app}
}

func (h *backgroundHandler) HandlePointer(e pointer.Event) {
	if e.Phase == pointer.PhaseDown {
		if h.tracker == nil {
			h.tracker = gestures.New(h.app.background, nil)
		}
		h.tracker.Down(e)
		h.tracker.OnClick = func(pointer.Event) {
			for _, b := range h.app.boxes {
				b.selected = false
			}
			h.app.setStatus("selection cleared")
		}
		return
	}
	if h.tracker != nil {
		h.tracker.HandlePointer(e)
	}
}

func (a *demoApp) redraw() {
	s := a.screen
	s.Fill(' ', tcell.StyleDefault)

	for _, box := range a.boxes {
		a.drawBox(box)
	}

	w, h := s.Size()
	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, statusStyle)
	}
	drawText(s, 1, h-1, statusStyle, a.status)

	s.Show()
}

func (a *demoApp) drawBox(box *demoBox) {
	s := a.screen
	frame := box.region.Frame()
	style := tcell.StyleDefault.Background(box.color()).Foreground(tcell.ColorBlack)
	if box.selected {
		style = style.Bold(true)
	}

	left, top := int(frame.Left), int(frame.Top)
	right, bottom := int(frame.Right), int(frame.Bottom)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			ch := ' '
			if box.selected && (y == top || y == bottom-1) {
				ch = '='
			} else if box.selected && (x == left || x == right-1) {
				ch = '|'
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}
	s.SetContent((left+right)/2, (top+bottom)/2, box.label, nil, style)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
