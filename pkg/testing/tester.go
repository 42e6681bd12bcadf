package testing

import (
	"time"

	"github.com/go-drift/ripple/pkg/engine"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/target/textbuf"
	"github.com/go-drift/ripple/pkg/view"
)

// Ink is the rune the tester draws shapes with.
const Ink = '#'

// ViewTester drives a view through the host loop on a character display
// with a fake clock. Shapes are drawn with Ink.
type ViewTester struct {
	t      TestingT
	clock  *FakeClock
	buf    *textbuf.Buffer
	canvas *render.Canvas
	loop   *engine.Loop[view.View]
}

// NewViewTester starts a loop showing root on a width by height display.
// Structural updates snap unless opts sets an animation.
func NewViewTester(t TestingT, width, height uint32, root view.View, opts ...engine.Options) *ViewTester {
	t.Helper()
	var o engine.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	vt := &ViewTester{t: t, clock: UseFakeClock(t)}
	vt.canvas, vt.buf = textbuf.NewCanvas(width, height)
	vt.buf.Ink = Ink
	identity := func(v *view.View, _ engine.FrameStats) view.View { return *v }
	vt.loop = engine.New(root, identity, engine.Offscreen(vt.canvas), o)
	vt.loop.Start()
	return vt
}

// Clock returns the fake clock driving the loop.
func (vt *ViewTester) Clock() *FakeClock { return vt.clock }

// Loop returns the underlying host loop.
func (vt *ViewTester) Loop() *engine.Loop[view.View] { return vt.loop }

// Buffer returns the character display.
func (vt *ViewTester) Buffer() *textbuf.Buffer { return vt.buf }

// Set replaces the view as a structural update.
func (vt *ViewTester) Set(v view.View) {
	vt.loop.Data = v
	vt.loop.Invalidate()
}

// Advance moves the fake clock forward.
func (vt *ViewTester) Advance(d time.Duration) { vt.clock.Advance(d) }

// Pump draws a frame and returns the display contents.
func (vt *ViewTester) Pump() string {
	vt.loop.Frame()
	return vt.buf.String()
}

// PumpAndSettle pumps frames step apart until nothing animates, giving up
// after timeout of fake time. It returns the final display contents.
func (vt *ViewTester) PumpAndSettle(step, timeout time.Duration) string {
	vt.t.Helper()
	got := vt.Pump()
	for elapsed := time.Duration(0); vt.loop.Animating(); elapsed += step {
		if elapsed >= timeout {
			vt.t.Fatalf("view still animating after %v", timeout)
			return got
		}
		vt.Advance(step)
		got = vt.Pump()
	}
	return got
}

// CaptureSnapshot draws the current frame into the display and a recorder.
func (vt *ViewTester) CaptureSnapshot() *Snapshot {
	vt.Pump()
	rec := NewRecorder(vt.buf.Size())
	vt.loop.DrawTo(rec)
	return &Snapshot{Lines: vt.buf.Lines(), DisplayOps: rec.Ops()}
}
