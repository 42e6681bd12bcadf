// Package engine hosts the render loop. A Loop owns the application data and
// two render trees: the source a transition starts from and the target it
// moves toward. Every frame draws the blend of the two at the current app
// time; a structural update freezes the blend into the target, makes it the
// new source and builds a fresh target.
//
// The loop is single-threaded. Callers drive it from one goroutine, either
// directly through Frame and Invalidate or with Run. Only Info may be called
// from other goroutines.
package engine

import (
	"sync/atomic"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/view"
)

// Target is where a loop draws. The canvas is fetched every frame, so a
// target may replace it when its size changes.
type Target interface {
	Canvas() *render.Canvas
	// Show flushes the finished frame.
	Show()
}

// Offscreen adapts a bare canvas to Target. Show does nothing.
func Offscreen(c *render.Canvas) Target { return offscreen{c} }

type offscreen struct{ canvas *render.Canvas }

func (o offscreen) Canvas() *render.Canvas { return o.canvas }
func (offscreen) Show()                    {}

// FrameStats reports how long the previous frame took. View functions may
// display it.
type FrameStats struct {
	Render time.Duration
	Flush  time.Duration
}

// ViewFunc builds the view for the current application data.
type ViewFunc[D any] func(data *D, stats FrameStats) view.View

// Options configures a Loop.
type Options struct {
	// Animation plays every structural update. When nil, trees snap to the
	// new target and only keyed local animations move.
	Animation *animation.Animation
	// Background clears the canvas before every frame.
	Background graphics.Color
	// Foreground is the default style passed to the root of the tree.
	Foreground graphics.Color
	// Font overrides the environment's text font.
	Font graphics.Font
	// Trace receives one sample per frame when set.
	Trace *FrameTraceBuffer
	// Inspect publishes a DebugInfo after every frame.
	Inspect bool
}

// Loop is the host render loop.
type Loop[D any] struct {
	// Data is the application data handed to the view function.
	Data D

	build    ViewFunc[D]
	target   Target
	opts     Options
	clock    animation.AppClock
	timeline *animation.Timeline

	source, dest render.Renderable
	stats        FrameStats
	rebuilt      bool
	rebuilds     int
	joinTime     time.Duration
	buildTime    time.Duration
	animating    bool

	info atomic.Pointer[DebugInfo]
}

// New returns a loop over data. Start must be called before the first frame.
func New[D any](data D, build ViewFunc[D], target Target, opts Options) *Loop[D] {
	if opts.Foreground == 0 {
		opts.Foreground = graphics.ColorWhite
	}
	l := &Loop[D]{Data: data, build: build, target: target, opts: opts}
	if opts.Animation != nil {
		l.timeline = animation.NewTimeline(*opts.Animation)
	}
	return l
}

// Start starts the app clock and builds the initial trees. Source and target
// are built separately from the same view, so the first frames draw the
// target unchanged.
func (l *Loop[D]) Start() {
	l.clock = animation.StartAppClock()
	now := l.clock.Elapsed()
	l.source = l.buildTree(now)
	l.dest = l.buildTree(now)
}

// AppTime returns the time since Start.
func (l *Loop[D]) AppTime() time.Duration { return l.clock.Elapsed() }

func (l *Loop[D]) env(now time.Duration) layout.Environment {
	env := layout.NewEnvironment(now)
	env.Foreground = l.opts.Foreground
	if l.opts.Font != nil {
		env.TextFont = l.opts.Font
	}
	return env
}

func (l *Loop[D]) buildTree(now time.Duration) render.Renderable {
	v := l.build(&l.Data, l.stats)
	return view.Build(v, l.target.Canvas().Size(), l.env(now))
}

// domain returns the global animation state at now.
func (l *Loop[D]) domain(now time.Duration) animation.Domain {
	if l.timeline == nil {
		return animation.TopLevel(now)
	}
	return l.timeline.Domain(now)
}

// Frame draws the blend of the source and target trees at the current app
// time and flushes it.
func (l *Loop[D]) Frame() {
	start := l.clock.Elapsed()
	d := l.domain(start)

	c := l.target.Canvas()
	c.Reset()
	c.Clear(l.opts.Background)
	local := l.draw(c, d)
	rendered := l.clock.Elapsed()

	l.target.Show()
	flushed := l.clock.Elapsed()

	l.stats = FrameStats{Render: rendered - start, Flush: flushed - rendered}
	l.animating = local || !d.IsComplete()

	if l.opts.Trace != nil {
		l.opts.Trace.Add(FrameSample{
			AppTime: durationToMillis(start),
			FrameMs: durationToMillis(flushed - start),
			Phases: FramePhaseTimings{
				BuildMs:  durationToMillis(l.buildTime),
				JoinMs:   durationToMillis(l.joinTime),
				RenderMs: durationToMillis(l.stats.Render),
				FlushMs:  durationToMillis(l.stats.Flush),
			},
			Flags: FrameFlags{Rebuilt: l.rebuilt, Animating: l.animating, Factor: d.Factor},
		}, flushed-start)
	}
	if l.opts.Inspect {
		l.publish(start, d)
	}
	l.rebuilt, l.joinTime, l.buildTime = false, 0, 0
}

// DrawTo draws the current blend into t without flushing or recording
// stats. It reports whether a keyed local animation is still in flight.
func (l *Loop[D]) DrawTo(t render.Target) bool {
	return l.draw(t, l.domain(l.clock.Elapsed()))
}

func (l *Loop[D]) draw(t render.Target, d animation.Domain) bool {
	t.ClearAnimationStatus()
	l.dest.RenderAnimated(t, l.source, l.opts.Foreground, graphics.Point{}, d)
	return t.ClearAnimationStatus()
}

// SafeFrame is Frame with panics recovered and reported. It returns the
// recovered panic as an error, or nil.
func (l *Loop[D]) SafeFrame() error {
	return l.guard("engine.Frame", l.Frame)
}

// SafeInvalidate is Invalidate with panics recovered and reported. View
// functions whose structure changed between builds make the freeze fail;
// the loop then drops the animation and rebuilds both trees.
func (l *Loop[D]) SafeInvalidate() error {
	return l.guard("engine.Invalidate", l.Invalidate)
}

// guard runs fn and turns a panic into a reported *errors.PanicError. A
// structural mismatch leaves the trees unusable, so they are rebuilt.
func (l *Loop[D]) guard(op string, fn func()) (err error) {
	defer errors.RecoverWithCallback(op, func(r any) {
		err = &errors.PanicError{Op: op, Value: r}
		if errors.IsMismatch(r) {
			l.Reset()
		}
	})
	fn()
	return nil
}

// Invalidate applies a structural update: the blend at the current app time
// is frozen into the target, the trees are swapped and a new target is built
// from the current data. The global animation, if any, restarts.
func (l *Loop[D]) Invalidate() {
	now := l.clock.Elapsed()
	d := l.domain(now)

	l.dest.JoinFrom(l.source, d)
	l.source, l.dest = l.dest, l.source
	joined := l.clock.Elapsed()

	l.dest = l.buildTree(now)
	if l.timeline != nil {
		l.timeline.Start(now)
	}
	l.rebuilt = true
	l.rebuilds++
	l.joinTime = joined - now
	l.buildTime = l.clock.Elapsed() - joined
}

// Reset discards any animation in flight and rebuilds both trees.
func (l *Loop[D]) Reset() {
	now := l.clock.Elapsed()
	l.source = l.buildTree(now)
	l.dest = l.buildTree(now)
	if l.timeline != nil {
		l.timeline.Reset()
	}
}

// Animating reports whether the last frame drew an animation in flight.
// Hosts may lower their frame rate while it is false.
func (l *Loop[D]) Animating() bool { return l.animating }

// Trees returns the current source and target trees.
func (l *Loop[D]) Trees() (source, target render.Renderable) { return l.source, l.dest }

// Stats returns the durations of the last frame.
func (l *Loop[D]) Stats() FrameStats { return l.stats }
