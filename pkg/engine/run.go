package engine

import (
	"context"
	"time"

	"github.com/go-drift/ripple/pkg/errors"
)

// EventKind classifies an Event.
type EventKind uint8

const (
	// EventExternal is a structural update. Its Update runs before the
	// trees are frozen and rebuilt.
	EventExternal EventKind = iota
	// EventRedraw requests a frame without touching the trees.
	EventRedraw
	// EventExit stops Run.
	EventExit
)

// Event is delivered to Run by the host.
type Event[D any] struct {
	Kind   EventKind
	Update func(data *D)
}

// Update returns an external event applying fn to the loop data.
func Update[D any](fn func(data *D)) Event[D] {
	return Event[D]{Kind: EventExternal, Update: fn}
}

// Exit returns the event that stops Run.
func Exit[D any]() Event[D] { return Event[D]{Kind: EventExit} }

// Run starts the loop and draws frames every interval until ctx is done or
// an EventExit arrives. Frames are skipped while nothing animates and no
// event arrived since the last one. Frame panics are reported and do not stop
// the loop. A frame lost to a structural mismatch is drawn again on the next
// tick from the rebuilt trees.
func (l *Loop[D]) Run(ctx context.Context, events <-chan Event[D], interval time.Duration) error {
	l.Start()
	l.SafeFrame()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	dirty := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			switch ev.Kind {
			case EventExit:
				return nil
			case EventExternal:
				if ev.Update != nil {
					ev.Update(&l.Data)
				}
				l.SafeInvalidate()
			}
			dirty = true
		case <-ticker.C:
			if dirty || l.Animating() {
				err := l.SafeFrame()
				dirty = err != nil && errors.IsMismatch(err)
			}
		}
	}
}
