package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ripple/cmd/ripple/internal/config"
	"github.com/go-drift/ripple/cmd/ripple/internal/watch"
	"github.com/go-drift/ripple/pkg/engine"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/target/terminal"
	"github.com/go-drift/ripple/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Show a scene in the terminal and animate its edits",
		Long: `Show a scene full screen in the terminal.

With --watch the scene is reloaded whenever the file is saved, and the
display animates from the old scene to the new one using the animation in
ripple.yaml. Resizing the terminal animates the new layout the same way.

Keys:
  q, Esc, Ctrl-C    Quit
  s                 Toggle frame timings

Flags:
  --watch           Reload the scene when the file changes
  --stats           Show frame timings
  --log FILE        Write errors to FILE instead of discarding them
  --debug ADDR      Serve frame traces and render trees over HTTP at ADDR
                    (for example localhost:9999)`,
		Usage: "ripple preview <scene.yaml> [--watch] [--stats] [--log FILE] [--debug ADDR]",
		Run:   runPreview,
	})
}

type previewOptions struct {
	scene string
	watch bool
	stats bool
	log   string
	debug string
}

func parsePreviewArgs(args []string) (previewOptions, error) {
	var opts previewOptions
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--watch":
			opts.watch = true
		case "--stats":
			opts.stats = true
		case "--log", "--debug":
			value, err := flagValue(args, i)
			if err != nil {
				return opts, err
			}
			if arg == "--log" {
				opts.log = value
			} else {
				opts.debug = value
			}
			i++
		default:
			if len(arg) > 0 && arg[0] == '-' {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.scene != "" {
				return opts, fmt.Errorf("only one scene may be previewed, got %q and %q", opts.scene, arg)
			}
			opts.scene = arg
		}
	}
	if opts.scene == "" {
		return opts, fmt.Errorf("scene file is required\n\nUsage: ripple preview <scene.yaml>")
	}
	return opts, nil
}

// previewState is the data the preview loop builds its view from.
type previewState struct {
	root  view.View
	err   error
	stats bool
}

// reload replaces the root with the scene at path. A scene that fails to
// load keeps the previous root and shows the error instead.
func (p *previewState) reload(path string) {
	v, err := loadView(path)
	p.err = err
	if err == nil {
		p.root = v
	}
}

func previewView(p *previewState, stats engine.FrameStats) view.View {
	var root view.View = view.EmptyView{}
	if p.root != nil {
		root = p.root
	}
	var status view.View
	switch {
	case p.err != nil:
		status = view.ForegroundColor{View: view.TextOf(p.err.Error()), Color: graphics.ColorRed}
	case p.stats:
		status = view.TextOf(fmt.Sprintf("render %v  flush %v",
			stats.Render.Round(time.Microsecond), stats.Flush.Round(time.Microsecond)))
	}
	return view.Overlay{
		View:      view.FlexFrame{View: root, MaxWidth: view.Fill, MaxHeight: view.Fill, Alignment: layout.AlignTopLeading},
		Content:   view.Optional{View: status},
		Alignment: layout.AlignBottomLeading,
	}
}

func runPreview(args []string) error {
	opts, err := parsePreviewArgs(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(filepath.Dir(opts.scene))
	if err != nil {
		return err
	}
	state := previewState{stats: opts.stats}
	state.reload(opts.scene)
	if state.err != nil {
		return state.err
	}

	var logOut io.Writer = io.Discard
	if opts.log != "" {
		f, err := os.Create(opts.log)
		if err != nil {
			return errors.WithPath("cmd.preview", errors.KindConfig, opts.log, err)
		}
		defer f.Close()
		logOut = f
	}
	errors.SetHandler(&errors.LogHandler{Out: logOut, Verbose: true})
	defer errors.SetHandler(nil)

	display, err := terminal.Open()
	if err != nil {
		return err
	}
	defer display.Close()

	loopOpts := engine.Options{
		Animation:  cfg.Animation,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var debug engine.DebugSource
	if opts.debug != "" {
		loopOpts.Trace = engine.NewFrameTraceBuffer(0, cfg.FrameInterval)
		loopOpts.Inspect = true
		debug.Trace = loopOpts.Trace
		debug.Runtime = engine.NewRuntimeSampleBuffer(0, time.Second)
		go debug.Runtime.Run(ctx)
	}
	loop := engine.New(state, previewView, display, loopOpts)
	if opts.debug != "" {
		debug.Info = loop.Info
		server, err := engine.StartDebugServer(opts.debug, debug)
		if err != nil {
			return err
		}
		defer server.Close()
	}
	events := make(chan engine.Event[previewState], 16)
	send := func(ev engine.Event[previewState]) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	go pollTerminal(display, send)
	if opts.watch {
		w, err := watch.New(opts.scene, watch.DefaultDelay)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx, func() {
			send(engine.Update(func(p *previewState) { p.reload(opts.scene) }))
		})
	}

	err = loop.Run(ctx, events, cfg.FrameInterval)
	if err == context.Canceled {
		return nil
	}
	return err
}

// pollTerminal turns terminal input into loop events until the screen is
// closed or the user quits.
func pollTerminal(display *terminal.Display, send func(engine.Event[previewState])) {
	screen := display.Screen()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				send(engine.Exit[previewState]())
				return
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 's' {
				send(engine.Update(func(p *previewState) { p.stats = !p.stats }))
			}
		case *tcell.EventResize:
			send(engine.Update(func(*previewState) {
				if display.Resize() {
					screen.Sync()
				}
			}))
		}
	}
}
