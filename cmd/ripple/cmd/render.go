package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/ripple/cmd/ripple/internal/config"
	"github.com/go-drift/ripple/cmd/ripple/internal/scene"
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/target/raster"
	"github.com/go-drift/ripple/pkg/target/textbuf"
	"github.com/go-drift/ripple/pkg/view"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to text or PNG",
		Long: `Lay out a scene once and print it as text, or write it as a PNG image.

Display size and colours come from ripple.yaml next to the scene, if present.

Flags:
  --size WxH        Display size (text cells, or pixels with --png)
  --png FILE        Write a PNG image instead of printing text
  --from FILE       Render the blend from another scene toward this one
  --factor N        Blend factor from 0 (the --from scene) to 255 (default: 128)

Both scenes given to --from must have the same structure: the same views in
the same places, differing only in their values.`,
		Usage: "ripple render <scene.yaml> [--size WxH] [--png FILE] [--from FILE [--factor N]]",
		Run:   runRender,
	})
}

type renderOptions struct {
	scene  string
	size   graphics.Size
	png    string
	from   string
	factor uint8
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(filepath.Dir(opts.scene))
	if err != nil {
		return err
	}
	if opts.size.IsEmpty() {
		opts.size = cfg.Size
	}
	if opts.png == "" {
		return renderText(stdout, opts, cfg)
	}
	f, err := os.Create(opts.png)
	if err != nil {
		return errors.WithPath("cmd.render", errors.KindTarget, opts.png, err)
	}
	defer f.Close()
	if err := renderPNG(f, opts, cfg); err != nil {
		return err
	}
	return f.Close()
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{factor: 128}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--size", "--png", "--from", "--factor":
			value, err := flagValue(args, i)
			if err != nil {
				return opts, err
			}
			i++
			switch arg {
			case "--size":
				if opts.size, err = parseSize(value); err != nil {
					return opts, err
				}
			case "--png":
				opts.png = value
			case "--from":
				opts.from = value
			case "--factor":
				n, err := strconv.ParseUint(value, 10, 8)
				if err != nil {
					return opts, fmt.Errorf("--factor must be between 0 and 255, got %q", value)
				}
				opts.factor = uint8(n)
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.scene != "" {
				return opts, fmt.Errorf("only one scene may be rendered, got %q and %q", opts.scene, arg)
			}
			opts.scene = arg
		}
	}
	if opts.scene == "" {
		return opts, fmt.Errorf("scene file is required\n\nUsage: ripple render <scene.yaml>")
	}
	return opts, nil
}

// parseSize parses "WxH".
func parseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	width, werr := strconv.ParseUint(w, 10, 32)
	height, herr := strconv.ParseUint(h, 10, 32)
	if !ok || werr != nil || herr != nil || width == 0 || height == 0 {
		return graphics.Size{}, fmt.Errorf("--size must look like 40x12, got %q", s)
	}
	return graphics.Sz(uint32(width), uint32(height)), nil
}

func renderText(w io.Writer, opts renderOptions, cfg *config.Resolved) error {
	canvas, buf := textbuf.NewCanvas(opts.size.Width, opts.size.Height)
	if err := drawScene(canvas, opts, cfg, nil); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

func renderPNG(w io.Writer, opts renderOptions, cfg *config.Resolved) error {
	canvas, img := raster.NewCanvas(opts.size.Width, opts.size.Height)
	if err := drawScene(canvas, opts, cfg, raster.BasicFont()); err != nil {
		return err
	}
	return img.WritePNG(w)
}

func loadView(path string) (view.View, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	return s.View()
}

// drawScene draws the scene, or its blend from opts.from, onto c.
func drawScene(c *render.Canvas, opts renderOptions, cfg *config.Resolved, font graphics.Font) (err error) {
	env := layout.NewEnvironment(0)
	env.Foreground = cfg.Foreground
	if font != nil {
		env.TextFont = font
	}

	v, err := loadView(opts.scene)
	if err != nil {
		return err
	}
	to := view.Build(v, c.Size(), env)

	var from render.Renderable
	if opts.from != "" {
		prev, err := loadView(opts.from)
		if err != nil {
			return err
		}
		from = view.Build(prev, c.Size(), env)
	}

	defer errors.RecoverWithCallback("cmd.render", func(r any) {
		err = errors.New("cmd.render", errors.KindRender, &errors.PanicError{Op: "cmd.render", Value: r})
	})
	c.Reset()
	c.Clear(cfg.Background)
	if from == nil {
		to.Render(c, cfg.Foreground, graphics.Point{})
	} else {
		to.RenderAnimated(c, from, cfg.Foreground, graphics.Point{}, animation.NewDomain(opts.factor, 0))
	}
	return nil
}
