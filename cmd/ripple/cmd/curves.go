package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "Print the blend factors of the animation curves",
		Long: `Print the blend factor (0 to 255) each standard curve produces over the
course of an animation.

Flags:
  --duration D           Animation duration (default: 300ms)
  --steps N              Number of samples after the start (default: 10)
  --bezier X1,Y1,X2,Y2   Add a cubic-bezier column`,
		Usage: "ripple curves [--duration D] [--steps N] [--bezier X1,Y1,X2,Y2]",
		Run:   runCurves,
	})
}

type curveColumn struct {
	name  string
	curve animation.Curve
}

type curvesOptions struct {
	duration time.Duration
	steps    int
	columns  []curveColumn
}

func parseCurvesArgs(args []string) (curvesOptions, error) {
	opts := curvesOptions{duration: 300 * time.Millisecond, steps: 10}
	for c := animation.CurveLinear; c <= animation.CurveEaseOutBounce; c++ {
		opts.columns = append(opts.columns, curveColumn{name: c.String(), curve: c})
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value, err := flagValue(args, i)
		if err != nil {
			return opts, err
		}
		i++
		switch arg {
		case "--duration":
			d, err := time.ParseDuration(value)
			if err != nil || d <= 0 {
				return opts, fmt.Errorf("--duration must be a positive duration, got %q", value)
			}
			opts.duration = d
		case "--steps":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return opts, fmt.Errorf("--steps must be a positive number, got %q", value)
			}
			opts.steps = n
		case "--bezier":
			b, err := parseBezier(value)
			if err != nil {
				return opts, err
			}
			opts.columns = append(opts.columns, curveColumn{name: "bezier", curve: b})
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

func parseBezier(s string) (animation.BezierCurve, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return animation.BezierCurve{}, fmt.Errorf("--bezier needs four numbers, got %q", s)
	}
	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return animation.BezierCurve{}, fmt.Errorf("--bezier needs four numbers, got %q", s)
		}
		p[i] = v
	}
	return animation.CubicBezier(p[0], p[1], p[2], p[3]), nil
}

func runCurves(args []string) error {
	opts, err := parseCurvesArgs(args)
	if err != nil {
		return err
	}
	return printCurves(stdout, opts)
}

func printCurves(w io.Writer, opts curvesOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "elapsed\t")
	for _, c := range opts.columns {
		fmt.Fprintf(tw, "%s\t", c.name)
	}
	fmt.Fprintln(tw)
	for step := 0; step <= opts.steps; step++ {
		elapsed := opts.duration * time.Duration(step) / time.Duration(opts.steps)
		fmt.Fprintf(tw, "%v\t", elapsed)
		for _, c := range opts.columns {
			fmt.Fprintf(tw, "%d\t", c.curve.Factor(elapsed, opts.duration))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
