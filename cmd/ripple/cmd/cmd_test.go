package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/ripple/cmd/ripple/internal/config"
	"github.com/go-drift/ripple/pkg/engine"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	rippletest "github.com/go-drift/ripple/pkg/testing"
	"github.com/go-drift/ripple/pkg/view"
)

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    graphics.Size
		wantErr bool
	}{
		{"40x12", graphics.Sz(40, 12), false},
		{"8X2", graphics.Sz(8, 2), false},
		{"40", graphics.Size{}, true},
		{"0x4", graphics.Size{}, true},
		{"ax4", graphics.Size{}, true},
		{"4x-1", graphics.Size{}, true},
	}
	for _, tt := range tests {
		got, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRenderArgs(t *testing.T) {
	opts, err := parseRenderArgs([]string{"a.yaml", "--size", "6x1", "--from", "b.yaml", "--factor", "64", "--png", "out.png"})
	if err != nil {
		t.Fatalf("parseRenderArgs() error = %v", err)
	}
	want := renderOptions{scene: "a.yaml", size: graphics.Sz(6, 1), png: "out.png", from: "b.yaml", factor: 64}
	if opts != want {
		t.Errorf("parseRenderArgs() = %+v, want %+v", opts, want)
	}

	for _, args := range [][]string{
		{},
		{"--size", "6x1"},
		{"a.yaml", "b.yaml"},
		{"a.yaml", "--factor", "300"},
		{"a.yaml", "--png"},
		{"a.yaml", "--bogus"},
	} {
		if _, err := parseRenderArgs(args); err == nil {
			t.Errorf("parseRenderArgs(%q) expected an error", args)
		}
	}
}

func TestParsePreviewArgs(t *testing.T) {
	opts, err := parsePreviewArgs([]string{"--watch", "scene.yaml", "--log", "ripple.log", "--debug", ":9999"})
	if err != nil {
		t.Fatalf("parsePreviewArgs() error = %v", err)
	}
	if opts != (previewOptions{scene: "scene.yaml", watch: true, log: "ripple.log", debug: ":9999"}) {
		t.Errorf("parsePreviewArgs() = %+v", opts)
	}
	if _, err := parsePreviewArgs([]string{"--stats"}); err == nil {
		t.Error("expected an error without a scene")
	}
}

const slider = `
root:
  rectangle:
  frame: {width: 2, height: 1}
  offset: [%d, 0]
`

func TestRenderText(t *testing.T) {
	dir := t.TempDir()
	scene := writeScene(t, dir, "scene.yaml", "root:\n  hstack:\n    children:\n      - text: ab\n      - rectangle:\n")
	out := captureStdout(t)

	if err := execute([]string{"render", scene, "--size", "6x1"}); err != nil {
		t.Fatalf("render error = %v", err)
	}
	// The text target inks shapes with its default block.
	want := "ab████\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRenderBlend(t *testing.T) {
	dir := t.TempDir()
	from := writeScene(t, dir, "from.yaml", fmt.Sprintf(slider, 0))
	to := writeScene(t, dir, "to.yaml", fmt.Sprintf(slider, 4))
	cfg, err := config.Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		factor uint8
		want   string
	}{
		{0, "██\n"},
		{128, "  ██\n"},
		{255, "    ██\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		opts := renderOptions{scene: to, from: from, factor: tt.factor, size: graphics.Sz(6, 1)}
		if err := renderText(&out, opts, cfg); err != nil {
			t.Fatalf("factor %d: error = %v", tt.factor, err)
		}
		if out.String() != tt.want {
			t.Errorf("factor %d: expected %q, got %q", tt.factor, tt.want, out.String())
		}
	}
}

func TestRenderBlendMismatch(t *testing.T) {
	errors.SetHandler(&errors.LogHandler{Out: &bytes.Buffer{}})
	t.Cleanup(func() { errors.SetHandler(nil) })

	dir := t.TempDir()
	from := writeScene(t, dir, "from.yaml", "root:\n  text: ab\n")
	to := writeScene(t, dir, "to.yaml", fmt.Sprintf(slider, 4))
	cfg, err := config.Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err = renderText(&out, renderOptions{scene: to, from: from, factor: 10, size: graphics.Sz(6, 1)}, cfg)
	if err == nil {
		t.Fatal("expected an error blending scenes of different structure")
	}
	if errors.KindOf(err) != errors.KindRender {
		t.Errorf("KindOf() = %v, want %v", errors.KindOf(err), errors.KindRender)
	}
}

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	scene := writeScene(t, dir, "scene.yaml", "root:\n  circle:\n  foreground: \"#00ff00\"\n")
	out := filepath.Join(dir, "out.png")

	if err := execute([]string{"render", scene, "--size", "16x8", "--png", out}); err != nil {
		t.Fatalf("render error = %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("expected a 16x8 image, got %v", b)
	}
}

func TestPrintCurves(t *testing.T) {
	opts, err := parseCurvesArgs([]string{"--duration", "100ms", "--steps", "2", "--bezier", "0,0,1,1"})
	if err != nil {
		t.Fatalf("parseCurvesArgs() error = %v", err)
	}
	if opts.duration != 100*time.Millisecond || opts.steps != 2 || len(opts.columns) != 6 {
		t.Fatalf("unexpected options %+v", opts)
	}

	var out bytes.Buffer
	if err := printCurves(&out, opts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected a header and three rows, got %q", out.String())
	}
	header := strings.Fields(lines[0])
	if header[0] != "elapsed" || header[1] != "linear" || header[len(header)-1] != "bezier" {
		t.Errorf("unexpected header %q", lines[0])
	}
	for i, want := range []string{"0", "127", "255"} {
		row := strings.Fields(lines[i+1])
		if row[1] != want {
			t.Errorf("row %d: linear factor = %s, want %s", i, row[1], want)
		}
	}
	last := strings.Fields(lines[3])
	for _, f := range last[1:] {
		if f != "255" {
			t.Errorf("expected every curve to finish at 255, got %q", lines[3])
			break
		}
	}

	for _, args := range [][]string{{"--steps", "0"}, {"--duration", "x"}, {"--bezier", "1,2"}, {"--steps"}} {
		if _, err := parseCurvesArgs(args); err == nil {
			t.Errorf("parseCurvesArgs(%q) expected an error", args)
		}
	}
}

func TestPreviewView(t *testing.T) {
	state := previewState{root: view.TextOf("ab"), err: fmt.Errorf("bad")}
	tester := rippletest.NewViewTester(t, 12, 2, previewView(&state, engine.FrameStats{}))
	if got := tester.Pump(); got != "ab\nbad" {
		t.Errorf("expected the error under the scene, got %q", got)
	}
}

func TestPreviewReloadKeepsLastGoodScene(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.yaml", "root:\n  text: ok\n")

	var state previewState
	state.reload(path)
	if state.err != nil || state.root == nil {
		t.Fatalf("reload() = %v, %v", state.root, state.err)
	}
	good := state.root

	writeScene(t, dir, "scene.yaml", "root:\n  bogus: 1\n")
	state.reload(path)
	if state.err == nil {
		t.Error("expected the broken scene to be reported")
	}
	if state.root != good {
		t.Error("expected the previous scene to be kept")
	}
}

func TestExecute(t *testing.T) {
	out := captureStdout(t)
	if err := execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("expected the version, got %q", out.String())
	}

	out.Reset()
	if err := execute([]string{"render", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "ripple render") {
		t.Errorf("expected render usage, got %q", out.String())
	}

	if err := execute([]string{"nope"}); err == nil {
		t.Error("expected an unknown command error")
	}
}
