package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	r, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Size != graphics.Sz(DefaultWidth, DefaultHeight) {
		t.Errorf("Size = %v", r.Size)
	}
	if r.Animation == nil || r.Animation.Duration != DefaultDuration || r.Animation.Curve != animation.CurveEaseInOut {
		t.Errorf("Animation = %v", r.Animation)
	}
	if r.FrameInterval != DefaultFrameInterval {
		t.Errorf("FrameInterval = %v", r.FrameInterval)
	}
	if r.Foreground != graphics.ColorWhite || r.Background != graphics.ColorBlack {
		t.Errorf("colours = %v on %v", r.Foreground, r.Background)
	}
}

func TestResolveFile(t *testing.T) {
	dir := writeConfig(t, `
version: v1.2.0
display: {width: 40, height: 10}
animation: {duration: 150ms, curve: linear}
frame_interval: 33ms
foreground: "#ff0000"
background: "#000"
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Root != dir || r.Version != "v1.2.0" {
		t.Errorf("Root, Version = %q, %q", r.Root, r.Version)
	}
	if r.Size != graphics.Sz(40, 10) {
		t.Errorf("Size = %v", r.Size)
	}
	if want := animation.Linear(150 * time.Millisecond); r.Animation == nil || *r.Animation != want {
		t.Errorf("Animation = %v, want %v", r.Animation, want)
	}
	if r.FrameInterval != 33*time.Millisecond {
		t.Errorf("FrameInterval = %v", r.FrameInterval)
	}
	if r.Foreground != graphics.ColorRed || r.Background != graphics.ColorBlack {
		t.Errorf("colours = %v on %v", r.Foreground, r.Background)
	}
}

func TestResolveDisabledAnimation(t *testing.T) {
	for _, d := range []string{"none", "0", "0s"} {
		cfg := Config{Animation: AnimationConfig{Duration: d}}
		r, err := cfg.Resolve()
		if err != nil {
			t.Fatalf("duration %q: %v", d, err)
		}
		if r.Animation != nil {
			t.Errorf("duration %q: Animation = %v, want nil", d, r.Animation)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"bad version", Config{Version: "1.0"}, "version"},
		{"future version", Config{Version: "v2.0.0"}, "version"},
		{"bad duration", Config{Animation: AnimationConfig{Duration: "soon"}}, "animation.duration"},
		{"bad curve", Config{Animation: AnimationConfig{Curve: "wobble"}}, "animation.curve"},
		{"bad interval", Config{FrameInterval: "-1s"}, "frame_interval"},
		{"bad colour", Config{Foreground: "red"}, "foreground"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Resolve()
			if errors.KindOf(err) != errors.KindConfig {
				t.Fatalf("Resolve() error = %v, want a config error", err)
			}
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) || pe.Field != tt.field {
				t.Errorf("Resolve() error = %v, want field %s", err, tt.field)
			}
		})
	}
}

func TestLoadOptionalParseError(t *testing.T) {
	dir := writeConfig(t, "display: [")
	_, err := LoadOptional(dir)
	if errors.KindOf(err) != errors.KindConfig {
		t.Errorf("LoadOptional() error = %v, want a config error", err)
	}
}
