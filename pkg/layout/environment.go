package layout

import (
	"time"

	"github.com/go-drift/ripple/pkg/graphics"
)

// Environment carries ambient values down the view tree during layout and
// render-tree construction. Views that change a value for their subtree wrap
// the environment they received instead of mutating it.
type Environment interface {
	LayoutDirection() LayoutDirection
	Alignment() Alignment
	ForegroundColor() graphics.Color
	AppTime() time.Duration
	Font() graphics.Font
}

// DefaultEnvironment is a plain environment value.
type DefaultEnvironment struct {
	Direction  LayoutDirection
	Align      Alignment
	Foreground graphics.Color
	Time       time.Duration
	TextFont   graphics.Font
}

// NewEnvironment returns an environment with vertical direction, centre
// alignment, a white foreground and the character font.
func NewEnvironment(appTime time.Duration) DefaultEnvironment {
	return DefaultEnvironment{
		Direction:  Vertical,
		Align:      AlignCenter,
		Foreground: graphics.ColorWhite,
		Time:       appTime,
		TextFont:   graphics.CharacterFont{},
	}
}

func (e DefaultEnvironment) LayoutDirection() LayoutDirection { return e.Direction }
func (e DefaultEnvironment) Alignment() Alignment             { return e.Align }
func (e DefaultEnvironment) ForegroundColor() graphics.Color  { return e.Foreground }
func (e DefaultEnvironment) AppTime() time.Duration           { return e.Time }

func (e DefaultEnvironment) Font() graphics.Font {
	if e.TextFont == nil {
		return graphics.CharacterFont{}
	}
	return e.TextFont
}

type directionEnv struct {
	Environment
	direction LayoutDirection
}

func (e directionEnv) LayoutDirection() LayoutDirection { return e.direction }

// WithDirection overrides the layout direction.
func WithDirection(env Environment, d LayoutDirection) Environment {
	if env.LayoutDirection() == d {
		return env
	}
	return directionEnv{Environment: env, direction: d}
}

type alignmentEnv struct {
	Environment
	alignment Alignment
}

func (e alignmentEnv) Alignment() Alignment { return e.alignment }

// WithAlignment overrides the alignment.
func WithAlignment(env Environment, a Alignment) Environment {
	return alignmentEnv{Environment: env, alignment: a}
}

type foregroundEnv struct {
	Environment
	color graphics.Color
}

func (e foregroundEnv) ForegroundColor() graphics.Color { return e.color }

// WithForeground overrides the foreground colour.
func WithForeground(env Environment, c graphics.Color) Environment {
	return foregroundEnv{Environment: env, color: c}
}

type timeEnv struct {
	Environment
	time time.Duration
}

func (e timeEnv) AppTime() time.Duration { return e.time }

// WithAppTime overrides the app time.
func WithAppTime(env Environment, t time.Duration) Environment {
	return timeEnv{Environment: env, time: t}
}

type fontEnv struct {
	Environment
	font graphics.Font
}

func (e fontEnv) Font() graphics.Font { return e.font }

// WithFont overrides the text font.
func WithFont(env Environment, f graphics.Font) Environment {
	return fontEnv{Environment: env, font: f}
}
