package graphics

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestInterpolationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("blend boundaries are exact", prop.ForAll(
		func(from, to int32) bool {
			return InterpolateI32(from, to, 0) == from && InterpolateI32(from, to, 255) == to
		},
		gen.Int32Range(-1<<20, 1<<20),
		gen.Int32Range(-1<<20, 1<<20),
	))

	properties.Property("blend stays between end points", prop.ForAll(
		func(from, to uint32, amount uint8) bool {
			got := InterpolateU32(from, to, amount)
			return got >= min(from, to) && got <= max(from, to)
		},
		gen.UInt32(),
		gen.UInt32(),
		gen.UInt8(),
	))

	properties.Property("color boundaries are exact", prop.ForAll(
		func(from, to uint32) bool {
			a, b := Color(from), Color(to)
			return a.Interpolate(b, 0) == a && a.Interpolate(b, 255) == b
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.TestingRun(t)
}
