package graphics

// Interpolation blends two values by an 8-bit amount where 0 yields the
// starting value and 255 yields the ending value exactly. Integer types use
// the rule ((amount * to) + ((255 - amount) * from)) / 255. Discrete values
// snap from the start to the end value at the midpoint.

// Interpolator is implemented by values that can be blended toward another
// value of the same type.
type Interpolator[T any] interface {
	Interpolate(to T, amount uint8) T
}

// Lerp blends from toward to by amount.
func Lerp[T Interpolator[T]](from, to T, amount uint8) T {
	return from.Interpolate(to, amount)
}

// discreteThreshold is the amount at which discrete values switch to the
// ending value.
const discreteThreshold = 127

// InterpolateU8 blends two bytes.
func InterpolateU8(from, to uint8, amount uint8) uint8 {
	a := uint32(amount)
	return uint8((a*uint32(to) + (255-a)*uint32(from)) / 255)
}

// InterpolateU16 blends two unsigned 16-bit values.
func InterpolateU16(from, to uint16, amount uint8) uint16 {
	a := uint32(amount)
	return uint16((a*uint32(to) + (255-a)*uint32(from)) / 255)
}

// InterpolateU32 blends two unsigned 32-bit values.
func InterpolateU32(from, to uint32, amount uint8) uint32 {
	a := uint64(amount)
	return uint32((a*uint64(to) + (255-a)*uint64(from)) / 255)
}

// InterpolateI32 blends two signed 32-bit values.
func InterpolateI32(from, to int32, amount uint8) int32 {
	a := int64(amount)
	return int32((a*int64(to) + (255-a)*int64(from)) / 255)
}

// InterpolateF32 blends two float32 values.
func InterpolateF32(from, to float32, amount uint8) float32 {
	if amount == 255 {
		return to
	}
	return from + (to-from)*float32(amount)/255
}

// InterpolateF64 blends two float64 values.
func InterpolateF64(from, to float64, amount uint8) float64 {
	if amount == 255 {
		return to
	}
	return from + (to-from)*float64(amount)/255
}

// InterpolateDiscrete returns from while amount is below the midpoint and to
// afterwards.
func InterpolateDiscrete[T any](from, to T, amount uint8) T {
	if amount < discreteThreshold {
		return from
	}
	return to
}

// InterpolateBool is the discrete interpolation of two booleans.
func InterpolateBool(from, to bool, amount uint8) bool {
	return InterpolateDiscrete(from, to, amount)
}
