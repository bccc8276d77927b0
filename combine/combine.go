// Package combine provides associative operations for use as the combine
// function of a segment tree, along with the identity values which make
// suitable defaults for trees constructed empty.
package combine

import "golang.org/x/exp/constraints"

// Number is the set of types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Min returns the smaller of a and b, preferring a on ties.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b, preferring a on ties.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Sum returns a + b.
func Sum[T Number](a, b T) T {
	return a + b
}

// GCD returns the greatest common divisor of a and b. The result is never
// negative and GCD(0, x) is |x|, so 0 is its identity.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// MinBy returns a Min operation over values ordered by less.
func MinBy[T any](less func(a, b T) bool) func(a, b T) T {
	return func(a, b T) T {
		if less(b, a) {
			return b
		}
		return a
	}
}

// MaxBy returns a Max operation over values ordered by less.
func MaxBy[T any](less func(a, b T) bool) func(a, b T) T {
	return func(a, b T) T {
		if less(a, b) {
			return b
		}
		return a
	}
}

// MaxValue returns the largest value of an integer type. It is the identity
// of Min.
func MaxValue[T constraints.Integer]() T {
	var zero T
	if ^zero < 0 {
		// Signed: all bits but the sign bit.
		return ^zero ^ signBit[T]()
	}
	return ^zero
}

// MinValue returns the smallest value of an integer type. It is the identity
// of Max.
func MinValue[T constraints.Integer]() T {
	var zero T
	if ^zero < 0 {
		return signBit[T]()
	}
	return zero
}

// signBit returns the value of a signed integer type with only the sign bit
// set.
func signBit[T constraints.Integer]() T {
	v := T(1)
	for v > 0 {
		v <<= 1
	}
	return v
}
