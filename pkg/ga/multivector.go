// Package ga implements the even-graded rigid-motion algebra used to
// position hyperplanes and the camera in 4D space.
//
// The algebra has five generators: e0 squares to zero and carries
// translation, e1..e4 square to one and span the four spatial axes.
// A full multivector has 32 components, indexed by a 5-bit mask with
// bit i selecting generator ei. Motors and rotors are thin named views
// over the even-graded components; all of their transformation formulas
// are evaluated through the generic geometric product below rather than
// hand-expanded polynomials.
package ga

import "math/bits"

// Blade masks for the components the motor types care about.
const (
	bladeScalar = 0

	bladeE01 = 1<<0 | 1<<1
	bladeE02 = 1<<0 | 1<<2
	bladeE03 = 1<<0 | 1<<3
	bladeE04 = 1<<0 | 1<<4
	bladeE12 = 1<<1 | 1<<2
	bladeE13 = 1<<1 | 1<<3
	bladeE14 = 1<<1 | 1<<4
	bladeE23 = 1<<2 | 1<<3
	bladeE24 = 1<<2 | 1<<4
	bladeE34 = 1<<3 | 1<<4

	bladeE0123 = 1<<0 | 1<<1 | 1<<2 | 1<<3
	bladeE0124 = 1<<0 | 1<<1 | 1<<2 | 1<<4
	bladeE0134 = 1<<0 | 1<<1 | 1<<3 | 1<<4
	bladeE0234 = 1<<0 | 1<<2 | 1<<3 | 1<<4
	bladeE1234 = 1<<1 | 1<<2 | 1<<3 | 1<<4
)

// Multivector is a general element of the 5-generator algebra.
// Component i is the coefficient of the basis blade whose generator
// set is the binary expansion of i.
type Multivector [32]float64

// reorderSign counts the transpositions needed to merge two basis
// blades into canonical (ascending generator) order.
func reorderSign(a, b uint32) float64 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount32(a & b)
		a >>= 1
	}
	if swaps&1 == 0 {
		return 1.0
	}
	return -1.0
}

// Mul returns the geometric product of two multivectors.
// Blades sharing the degenerate generator e0 annihilate.
func (m Multivector) Mul(other Multivector) Multivector {
	var result Multivector
	for a := uint32(0); a < 32; a++ {
		ca := m[a]
		if ca == 0 {
			continue
		}
		for b := uint32(0); b < 32; b++ {
			cb := other[b]
			if cb == 0 {
				continue
			}
			if a&b&1 != 0 {
				continue // e0 squares to zero
			}
			result[a^b] += reorderSign(a, b) * ca * cb
		}
	}
	return result
}

// Outer returns the outer (wedge) product of two multivectors
func (m Multivector) Outer(other Multivector) Multivector {
	var result Multivector
	for a := uint32(0); a < 32; a++ {
		ca := m[a]
		if ca == 0 {
			continue
		}
		for b := uint32(0); b < 32; b++ {
			cb := other[b]
			if cb == 0 || a&b != 0 {
				continue
			}
			result[a^b] += reorderSign(a, b) * ca * cb
		}
	}
	return result
}

// Add returns the sum of two multivectors
func (m Multivector) Add(other Multivector) Multivector {
	var result Multivector
	for i := range m {
		result[i] = m[i] + other[i]
	}
	return result
}

// Scale returns the multivector scaled by a scalar
func (m Multivector) Scale(s float64) Multivector {
	var result Multivector
	for i := range m {
		result[i] = m[i] * s
	}
	return result
}

// Reverse flips the order of generators inside every blade, which
// multiplies a grade-k component by (-1)^(k(k-1)/2).
func (m Multivector) Reverse() Multivector {
	var result Multivector
	for i := uint32(0); i < 32; i++ {
		k := bits.OnesCount32(i)
		if k*(k-1)/2%2 == 1 {
			result[i] = -m[i]
		} else {
			result[i] = m[i]
		}
	}
	return result
}

// Grade returns the projection of the multivector onto grade k
func (m Multivector) Grade(k int) Multivector {
	var result Multivector
	for i := uint32(0); i < 32; i++ {
		if bits.OnesCount32(i) == k {
			result[i] = m[i]
		}
	}
	return result
}
