package ga

import (
	"math"

	"github.com/tesseray/tesseray/pkg/core"
)

// Motor is a unit element of the even-graded sub-algebra: one scalar,
// ten bivector and five quadvector coefficients encoding a combined
// rotation and translation in 4D space. E01..E04 carry translation,
// E12..E34 the six rotation planes, and the quadvectors couple the two.
//
// The tracer assumes motors are unit magnitude and never re-normalizes;
// a non-unit motor silently yields a scaling or shearing motion.
type Motor struct {
	S float64

	E01, E02, E03, E04 float64
	E12, E13, E14      float64
	E23, E24, E34      float64

	E0123, E0124, E0134, E0234 float64
	E1234                      float64
}

// Rotor is the rotation-only subgroup of Motor: no e0 components,
// so it is translation-invariant by construction.
type Rotor struct {
	S                            float64
	E12, E13, E14, E23, E24, E34 float64
	E1234                        float64
}

// Identity returns the motor of the null motion
func Identity() Motor {
	return Motor{S: 1}
}

// Translation returns the motor translating by offset
func Translation(offset core.Vec4) Motor {
	return Motor{
		S:   1,
		E01: offset.X * 0.5,
		E02: offset.Y * 0.5,
		E03: offset.Z * 0.5,
		E04: offset.W * 0.5,
	}
}

// IdentityRotor returns the rotor of the null rotation
func IdentityRotor() Rotor {
	return Rotor{S: 1}
}

// RotateXY returns the rotor turning the x axis toward the y axis by angle
func RotateXY(angle float64) Rotor {
	sin, cos := math.Sincos(angle * 0.5)
	return Rotor{S: cos, E12: sin}
}

// RotateXZ returns the rotor turning the x axis toward the z axis by angle
func RotateXZ(angle float64) Rotor {
	sin, cos := math.Sincos(angle * 0.5)
	return Rotor{S: cos, E13: sin}
}

// RotateXW returns the rotor turning the x axis toward the w axis by angle
func RotateXW(angle float64) Rotor {
	sin, cos := math.Sincos(angle * 0.5)
	return Rotor{S: cos, E14: sin}
}

// RotateYZ returns the rotor turning the y axis toward the z axis by angle
func RotateYZ(angle float64) Rotor {
	sin, cos := math.Sincos(angle * 0.5)
	return Rotor{S: cos, E23: sin}
}

// RotateYW returns the rotor turning the y axis toward the w axis by angle
func RotateYW(angle float64) Rotor {
	sin, cos := math.Sincos(angle * 0.5)
	return Rotor{S: cos, E24: sin}
}

// RotateZW returns the rotor turning the z axis toward the w axis by angle
func RotateZW(angle float64) Rotor {
	sin, cos := math.Sincos(angle * 0.5)
	return Rotor{S: cos, E34: sin}
}

// FromRotor embeds a rotor as a motor with no translation
func FromRotor(r Rotor) Motor {
	return Motor{
		S:     r.S,
		E12:   r.E12,
		E13:   r.E13,
		E14:   r.E14,
		E23:   r.E23,
		E24:   r.E24,
		E34:   r.E34,
		E1234: r.E1234,
	}
}

// RotorPart drops the translation-bearing coefficients of the motor
func (m Motor) RotorPart() Rotor {
	return Rotor{
		S:     m.S,
		E12:   m.E12,
		E13:   m.E13,
		E14:   m.E14,
		E23:   m.E23,
		E24:   m.E24,
		E34:   m.E34,
		E1234: m.E1234,
	}
}

// Multivector expands the motor into a full 32-component multivector
func (m Motor) Multivector() Multivector {
	var mv Multivector
	mv[bladeScalar] = m.S
	mv[bladeE01] = m.E01
	mv[bladeE02] = m.E02
	mv[bladeE03] = m.E03
	mv[bladeE04] = m.E04
	mv[bladeE12] = m.E12
	mv[bladeE13] = m.E13
	mv[bladeE14] = m.E14
	mv[bladeE23] = m.E23
	mv[bladeE24] = m.E24
	mv[bladeE34] = m.E34
	mv[bladeE0123] = m.E0123
	mv[bladeE0124] = m.E0124
	mv[bladeE0134] = m.E0134
	mv[bladeE0234] = m.E0234
	mv[bladeE1234] = m.E1234
	return mv
}

// MotorFromMultivector reads the even-graded components back out.
// Odd-grade components are discarded; products of motors never
// produce any.
func MotorFromMultivector(mv Multivector) Motor {
	return Motor{
		S:     mv[bladeScalar],
		E01:   mv[bladeE01],
		E02:   mv[bladeE02],
		E03:   mv[bladeE03],
		E04:   mv[bladeE04],
		E12:   mv[bladeE12],
		E13:   mv[bladeE13],
		E14:   mv[bladeE14],
		E23:   mv[bladeE23],
		E24:   mv[bladeE24],
		E34:   mv[bladeE34],
		E0123: mv[bladeE0123],
		E0124: mv[bladeE0124],
		E0134: mv[bladeE0134],
		E0234: mv[bladeE0234],
		E1234: mv[bladeE1234],
	}
}

// Reverse returns the algebraic reversion of the motor: every bivector
// coefficient flips sign, the scalar and quadvectors are untouched.
// For a unit motor this is the inverse rigid motion.
func (m Motor) Reverse() Motor {
	return Motor{
		S:     m.S,
		E01:   -m.E01,
		E02:   -m.E02,
		E03:   -m.E03,
		E04:   -m.E04,
		E12:   -m.E12,
		E13:   -m.E13,
		E14:   -m.E14,
		E23:   -m.E23,
		E24:   -m.E24,
		E34:   -m.E34,
		E0123: m.E0123,
		E0124: m.E0124,
		E0134: m.E0134,
		E0234: m.E0234,
		E1234: m.E1234,
	}
}

// Then composes two motions; the receiver is applied first
func (m Motor) Then(then Motor) Motor {
	return MotorFromMultivector(m.Multivector().Mul(then.Multivector()))
}

// pointMultivector embeds a 4D point as the quadvector
// (e1 - x e0) ^ (e2 - y e0) ^ (e3 - z e0) ^ (e4 - w e0).
func pointMultivector(p core.Vec4) Multivector {
	var mv Multivector
	mv[bladeE1234] = 1
	mv[bladeE0234] = -p.X
	mv[bladeE0134] = p.Y
	mv[bladeE0124] = -p.Z
	mv[bladeE0123] = p.W
	return mv
}

// directionMultivector embeds a 4D direction as the ideal part of the
// point embedding: the same quadvector without its e1234 weight.
func directionMultivector(d core.Vec4) Multivector {
	var mv Multivector
	mv[bladeE0234] = -d.X
	mv[bladeE0134] = d.Y
	mv[bladeE0124] = -d.Z
	mv[bladeE0123] = d.W
	return mv
}

// extractVec4 inverts the quadvector embedding, assuming a unit motor
// carried the e1234 weight through unchanged.
func extractVec4(mv Multivector) core.Vec4 {
	return core.Vec4{
		X: -mv[bladeE0234],
		Y: mv[bladeE0134],
		Z: -mv[bladeE0124],
		W: mv[bladeE0123],
	}
}

// TransformPoint applies the full rigid motion to a point via the
// sandwich product reverse(m) * P * m.
func (m Motor) TransformPoint(p core.Vec4) core.Vec4 {
	mv := m.Multivector()
	sandwiched := mv.Reverse().Mul(pointMultivector(p)).Mul(mv)
	return extractVec4(sandwiched)
}

// TransformDirection applies only the rotational part of the motion.
// Directions are ideal elements, so the translation coefficients are
// stripped up front rather than relying on them cancelling.
func (m Motor) TransformDirection(d core.Vec4) core.Vec4 {
	return m.RotorPart().TransformDirection(d)
}

// AxisX returns the image of the local x basis direction
func (m Motor) AxisX() core.Vec4 {
	return m.TransformDirection(core.Vec4{X: 1})
}

// AxisY returns the image of the local y basis direction. Hyperplanes
// use this as their transformed surface normal.
func (m Motor) AxisY() core.Vec4 {
	return m.TransformDirection(core.Vec4{Y: 1})
}

// AxisZ returns the image of the local z basis direction
func (m Motor) AxisZ() core.Vec4 {
	return m.TransformDirection(core.Vec4{Z: 1})
}

// AxisW returns the image of the local w basis direction
func (m Motor) AxisW() core.Vec4 {
	return m.TransformDirection(core.Vec4{W: 1})
}

// IsUnit reports whether reverse(m)*m is the scalar 1 within tolerance
func (m Motor) IsUnit(tolerance float64) bool {
	mv := m.Multivector()
	norm := mv.Reverse().Mul(mv)
	for i, c := range norm {
		want := 0.0
		if i == bladeScalar {
			want = 1.0
		}
		if math.Abs(c-want) > tolerance {
			return false
		}
	}
	return true
}

// Motor embeds the rotor as a translation-free motor
func (r Rotor) Motor() Motor {
	return FromRotor(r)
}

// Reverse returns the inverse rotation for a unit rotor
func (r Rotor) Reverse() Rotor {
	return Rotor{
		S:     r.S,
		E12:   -r.E12,
		E13:   -r.E13,
		E14:   -r.E14,
		E23:   -r.E23,
		E24:   -r.E24,
		E34:   -r.E34,
		E1234: r.E1234,
	}
}

// Then composes two rotations; the receiver is applied first
func (r Rotor) Then(then Rotor) Rotor {
	return FromRotor(r).Then(FromRotor(then)).RotorPart()
}

// TransformDirection rotates a direction via the sandwich product
func (r Rotor) TransformDirection(d core.Vec4) core.Vec4 {
	mv := FromRotor(r).Multivector()
	sandwiched := mv.Reverse().Mul(directionMultivector(d)).Mul(mv)
	return extractVec4(sandwiched)
}

// AxisX returns the image of the x basis direction under the rotor
func (r Rotor) AxisX() core.Vec4 {
	return r.TransformDirection(core.Vec4{X: 1})
}

// AxisY returns the image of the y basis direction under the rotor
func (r Rotor) AxisY() core.Vec4 {
	return r.TransformDirection(core.Vec4{Y: 1})
}

// AxisZ returns the image of the z basis direction under the rotor
func (r Rotor) AxisZ() core.Vec4 {
	return r.TransformDirection(core.Vec4{Z: 1})
}

// AxisW returns the image of the w basis direction under the rotor
func (r Rotor) AxisW() core.Vec4 {
	return r.TransformDirection(core.Vec4{W: 1})
}
