package core

// Ray represents a ray in 4D space with an origin and direction.
// Intersection math expects Direction to be unit length; ray
// generation normalizes, nothing downstream re-checks.
type Ray struct {
	Origin    Vec4
	Direction Vec4
}

// NewRay creates a new ray
func NewRay(origin, direction Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
