package core

// Hit is the result of an intersection test. When Hit is false the
// remaining fields are unspecified and must be ignored.
type Hit struct {
	Hit      bool
	Distance float64
	Position Vec4
	Normal   Vec4
	Color    Vec3
}

// NoHit is the sentinel returned by intersection tests that miss.
func NoHit() Hit {
	return Hit{}
}
