package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float64
}

// LinearColor is an RGBA color with channels in [0, 1].
type LinearColor struct {
	R, G, B, A float64
}

// Vec4 returns the color as a plain 4D vector, the layout expected by the
// host material parameter interface.
func (c LinearColor) Vec4() Vec4 {
	return Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}
