package physics

// ResolveBounds clamps a body back inside the arena and reflects its
// velocity on the axis it crossed, scaled by the body's restitution.
//
// The floor is always checked; left and right are mutually exclusive within
// one step. There is deliberately no ceiling check: bodies may leave through
// the top and fall back in.
func ResolveBounds(b *Body, width, height float64) {
	if b.Pos.Y+b.Radius >= height {
		b.Pos.Y = height - b.Radius
		b.Vel.Y = -b.Vel.Y * b.Restitution
	}

	if b.Pos.X-b.Radius <= 0 {
		b.Pos.X = b.Radius
		b.Vel.X = -b.Vel.X * b.Restitution
	} else if b.Pos.X+b.Radius >= width {
		b.Pos.X = width - b.Radius
		b.Vel.X = -b.Vel.X * b.Restitution
	}
}
