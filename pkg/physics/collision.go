package physics

// minSeparation is the center distance below which a pair is considered
// degenerate. Coincident bodies have no meaningful contact normal, so the
// pair is skipped instead of normalizing a zero-length vector.
const minSeparation = 1e-9

// ResolveCollision applies an impulse-based correction to one unordered
// pair of bodies. Call it once per pair per step.
//
// Overlapping bodies that are separating (closing speed >= 0) are left
// untouched, positions included: the positional push stays coupled to the
// approaching branch.
func ResolveCollision(a, b *Body) {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	sumRadius := a.Radius + b.Radius

	if dist >= sumRadius {
		return
	}
	if dist < minSeparation {
		// degenerate pair, skip
		return
	}

	normal := delta.Mul(1 / dist)
	closing := normal.Dot(b.Vel.Sub(a.Vel))
	if closing >= 0 {
		return
	}

	// Restitution-weighted velocity blend, both bodies treated as unit mass.
	impulse := (2 * closing) / (1/a.Restitution + 1/b.Restitution)
	a.Vel = a.Vel.Add(normal.Mul(impulse / a.Restitution))
	b.Vel = b.Vel.Sub(normal.Mul(impulse / b.Restitution))

	// Push the bodies apart so they end the step exactly in contact.
	penetration := sumRadius - dist
	half := normal.Mul(penetration * 0.5)
	a.Pos = a.Pos.Sub(half)
	b.Pos = b.Pos.Add(half)
}
