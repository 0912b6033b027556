package physics

// Integrate advances one body by one step of semi-implicit Euler under
// constant downward gravity: velocity is updated first, then position from
// the new velocity. The order is what makes gravity-only trajectories exact.
func Integrate(b *Body, gravity, dt float64) {
	b.Vel.Y += gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}
