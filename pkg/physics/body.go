package physics

import "image/color"

// --- Physical body ---
// A body is a circular particle. Radius and Restitution are per-body fields
// even though every spawned body currently shares the same constants.
type Body struct {
	Pos         Vec2
	Vel         Vec2
	Radius      float64
	Restitution float64 // fraction of speed kept after a bounce, in (0, 1]
	ColorC      color.RGBA
}

func (b Body) Color() color.Color {
	return b.ColorC
}
