package simulation

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"bounce-sim/pkg/physics"
)

// --- World ---
// World owns the body collection. It is the only mutable shared state:
// exactly one goroutine mutates it through Spawn and Step, and rendering
// reads a snapshot only after Step has returned.
type World struct {
	cfg    Config
	bodies []physics.Body
	rng    *rand.Rand
}

// DrawCommand is one entry of the per-frame render hand-off.
type DrawCommand struct {
	Pos    physics.Vec2
	Radius float64
	Color  color.RGBA
}

// NewWorld creates an empty world. The rng feeds spawn colors only; seed it
// in tests for reproducible runs.
func NewWorld(cfg Config, rng *rand.Rand) *World {
	return &World{cfg: cfg, rng: rng}
}

// Spawn appends a body at rest at (x, y) with a uniform-random color.
// Existing bodies are never touched.
func (w *World) Spawn(x, y float64) {
	c := colorful.Color{R: w.rng.Float64(), G: w.rng.Float64(), B: w.rng.Float64()}
	cr, cg, cb := c.RGB255()
	w.bodies = append(w.bodies, physics.Body{
		Pos:         physics.Vec2{X: x, Y: y},
		Radius:      w.cfg.Radius,
		Restitution: w.cfg.Restitution,
		ColorC:      color.RGBA{cr, cg, cb, 255},
	})
}

// Step advances the simulation by one tick: integrate every body, resolve
// the arena bounds for every body, then resolve every unordered pair once.
// Runs to completion before any caller reads the world.
func (w *World) Step() {
	width := float64(w.cfg.Width)
	height := float64(w.cfg.Height)

	for i := range w.bodies {
		physics.Integrate(&w.bodies[i], w.cfg.Gravity, w.cfg.Dt)
	}
	for i := range w.bodies {
		physics.ResolveBounds(&w.bodies[i], width, height)
	}
	for i := 0; i < len(w.bodies)-1; i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			physics.ResolveCollision(&w.bodies[i], &w.bodies[j])
		}
	}
}

// Snapshot returns the draw list for the current state, in insertion order.
// The slice is freshly allocated; the caller may keep it for one frame.
func (w *World) Snapshot() []DrawCommand {
	out := make([]DrawCommand, len(w.bodies))
	for i := range w.bodies {
		out[i] = DrawCommand{
			Pos:    w.bodies[i].Pos,
			Radius: w.bodies[i].Radius,
			Color:  w.bodies[i].ColorC,
		}
	}
	return out
}

func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies exposes the body slice for tests and inspection. Callers must not
// hold it across a Step.
func (w *World) Bodies() []physics.Body {
	return w.bodies
}
