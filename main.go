package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"

	"bounce-sim/pkg/render"
	"bounce-sim/pkg/simulation"
)

// Game ---
type Game struct {
	world  *simulation.World
	cfg    simulation.Config
	paused bool
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	// left click drops a new body at the cursor
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.world.Spawn(float64(mx), float64(my))
	}

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.world.Step()
		}
		return nil
	}

	g.world.Step()
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.BackgroundColor())

	canvas := render.New(screen)
	for _, cmd := range g.world.Snapshot() {
		canvas.FillCircle(cmd.Pos.X, cmd.Pos.Y, cmd.Radius, cmd.Color)
	}

	// preview ring where the next body would land
	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < g.cfg.Width && my < g.cfg.Height {
		vector.StrokeCircle(screen, float32(mx), float32(my), float32(g.cfg.Radius), 1, color.RGBA{120, 120, 120, 160}, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Bodies: %d\nPaused: %v", g.world.Len(), g.paused))
	text.Draw(screen, g.cfg.Name, basicfont.Face7x13, 8, g.cfg.Height-8, color.RGBA{90, 90, 90, 255})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	envName := flag.String("env", "", "environment under assets/ (e.g. classic, moon)")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *envName != "" {
		var err error
		cfg, err = simulation.LoadConfig(filepath.Join("assets", fmt.Sprintf("%s.json", *envName)))
		if err != nil {
			log.Fatalf("Loading environment: %v", err)
		}
	}

	game := &Game{
		world: simulation.NewWorld(cfg, rand.New(rand.NewSource(time.Now().UnixNano()))),
		cfg:   cfg,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Bounce - " + cfg.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
