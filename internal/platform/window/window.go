// Package window is the desktop frontend. It draws the game with ebiten at
// its native pixel resolution, scaled to the window.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/platform"
	"github.com/vovakirdan/flappyball/internal/platform/window/scene"
)

// activateKeys start a session or flap.
var activateKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}

// quitKeys end the run.
var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// Game adapts the driver to ebiten.Game.
type Game struct {
	driver *platform.Driver
	width  int
	height int
}

// New creates an ebiten game for a logical screen of width x height pixels.
func New(d *platform.Driver, width, height int) *Game {
	return &Game{driver: d, width: width, height: height}
}

// Update reads input and steps the game once.
func (g *Game) Update() error {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.driver.Push(core.ActionQuit)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		g.driver.Push(core.ActionQuit)
	}
	for _, k := range activateKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.driver.Push(core.ActionActivate)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.driver.Push(core.ActionActivate)
	}

	g.driver.Step(time.Now())
	if g.driver.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := scene.Build(g.driver.Snapshot())

	screen.Fill(sc.Background)
	for _, s := range sc.Shapes {
		switch s.Kind {
		case scene.ShapeRect:
			vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Color, false)
		case scene.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.R), s.Color, true)
		}
	}
	for _, l := range sc.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout keeps the logical resolution fixed regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window scaled by scale and blocks until the player quits or
// closes it.
func Run(d *platform.Driver, width, height, tickRate int, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(width)*scale), int(float64(height)*scale))
	ebiten.SetWindowTitle("Flappy Ball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}

	err := ebiten.RunGame(New(d, width, height))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
