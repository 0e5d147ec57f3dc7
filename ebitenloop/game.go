package ebitenloop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/animated"
)

// Game adapts a Driver and a pair of callbacks to ebiten.Game.
type Game struct {
	Driver *Driver

	// UpdateFunc runs before the driver fires its frames. Optional.
	UpdateFunc func() error

	// DrawFunc renders the current state. Optional.
	DrawFunc func(screen *ebiten.Image)

	// Width and Height fix the logical screen size. Zero uses the outside
	// size.
	Width, Height int

	// Stats, when set, is shown in the top-left corner along with the
	// actual FPS and TPS.
	Stats *animated.Manager
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.UpdateFunc != nil {
		if err := g.UpdateFunc(); err != nil {
			return err
		}
	}
	g.Driver.Update()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
	if g.Stats != nil {
		drawStats(screen, g.Stats)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}
	return outsideWidth, outsideHeight
}

var statsBackground = color.RGBA{0, 0, 0, 128}

// statsRect fits three lines of the debug font.
var statsRect = image.Rect(0, 0, 120, 48)

func statsText(m *animated.Manager) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nValues: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), m.NumValues())
}

func drawStats(screen *ebiten.Image, m *animated.Manager) {
	screen.SubImage(screen.Bounds().Intersect(statsRect)).(*ebiten.Image).Fill(statsBackground)
	ebitenutil.DebugPrint(screen, statsText(m))
}
