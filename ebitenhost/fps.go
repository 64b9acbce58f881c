package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often the overlay text is refreshed, in seconds.
const fpsInterval = 0.5

// fpsOverlay prints FPS and TPS in the top-left corner.
type fpsOverlay struct {
	elapsed float64
	text    string
}

func (f *fpsOverlay) update(dt float64) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < fpsInterval {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, f.text)
}
