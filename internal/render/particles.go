//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"smarticles/pkg/vec"
)

// particleRadius is the on-screen particle radius in world units.
const particleRadius = 1.0

// arenaMargin is drawn between the world radius and the arena outline so
// particles held by the boundary spring stay visibly inside the circle.
const arenaMargin = 60.0

// FramePainter renders the arena outline and per-class particle dots.
type FramePainter struct {
	arenaColor color.RGBA
}

// NewFramePainter returns a painter with the default arena outline color.
func NewFramePainter() *FramePainter {
	return &FramePainter{arenaColor: color.RGBA{R: 200, G: 200, B: 200, A: 255}}
}

// Draw renders one frame. positions is the published per-class position
// table, palette supplies one color per class, center is the screen-space
// location of the world origin and zoom converts world units to pixels.
func (fp *FramePainter) Draw(screen *ebiten.Image, positions [][]vec.Vec2, palette []color.RGBA, worldRadius float32, center vec.Vec2, zoom float32) {
	vector.StrokeCircle(screen, center.X, center.Y, (worldRadius+arenaMargin)*zoom, 1, fp.arenaColor, true)

	if len(palette) == 0 {
		return
	}
	for c, class := range positions {
		col := palette[c%len(palette)]
		for _, p := range class {
			vector.DrawFilledCircle(screen, center.X+p.X*zoom, center.Y+p.Y*zoom, particleRadius*zoom, col, true)
		}
	}
}
