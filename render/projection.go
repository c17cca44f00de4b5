package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps the floor plane onto terminal cells, centred on a world point
// +X is right on screen and +Z is down, so walking forward moves the avatar up
type Projection struct {
	Width, Height  int
	Center         mgl64.Vec2 // world (x, z) at the screen centre
	ColumnsPerUnit float64
	RowsPerUnit    float64
}

// Project returns the cell for a world position and whether it is on screen
func (p Projection) Project(world mgl64.Vec3) (col, row int, ok bool) {
	cx := float64(p.Width) / 2
	cy := float64(p.Height) / 2
	col = int(math.Floor(cx + (world.X()-p.Center.X())*p.ColumnsPerUnit))
	row = int(math.Floor(cy + (world.Z()-p.Center.Y())*p.RowsPerUnit))
	ok = col >= 0 && col < p.Width && row >= 0 && row < p.Height
	return col, row, ok
}

// Unproject returns the floor point under a cell centre
func (p Projection) Unproject(col, row int) mgl64.Vec2 {
	cx := float64(p.Width) / 2
	cy := float64(p.Height) / 2
	return mgl64.Vec2{
		p.Center.X() + (float64(col)+0.5-cx)/p.ColumnsPerUnit,
		p.Center.Y() + (float64(row)+0.5-cy)/p.RowsPerUnit,
	}
}

// headingGlyphs index by yaw octant starting at +Z and turning toward +X
var headingGlyphs = [8]rune{'v', '\\', '>', '/', '^', '\\', '<', '/'}

// HeadingGlyph returns an arrow for a yaw where 0 faces +Z
func HeadingGlyph(yaw float64) rune {
	oct := int(math.Round(yaw/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return headingGlyphs[oct]
}
