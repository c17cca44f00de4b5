// Package render draws a world frame top-down onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-walk/core"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorDot   = tcell.NewRGBColor(52, 54, 72)    // Grid dots
	RgbBounds     = tcell.NewRGBColor(90, 92, 120)   // Walkable area edge
	RgbAvatar     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbRadius     = tcell.NewRGBColor(60, 62, 84)    // Proximity ring
	RgbText       = tcell.NewRGBColor(230, 230, 230) // Panel body
	RgbTextDim    = tcell.NewRGBColor(156, 163, 175) // gray-400
	RgbPanelBody  = tcell.NewRGBColor(17, 17, 17)    // black/70 over the scene
	RgbHelpBody   = tcell.NewRGBColor(30, 30, 36)
	RgbProgressLo = tcell.NewRGBColor(59, 130, 246) // blue-500
	RgbProgressHi = tcell.NewRGBColor(168, 85, 247) // purple-500
	RgbJoystick   = tcell.NewRGBColor(200, 200, 200)
)

// kindGlyphs mark exhibits on the floor plan
var kindGlyphs = map[core.Kind]rune{
	core.KindEducation:  'E',
	core.KindExperience: 'X',
	core.KindProjects:   'P',
	core.KindSkills:     'S',
	core.KindAbout:      'A',
	core.KindContact:    'C',
}

func glyphFor(kind core.Kind) rune {
	if r, ok := kindGlyphs[kind]; ok {
		return r
	}
	return '?'
}

// hexColor parses "#rrggbb" or "#rgb", falling back to white
func hexColor(hex string) tcell.Color {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return tcell.ColorWhite
	}
	return c
}

// lerpColor blends two RGB colors by t in [0,1]
func lerpColor(a, b tcell.Color, t float64) tcell.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 { return x + int32(float64(y-x)*t) }
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
