package overlay

import "github.com/lixenwraith/portfolio-walk/core"

// Palette colours one exhibit kind's panel as hex strings
type Palette struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Accent     string `json:"accent"`
}

var palettes = map[core.Kind]Palette{
	core.KindEducation:  {Background: "#4f46e5", Border: "#6366f1", Accent: "#a5b4fc"},
	core.KindExperience: {Background: "#2563eb", Border: "#3b82f6", Accent: "#93c5fd"},
	core.KindProjects:   {Background: "#059669", Border: "#10b981", Accent: "#6ee7b7"},
	core.KindSkills:     {Background: "#d97706", Border: "#f59e0b", Accent: "#fcd34d"},
	core.KindAbout:      {Background: "#db2777", Border: "#ec4899", Accent: "#f9a8d4"},
	core.KindContact:    {Background: "#9333ea", Border: "#a855f7", Accent: "#d8b4fe"},
}

var neutralPalette = Palette{Background: "#374151", Border: "#6b7280", Accent: "#d1d5db"}

// PaletteFor returns the kind's palette, neutral grey for KindNone
func PaletteFor(kind core.Kind) Palette {
	if p, ok := palettes[kind]; ok {
		return p
	}
	return neutralPalette
}
