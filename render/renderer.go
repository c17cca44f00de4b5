package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/game"
	"github.com/lixenwraith/portfolio-walk/overlay"
	"github.com/lixenwraith/portfolio-walk/parameter"
)

// Config tunes the terminal layout
type Config struct {
	ColumnsPerUnit float64
	RowsPerUnit    float64
	Bound          float64
	Threshold      float64
	PanelWidth     int
	HelpWidth      int

	// CellWidthPx is the logical pixel width of a cell, cells are twice as tall
	CellWidthPx float64
}

// DefaultConfig returns the tuned layout
func DefaultConfig() Config {
	return Config{
		ColumnsPerUnit: parameter.TerminalColumnsPerUnit,
		RowsPerUnit:    parameter.TerminalRowsPerUnit,
		Bound:          parameter.AvatarBound,
		Threshold:      parameter.ProximityThreshold,
		PanelWidth:     parameter.InfoPanelWidth,
		HelpWidth:      parameter.HelpPanelWidth,
		CellWidthPx:    parameter.TerminalCellWidthPx,
	}
}

// Renderer draws frames onto a screen
type Renderer struct {
	screen   tcell.Screen
	cfg      Config
	registry *exhibit.Registry
	base     tcell.Style
}

// NewRenderer creates a renderer for the given exhibits
func NewRenderer(screen tcell.Screen, registry *exhibit.Registry, cfg Config) *Renderer {
	return &Renderer{
		screen:   screen,
		cfg:      cfg,
		registry: registry,
		base:     tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
}

// Projection returns the mapping used for a frame
func (r *Renderer) Projection(f game.Frame) Projection {
	w, h := r.screen.Size()
	return Projection{
		Width:          w,
		Height:         h,
		Center:         mgl64.Vec2{f.Camera.Target.X(), f.Camera.Target.Z()},
		ColumnsPerUnit: r.cfg.ColumnsPerUnit,
		RowsPerUnit:    r.cfg.RowsPerUnit,
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(f game.Frame) {
	w, h := r.screen.Size()
	fill(r.screen, 0, 0, w, h, r.base)

	if f.Loading.Active {
		r.drawLoading(f.Loading, w, h)
		r.screen.Show()
		return
	}

	p := r.Projection(f)
	r.drawFloor(p)
	r.drawExhibits(p, f)
	r.drawAvatar(p, f)
	r.drawStatus(f, w, h)
	if f.Help != nil {
		r.drawHelp(*f.Help, w)
	}
	if f.Panel != nil {
		r.drawPanel(*f.Panel, w, h)
	}
	if f.Joystick != nil {
		r.drawJoystick(*f.Joystick, h)
	}
	r.screen.Show()
}

func (r *Renderer) drawFloor(p Projection) {
	dot := r.base.Foreground(RgbFloorDot)
	edge := r.base.Foreground(RgbBounds)
	b := r.cfg.Bound
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			pt := p.Unproject(col, row)
			if math.Abs(pt.X()) > b || math.Abs(pt.Y()) > b {
				continue
			}
			// Integer grid crossings every two units
			if math.Abs(pt.X()-2*math.Round(pt.X()/2)) < 0.5/p.ColumnsPerUnit &&
				math.Abs(pt.Y()-2*math.Round(pt.Y()/2)) < 0.5/p.RowsPerUnit {
				r.screen.SetContent(col, row, '·', nil, dot)
			}
		}
	}

	// Bounding box
	x0, z0, _ := p.Project(mgl64.Vec3{-b, 0, -b})
	x1, z1, _ := p.Project(mgl64.Vec3{b, 0, b})
	for col := x0; col <= x1; col++ {
		r.set(p, col, z0, '─', edge)
		r.set(p, col, z1, '─', edge)
	}
	for row := z0; row <= z1; row++ {
		r.set(p, x0, row, '│', edge)
		r.set(p, x1, row, '│', edge)
	}
	r.set(p, x0, z0, '┌', edge)
	r.set(p, x1, z0, '┐', edge)
	r.set(p, x0, z1, '└', edge)
	r.set(p, x1, z1, '┘', edge)
}

func (r *Renderer) set(p Projection, col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= p.Width || row < 0 || row >= p.Height {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) drawExhibits(p Projection, f game.Frame) {
	ring := r.base.Foreground(RgbRadius)
	for i := 0; i < r.registry.Len(); i++ {
		e := r.registry.At(i)

		// Proximity ring on the floor, 3D distance is measured from avatar height so it is a hint only
		for a := 0; a < 32; a++ {
			th := float64(a) * 2 * math.Pi / 32
			pt := e.Position.Add(mgl64.Vec3{math.Cos(th) * r.cfg.Threshold, 0, math.Sin(th) * r.cfg.Threshold})
			if col, row, ok := p.Project(pt); ok {
				r.screen.SetContent(col, row, '.', nil, ring)
			}
		}

		col, row, ok := p.Project(e.Position)
		if !ok {
			continue
		}
		style := r.base.Foreground(hexColor(e.Color)).Bold(true)
		if i == f.Active {
			style = style.Reverse(true)
		}
		r.screen.SetContent(col, row, glyphFor(e.Kind), nil, style)
		if row+1 < p.Height {
			drawText(r.screen, col-len(e.Title)/2, row+1, p.Width, r.base.Foreground(RgbTextDim), e.Title)
		}
	}
}

func (r *Renderer) drawAvatar(p Projection, f game.Frame) {
	col, row, ok := p.Project(f.Avatar.Position)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, HeadingGlyph(f.Avatar.Yaw), nil, r.base.Foreground(RgbAvatar).Bold(true))
}

func (r *Renderer) drawStatus(f game.Frame, w, h int) {
	pos := f.Avatar.Position
	line := fmt.Sprintf(" x %+6.2f  z %+6.2f  speed %4.2f  %s  %s  [q]uit [x] close [esc] hide [h]elp",
		pos.X(), pos.Z(), f.Avatar.Velocity.Len(), f.Mode, f.Animation)
	drawText(r.screen, 0, h-1, w, r.base.Foreground(RgbTextDim), line)
}

func (r *Renderer) drawPanel(v overlay.PanelView, w, h int) {
	pw := min(r.cfg.PanelWidth, w-2)
	if pw < 8 {
		return
	}
	inner := pw - 4

	header := r.base.Background(hexColor(v.Palette.Background)).Foreground(tcell.ColorWhite)
	accent := r.base.Background(RgbPanelBody).Foreground(hexColor(v.Palette.Accent))
	body := r.base.Background(RgbPanelBody).Foreground(RgbText)
	dim := body.Foreground(RgbTextDim)
	if v.Closing {
		header = header.Dim(true)
		body = body.Dim(true)
		dim = dim.Dim(true)
		accent = accent.Dim(true)
	}

	type line struct {
		text  string
		style tcell.Style
	}
	var lines []line
	for _, l := range wrap(v.Description, inner) {
		lines = append(lines, line{l, dim})
	}
	lines = append(lines, line{"", body})
	for _, d := range v.Details {
		switch d.Kind {
		case overlay.DetailHeader:
			for _, l := range wrap(d.Text, inner) {
				lines = append(lines, line{l, accent.Bold(true)})
			}
		case overlay.DetailBullet:
			for i, l := range wrap(d.Text, inner-4) {
				prefix := "  → "
				if i > 0 {
					prefix = "    "
				}
				lines = append(lines, line{prefix + l, body})
			}
		default:
			for i, l := range wrap(d.Text, inner-2) {
				prefix := "• "
				if i > 0 {
					prefix = "  "
				}
				lines = append(lines, line{prefix + l, body})
			}
		}
	}

	// Two header rows, body, one padding row
	maxBody := h - 2 - 4
	if maxBody < 1 {
		return
	}
	if len(lines) > maxBody {
		lines = lines[:maxBody]
	}
	ph := 2 + len(lines) + 1
	x := (w - pw) / 2
	y := h - 2 - ph

	fill(r.screen, x, y, pw, 2, header)
	drawText(r.screen, x+2, y, inner, header, v.Label+" ›")
	drawText(r.screen, x+2, y+1, inner, header.Bold(true), v.Title)
	drawText(r.screen, x+pw-3, y, 1, header, "x")

	fill(r.screen, x, y+2, pw, len(lines)+1, body)
	for i, l := range lines {
		drawText(r.screen, x+2, y+2+i, inner, l.style, l.text)
	}
}

func (r *Renderer) drawHelp(v overlay.HelpView, w int) {
	style := r.base.Background(RgbHelpBody).Foreground(RgbText)
	if v.Collapsed {
		fill(r.screen, w-4, 0, 3, 1, style)
		drawText(r.screen, w-3, 0, 1, style, "?")
		return
	}
	hw := min(r.cfg.HelpWidth, w)
	x := w - hw
	fill(r.screen, x, 0, hw, len(v.Lines)+2, style)
	drawText(r.screen, x+1, 0, hw-2, style.Bold(true), "Controls")
	for i, l := range v.Lines {
		drawText(r.screen, x+1, 1+i, hw-2, style.Foreground(RgbTextDim), l)
	}
}

func (r *Renderer) drawLoading(l game.LoadingFrame, w, h int) {
	title := "Initializing 3D Experience..."
	y := h / 2
	drawText(r.screen, (w-len(title))/2, y-2, w, r.base.Bold(true), title)

	barWidth := min(40, w-4)
	if barWidth <= 0 {
		return
	}
	x := (w - barWidth) / 2
	filled := int(math.Round(l.Progress / parameter.LoadingComplete * float64(barWidth)))
	for i := 0; i < barWidth; i++ {
		style := r.base.Foreground(RgbFloorDot)
		ch := '░'
		if i < filled {
			style = r.base.Foreground(lerpColor(RgbProgressLo, RgbProgressHi, float64(i)/float64(barWidth)))
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
	pct := fmt.Sprintf("%d%%", int(math.Round(l.Progress)))
	drawText(r.screen, (w-len(pct))/2, y+2, w, r.base.Foreground(RgbTextDim), pct)
}

// JoystickAnchor returns the cell the virtual pad is centred on
func JoystickAnchor(h int) (col, row int) {
	return 8, h - 5
}

func (r *Renderer) drawJoystick(j game.JoystickFrame, h int) {
	style := r.base.Foreground(RgbJoystick)
	if !j.Active {
		style = style.Dim(true)
	}
	if r.cfg.CellWidthPx <= 0 {
		return
	}
	cx, cy := JoystickAnchor(h)
	rx := j.Size / 3 / r.cfg.CellWidthPx
	ry := rx / 2
	for a := 0; a < 16; a++ {
		th := float64(a) * 2 * math.Pi / 16
		r.screen.SetContent(cx+int(math.Round(math.Cos(th)*rx)), cy+int(math.Round(math.Sin(th)*ry)), '·', nil, style)
	}
	kx := int(math.Round(j.Knob.X() / r.cfg.CellWidthPx))
	ky := int(math.Round(j.Knob.Y() / (2 * r.cfg.CellWidthPx)))
	r.screen.SetContent(cx+kx, cy+ky, '●', nil, style.Bold(true))
}
