package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/game"
)

// MockScreen is a minimal recording mock for tcell.Screen
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Clear()           { clear(m.cells) }
func (m *MockScreen) Show()            { m.shows++ }

func (m *MockScreen) SetContent(x, y int, mainc rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		r, ok := m.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (m *MockScreen) contains(s string) bool {
	for y := 0; y < m.height; y++ {
		if strings.Contains(m.row(y), s) {
			return true
		}
	}
	return false
}

func (m *MockScreen) count(r rune) int {
	n := 0
	for _, c := range m.cells {
		if c == r {
			n++
		}
	}
	return n
}

func TestProjection(t *testing.T) {
	p := Projection{Width: 80, Height: 24, Center: mgl64.Vec2{0, 0}, ColumnsPerUnit: 3, RowsPerUnit: 1.5}

	col, row, ok := p.Project(mgl64.Vec3{0, 1, 0})
	if !ok || col != 40 || row != 12 {
		t.Errorf("origin -> (%d,%d,%v)", col, row, ok)
	}
	col, row, _ = p.Project(mgl64.Vec3{2, 0, -4})
	if col != 46 || row != 6 {
		t.Errorf("(2,-4) -> (%d,%d), want (46,6)", col, row)
	}
	if _, _, ok := p.Project(mgl64.Vec3{100, 0, 0}); ok {
		t.Error("far point reported on screen")
	}

	pt := p.Unproject(46, 6)
	if c, r, _ := p.Project(mgl64.Vec3{pt.X(), 0, pt.Y()}); c != 46 || r != 6 {
		t.Errorf("round trip -> (%d,%d)", c, r)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, 'v'},
		{math.Pi / 2, '>'},
		{math.Pi, '^'},
		{-math.Pi / 2, '<'},
		{3 * math.Pi / 2, '<'},
		{math.Pi / 4, '\\'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.yaw); got != tt.want {
			t.Errorf("HeadingGlyph(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	got := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrap = %q, want %q", got, want)
	}
	for _, l := range wrap("supercalifragilistic word", 8) {
		if len(l) > 8 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if wrap("x", 0) != nil {
		t.Error("zero width should yield nil")
	}
}

func TestHexColor(t *testing.T) {
	if hexColor("#fff") != hexColor("#ffffff") {
		t.Error("short hex should expand")
	}
	if hexColor("not a color") != tcell.ColorWhite {
		t.Error("invalid hex should fall back to white")
	}
}

func newWorld(t *testing.T) *game.Game {
	t.Helper()
	reg, err := exhibit.Default()
	if err != nil {
		t.Fatal(err)
	}
	g := game.New(reg, game.DefaultOptions())
	t.Cleanup(g.Close)
	return g
}

func TestDrawLoadingScreen(t *testing.T) {
	g := newWorld(t)
	g.Store().SetLoadingProgress(42)

	screen := newMockScreen(80, 24)
	NewRenderer(screen, g.Registry(), DefaultConfig()).Draw(g.Frame())

	if !screen.contains("42%") || !screen.contains("Initializing") {
		t.Error("loading screen missing progress")
	}
	if screen.count('█') == 0 {
		t.Error("progress bar not drawn")
	}
	if screen.shows != 1 {
		t.Errorf("shows = %d", screen.shows)
	}
}

func TestDrawScene(t *testing.T) {
	g := newWorld(t)
	g.Store().SetLoading(false)

	g.KeyDown("w")
	for i := 0; i < 1000 && g.ActiveExhibit() < 0; i++ {
		g.Tick(16 * time.Millisecond)
	}
	g.KeyUp("w")

	screen := newMockScreen(100, 40)
	r := NewRenderer(screen, g.Registry(), DefaultConfig())
	f := g.Frame()
	r.Draw(f)

	if !screen.contains("PROJECTS") {
		t.Error("info panel label missing")
	}
	if !screen.contains("Minesweeper") {
		t.Error("detail header missing")
	}
	if screen.count('┌') != 1 {
		t.Error("bounds corner missing")
	}
}

func TestDrawAvatar(t *testing.T) {
	g := newWorld(t)
	g.Store().SetLoading(false)
	g.Tick(16 * time.Millisecond)

	screen := newMockScreen(100, 40)
	r := NewRenderer(screen, g.Registry(), DefaultConfig())
	f := g.Frame()
	r.Draw(f)

	col, row, ok := r.Projection(f).Project(f.Avatar.Position)
	if !ok {
		t.Fatal("avatar off screen")
	}
	if got := screen.cells[[2]int{col, row}]; got != 'v' {
		t.Errorf("avatar cell = %q, want 'v' facing +Z", got)
	}
	if !screen.contains("Controls") {
		t.Error("help overlay missing")
	}
}
