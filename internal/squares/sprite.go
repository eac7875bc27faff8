package squares

import (
	"github.com/TheBitDrifter/ledger"
	"github.com/gdamore/tcell/v2"
)

// The play field is FieldWidth x FieldHeight units centred on the origin.
const (
	FieldWidth  = 240
	FieldHeight = 160
)

// Tiles of the squares sheet
const (
	TileRed = iota
	TileBlue
	TileYellow
	tileCount
)

var tileColors = [tileCount]tcell.Color{
	TileRed:    tcell.ColorRed,
	TileBlue:   tcell.ColorBlue,
	TileYellow: tcell.ColorYellow,
}

var (
	smallGlyphs = [2]rune{'■', '◆'}
	largeGlyphs = [2]rune{'█', '◈'}
)

// Sprite is a handle the renderer draws each frame. Systems write its
// position, rotation, scale, tile and visibility; nothing else reads them.
type Sprite struct {
	X, Y    float64
	Angle   int
	Scale   float64
	Tile    int
	Visible bool

	renderer *Renderer
}

// Free removes the sprite from its renderer. Freeing twice does nothing.
func (s *Sprite) Free() {
	if s.renderer == nil {
		return
	}
	s.renderer.free(s)
	s.renderer = nil
}

func (s *Sprite) glyph() rune {
	quadrant := (s.Angle / 45) % 2
	if s.Scale > 1 {
		return largeGlyphs[quadrant]
	}
	return smallGlyphs[quadrant]
}

// Renderer draws sprites onto a tcell screen, scaling the play field to the
// terminal size.
type Renderer struct {
	screen  tcell.Screen
	sprites *ledger.Vector[*Sprite]
}

func NewRenderer(screen tcell.Screen, capacity int) *Renderer {
	return &Renderer{
		screen:  screen,
		sprites: ledger.NewVector[*Sprite](capacity),
	}
}

// NewSprite creates a visible sprite at (x, y) showing tile.
func (r *Renderer) NewSprite(x, y float64, tile int) *Sprite {
	s := &Sprite{
		X:        x,
		Y:        y,
		Scale:    1,
		Tile:     tile,
		Visible:  true,
		renderer: r,
	}
	r.sprites.PushBack(s)
	return s
}

func (r *Renderer) free(s *Sprite) {
	for i, v := range r.sprites.All() {
		if v == s {
			r.sprites.Erase(i)
			return
		}
	}
}

// Len returns the number of live sprites.
func (r *Renderer) Len() int {
	return r.sprites.Len()
}

// Cell maps a field position to a screen cell.
func (r *Renderer) Cell(x, y float64) (col, row int) {
	w, h := r.screen.Size()
	col = int((x + FieldWidth/2) / FieldWidth * float64(max(w-1, 0)))
	row = int((y + FieldHeight/2) / FieldHeight * float64(max(h-1, 0)))
	return col, row
}

// Draw renders every visible sprite and a status line, then shows the frame.
func (r *Renderer) Draw(status string) {
	r.screen.Clear()
	for s := range r.sprites.Values() {
		if !s.Visible {
			continue
		}
		col, row := r.Cell(s.X, s.Y)
		style := tcell.StyleDefault.Foreground(tileColors[s.Tile%tileCount])
		r.screen.SetContent(col, row, s.glyph(), nil, style)
	}
	r.drawText(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.Show()
}

func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if col >= w {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
