package render

import (
	"fmt"

	"emoji-stash/internal/item"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	// CellWidth is the terminal width of one slot: glyph (2 columns), a space
	// and up to four digits of stack size, plus a gap.
	CellWidth = 8
	// HUDHeight is the number of rows reserved at the bottom of the screen.
	HUDHeight = 5
	gridTop   = 2
)

// View is everything the renderer needs to draw one frame of the stash.
type View struct {
	Slots    []*item.Item
	Columns  int
	Cursor   int
	Mark     int                   // slot picked for a swap; -1 for none
	Usable   func(*item.Item) bool // nil: everything usable
	Title    string
	Status   string
	Messages []string
}

// Renderer draws the stash onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	top    int // first grid row on screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawFrame renders the title bar, the slot grid, the detail panel for the
// cursor slot and the HUD, then shows the screen.
func (r *Renderer) DrawFrame(v View) {
	r.screen.Clear()
	sw, _ := r.screen.Size()

	occupied := 0
	for _, it := range v.Slots {
		if it != nil {
			occupied++
		}
	}
	r.drawText(0, 0, fmt.Sprintf("%s  [%d/%d]", v.Title, occupied, len(v.Slots)), styleTitle)
	hints := "[hjkl] Move [a] Loot [s] Sort [u] Use [d] Drop [m] Swap [e] Expand [Tab] Hero [q] Quit"
	if hw := runewidth.StringWidth(hints); hw+40 < sw {
		r.drawText(sw-hw, 0, hints, styleDim)
	}
	r.drawHLine(1, tcell.ColorGray)

	r.drawGrid(v)

	panelX := max(v.Columns, 1)*CellWidth + 2
	var sel *item.Item
	if v.Cursor >= 0 && v.Cursor < len(v.Slots) {
		sel = v.Slots[v.Cursor]
	}
	r.drawDetail(panelX, gridTop, sel, v.Cursor, v.Usable)

	r.drawHUD(v.Status, v.Messages)
	r.screen.Show()
}

// visibleRows is how many grid rows fit between the title and the HUD.
func (r *Renderer) visibleRows() int {
	_, sh := r.screen.Size()
	return max(sh-gridTop-HUDHeight, 1)
}

// scrollTo keeps the cursor's row on screen.
func (r *Renderer) scrollTo(row int) {
	rows := r.visibleRows()
	if row < r.top {
		r.top = row
	}
	if row >= r.top+rows {
		r.top = row - rows + 1
	}
	if r.top < 0 {
		r.top = 0
	}
}

func (r *Renderer) drawGrid(v View) {
	cols := max(v.Columns, 1)
	r.scrollTo(v.Cursor / cols)
	rows := r.visibleRows()

	for i, it := range v.Slots {
		row := i/cols - r.top
		if row < 0 || row >= rows {
			continue
		}
		x := (i % cols) * CellWidth
		y := gridTop + row

		bg := tcell.ColorReset
		switch i {
		case v.Cursor:
			bg = cursorBG
		case v.Mark:
			bg = markBG
		}
		base := tcell.StyleDefault.Background(bg)
		for dx := 0; dx < CellWidth-1; dx++ {
			r.screen.SetContent(x+dx, y, ' ', nil, base)
		}
		if it == nil {
			r.drawText(x+1, y, emptyCellGlyph, base.Foreground(tcell.ColorGray))
			continue
		}
		fg := rarityTheme(it.Rarity).Color
		if v.Usable != nil && !v.Usable(it) {
			fg = unusableFG
		}
		style := base.Foreground(fg)
		r.putGlyph(x, y, it.Glyph, style)
		r.drawText(x+3, y, cellLabel(it), style)
	}
}

// cellLabel is the short text after the glyph: stack size for stackables,
// upgrade level for gear.
func cellLabel(it *item.Item) string {
	switch {
	case it.Stackable():
		if it.CurrentStack > 9999 {
			return "9k+"
		}
		return fmt.Sprint(it.CurrentStack)
	case it.UpgradeLevel > 0:
		return fmt.Sprintf("+%d", it.UpgradeLevel)
	}
	return ""
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
