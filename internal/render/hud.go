package render

import (
	"fmt"

	"emoji-stash/internal/item"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) drawHUD(status string, messages []string) {
	_, sh := r.screen.Size()
	hudY := sh - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, status, styleWhite)

	// Message log (last 3 messages).
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, styleMessage)
	}
}

// drawDetail describes the selected slot in a panel starting at (x, y).
func (r *Renderer) drawDetail(x, y int, it *item.Item, slot int, usable func(*item.Item) bool) {
	r.drawText(x, y, fmt.Sprintf("── SLOT %d ──", slot), styleWhite)
	if it == nil {
		r.drawText(x, y+1, "(empty)", styleDim)
		return
	}
	theme := rarityTheme(it.Rarity)
	r.putGlyph(x, y+1, it.Glyph, tcell.StyleDefault)
	r.drawText(x+3, y+1, it.String(), tcell.StyleDefault.Foreground(theme.Color).Bold(true))
	r.drawText(x, y+2, fmt.Sprintf("%s %s", it.Rarity, it.Category), styleDim)

	switch {
	case it.UnlimitedStack:
		r.drawText(x, y+3, fmt.Sprintf("Stack: %d (no limit)", it.CurrentStack), styleWhite)
	case it.Stackable():
		r.drawText(x, y+3, fmt.Sprintf("Stack: %d/%d", it.CurrentStack, it.MaxStack), styleWhite)
	}

	if it.HeroRestriction == "" {
		return
	}
	line, style := "Hero: "+it.HeroRestriction, styleGood
	if usable != nil && !usable(it) {
		line, style = line+" (not usable)", styleBad
	}
	r.drawText(x, y+4, line, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
