package render

import (
	"emoji-stash/internal/item"

	"github.com/gdamore/tcell/v2"
)

// RarityTheme holds the colors used for one rarity in both the terminal view
// and the text snapshot.
type RarityTheme struct {
	Color tcell.Color
	Hex   string // lipgloss color for Snapshot
}

// RarityThemes is indexed by item.Rarity.
var RarityThemes = [...]RarityTheme{
	item.Common:    {Color: tcell.ColorSilver, Hex: "#c0c0c0"},
	item.Rare:      {Color: tcell.NewRGBColor(80, 160, 255), Hex: "#50a0ff"},
	item.Epic:      {Color: tcell.NewRGBColor(180, 100, 255), Hex: "#b464ff"},
	item.Legendary: {Color: tcell.NewRGBColor(255, 170, 40), Hex: "#ffaa28"},
}

func rarityTheme(r item.Rarity) RarityTheme {
	if int(r) < len(RarityThemes) {
		return RarityThemes[r]
	}
	return RarityThemes[item.Common]
}

var (
	styleWhite     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMessage   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleGood      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	cursorBG       = tcell.ColorAqua
	markBG         = tcell.NewRGBColor(120, 90, 0)
	unusableFG     = tcell.ColorDimGray
	emptyCellGlyph = "·"
)
