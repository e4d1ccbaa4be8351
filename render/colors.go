package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tetris/engine"
)

// Piece colors indexed by engine.Cell, 0 is empty
var pieceColors = [...]tcell.Color{
	tcell.ColorDefault,
	tcell.NewRGBColor(66, 133, 244),  // I blue
	tcell.NewRGBColor(234, 67, 53),   // T red
	tcell.NewRGBColor(251, 188, 5),   // S amber
	tcell.NewRGBColor(52, 168, 83),   // Z green
	tcell.NewRGBColor(242, 139, 130), // O salmon
	tcell.NewRGBColor(161, 193, 216), // L steel
	tcell.NewRGBColor(254, 215, 102), // J sand
}

// UI colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame      = tcell.NewRGBColor(120, 120, 140) // Board border
	RgbGhost      = tcell.NewRGBColor(90, 90, 110)   // Landing preview
	RgbLabel      = tcell.NewRGBColor(180, 180, 180) // Panel labels
	RgbValue      = tcell.NewRGBColor(255, 255, 255) // Panel values
	RgbMessageBg  = tcell.NewRGBColor(0, 0, 0)       // Message box fill
	RgbMessageFg  = tcell.NewRGBColor(255, 165, 0)   // Message text
	RgbHighlight  = tcell.NewRGBColor(255, 255, 0)   // New high score
	RgbDebug      = tcell.NewRGBColor(0, 200, 200)   // Debug overlay
)

// CellColor returns the display color for a grid value
func CellColor(c engine.Cell) tcell.Color {
	if int(c) >= len(pieceColors) {
		return RgbValue
	}
	return pieceColors[c]
}
