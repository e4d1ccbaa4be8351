// Package render draws session snapshots to a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/status"
)

const (
	blockRune = '█'
	ghostRune = '░'
)

// TerminalRenderer draws the board, side panel and messages
type TerminalRenderer struct {
	screen tcell.Screen
	reg    *status.Registry
	debug  bool
}

// NewTerminalRenderer creates a renderer; reg is only read when debug is set
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry, debug bool) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, reg: reg, debug: debug}
}

// Board geometry in screen coordinates
func boardLeft() int  { return constants.BoardOriginX + 1 }
func boardTop() int   { return constants.BoardOriginY + 1 }
func boardRight() int { return boardLeft() + constants.Cols*constants.CellWidth }
func panelX() int     { return boardRight() + 1 + constants.SidePanelGap }

// CellOrigin returns the screen position of grid cell (row, col)
func CellOrigin(row, col int) (x, y int) {
	return boardLeft() + col*constants.CellWidth, boardTop() + row
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(snap engine.Snapshot) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	r.drawFrame(bg)
	r.drawGrid(&snap.Grid, bg)
	if snap.State == engine.StateRunning || snap.State == engine.StatePaused {
		r.drawGhost(snap, bg)
		r.drawPiece(snap.Active, bg)
	}
	r.drawPanel(snap, bg)
	r.drawMessage(snap, bg)
	if r.debug && r.reg != nil {
		r.drawDebug(bg)
	}

	r.screen.Show()
}

// drawFrame draws the board border
func (r *TerminalRenderer) drawFrame(bg tcell.Style) {
	style := bg.Foreground(RgbFrame)
	left := constants.BoardOriginX
	right := boardRight()
	top := constants.BoardOriginY
	bottom := boardTop() + constants.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *TerminalRenderer) drawGrid(g *engine.Grid, bg tcell.Style) {
	for row := 0; row < constants.Rows; row++ {
		for col := 0; col < constants.Cols; col++ {
			if c := g[row][col]; c != engine.CellEmpty {
				r.drawCell(row, col, blockRune, bg.Foreground(CellColor(c)))
			}
		}
	}
}

// drawGhost outlines where the active piece would land
func (r *TerminalRenderer) drawGhost(snap engine.Snapshot, bg tcell.Style) {
	if snap.GhostY <= snap.Active.Y {
		return
	}
	ghost := snap.Active
	ghost.Y = snap.GhostY
	style := bg.Foreground(RgbGhost)
	ghost.Blocks(func(row, col int) {
		if engine.InBounds(row, col) {
			r.drawCell(row, col, ghostRune, style)
		}
	})
}

// drawPiece skips blocks still above the top row
func (r *TerminalRenderer) drawPiece(p engine.Piece, bg tcell.Style) {
	style := bg.Foreground(CellColor(p.Color))
	p.Blocks(func(row, col int) {
		if engine.InBounds(row, col) {
			r.drawCell(row, col, blockRune, style)
		}
	})
}

func (r *TerminalRenderer) drawCell(row, col int, ch rune, style tcell.Style) {
	x, y := CellOrigin(row, col)
	for i := 0; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawPanel shows the next piece and the counters
func (r *TerminalRenderer) drawPanel(snap engine.Snapshot, bg tcell.Style) {
	x := panelX()
	y := constants.BoardOriginY
	label := bg.Foreground(RgbLabel)
	value := bg.Foreground(RgbValue)

	r.drawText(x, y, "NEXT", label)
	next := snap.Next
	style := bg.Foreground(CellColor(next.Color))
	for row, line := range next.Shape {
		for col, v := range line {
			if v == 0 {
				continue
			}
			for i := 0; i < constants.CellWidth; i++ {
				r.screen.SetContent(x+col*constants.CellWidth+i, y+1+row, blockRune, nil, style)
			}
		}
	}

	y += constants.PreviewSize + 2
	rows := []struct {
		name string
		val  int
	}{
		{"SCORE", snap.Score},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
		{"HIGH", snap.HighScore},
	}
	for _, rw := range rows {
		r.drawText(x, y, rw.name, label)
		r.drawText(x, y+1, fmt.Sprintf("%d", rw.val), value)
		y += 3
	}
}

// MessageFor returns the overlay text for a snapshot, empty while running
func MessageFor(snap engine.Snapshot) []string {
	switch snap.State {
	case engine.StateReady:
		return []string{constants.MessageReady}
	case engine.StatePaused:
		return []string{constants.MessagePaused}
	case engine.StateStopped:
		return []string{constants.MessageStopped, constants.MessageReady}
	case engine.StateOver:
		lines := []string{fmt.Sprintf(constants.MessageGameOverFmt, snap.Score)}
		if snap.NewHighScore {
			lines = append(lines, fmt.Sprintf(constants.MessageHighScoreFmt, snap.HighScore))
		}
		return append(lines, constants.MessageReady)
	}
	return nil
}

// drawMessage centers a boxed message over the board
func (r *TerminalRenderer) drawMessage(snap engine.Snapshot, bg tcell.Style) {
	lines := MessageFor(snap)
	if len(lines) == 0 {
		return
	}

	box := bg.Background(RgbMessageBg)
	centerX := (constants.BoardOriginX + boardRight()) / 2
	startY := boardTop() + constants.Rows/2 - len(lines)/2

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	left := centerX - width/2 - 1
	for i := -1; i <= len(lines); i++ {
		for x := left; x < left+width+2; x++ {
			r.screen.SetContent(x, startY+i, ' ', nil, box)
		}
	}

	for i, l := range lines {
		style := box.Foreground(RgbMessageFg)
		if snap.NewHighScore && i == 1 && snap.State == engine.StateOver {
			style = box.Foreground(RgbHighlight).Bold(true)
		}
		n := len([]rune(l))
		r.drawText(centerX-n/2, startY+i, l, style)
	}
}

// drawDebug lists status metrics under the side panel
func (r *TerminalRenderer) drawDebug(bg tcell.Style) {
	style := bg.Foreground(RgbDebug)
	y := boardTop() + constants.Rows + 2
	for i, line := range r.reg.Lines() {
		r.drawText(constants.BoardOriginX, y+i, line, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
