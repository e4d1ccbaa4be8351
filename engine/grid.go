package engine

import "github.com/lixenwraith/vi-tetris/constants"

// Cell holds the color of a settled block, CellEmpty when unoccupied
type Cell uint8

// CellEmpty marks an unoccupied grid cell
const CellEmpty Cell = 0

// Grid is the fixed Rows x Cols matrix of settled blocks indexed [row][col]
// Value semantics: assigning a Grid copies every cell
type Grid [constants.Rows][constants.Cols]Cell

// EmptyGrid returns a grid with every cell unoccupied
func EmptyGrid() Grid {
	return Grid{}
}

// InBounds reports whether (row, col) addresses a visible cell
func InBounds(row, col int) bool {
	return row >= 0 && row < constants.Rows && col >= 0 && col < constants.Cols
}

// Occupied reports whether the in-bounds cell holds a block
func (g *Grid) Occupied(row, col int) bool {
	return g[row][col] != CellEmpty
}

// Set writes a color into the cell, out-of-bounds writes are ignored
func (g *Grid) Set(row, col int, c Cell) {
	if !InBounds(row, col) {
		return
	}
	g[row][col] = c
}

// RowFull reports whether every cell in the row is occupied
func (g *Grid) RowFull(row int) bool {
	for _, c := range g[row] {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether no cell in the row is occupied
func (g *Grid) RowEmpty(row int) bool {
	for _, c := range g[row] {
		if c != CellEmpty {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells
func (g *Grid) FilledCount() int {
	n := 0
	for r := range g {
		for _, c := range g[r] {
			if c != CellEmpty {
				n++
			}
		}
	}
	return n
}
