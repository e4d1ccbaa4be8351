package engine

import "github.com/lixenwraith/vi-tetris/constants"

// Collides reports whether the shape anchored at (x, y) overlaps a wall, the
// floor or a settled block
// Cells above the top row never collide so pieces may spawn partly hidden
func Collides(g *Grid, s Shape, x, y int) bool {
	for r, line := range s {
		for c, v := range line {
			if v == 0 {
				continue
			}
			bx := x + c
			by := y + r
			if bx < 0 || bx >= constants.Cols || by >= constants.Rows {
				return true
			}
			if by < 0 {
				continue
			}
			if g.Occupied(by, bx) {
				return true
			}
		}
	}
	return false
}

// LandingY returns the lowest anchor row the piece can descend to from its
// current position without colliding
func LandingY(g *Grid, p Piece) int {
	y := p.Y
	for y < constants.Rows && !Collides(g, p.Shape, p.X, y+1) {
		y++
	}
	return y
}

// kick is a candidate anchor offset tried when rotating
type kick struct {
	dx, dy int
}

// wallKicks in priority order
var wallKicks = [...]kick{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}
