package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-tetris/constants"
)

// Shape is a row-major bitmap, 1 marks a block
type Shape [][]uint8

// Width returns the column count of the bitmap
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the row count of the bitmap
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]uint8(nil), row...)
	}
	return out
}

// Equal reports whether both bitmaps have identical dimensions and cells
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// RotateCW returns the bitmap turned 90 degrees clockwise
// Column c of the input, read bottom to top, becomes row c of the output
func RotateCW(s Shape) Shape {
	h := s.Height()
	w := s.Width()
	out := make(Shape, w)
	for c := 0; c < w; c++ {
		row := make([]uint8, h)
		for r := 0; r < h; r++ {
			row[r] = s[h-1-r][c]
		}
		out[c] = row
	}
	return out
}

// Kind identifies one of the seven tetrominoes
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindS
	KindZ
	KindO
	KindL
	KindJ
	kindCount
)

// Shapes in spawn orientation, never mutated
var kindShapes = [kindCount]Shape{
	KindI: {{1, 1, 1, 1}},
	KindT: {{1, 1, 1}, {0, 1, 0}},
	KindS: {{1, 1, 0}, {0, 1, 1}},
	KindZ: {{0, 1, 1}, {1, 1, 0}},
	KindO: {{1, 1}, {1, 1}},
	KindL: {{1, 1, 1}, {1, 0, 0}},
	KindJ: {{1, 1, 1}, {0, 0, 1}},
}

// Kinds lists every tetromino in table order
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Shape returns a fresh copy of the spawn bitmap
func (k Kind) Shape() Shape {
	return kindShapes[k].Clone()
}

// Color returns the cell color written when a piece of this kind locks
func (k Kind) Color() Cell {
	return Cell(k) + 1
}

// String returns the conventional letter of the kind
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindO:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	default:
		return "?"
	}
}

// RandomKind draws uniformly and independently over all kinds
func RandomKind(rng *rand.Rand) Kind {
	return Kind(rng.IntN(constants.PieceKinds))
}

// Piece is a kind in its current rotation at a board anchor
// Y may be negative while the piece is above the visible grid
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Color Cell
}

// Spawn places a fresh piece horizontally centered on the top row
func Spawn(k Kind) Piece {
	shape := k.Shape()
	return Piece{
		Kind:  k,
		Shape: shape,
		X:     constants.Cols/2 - shape.Width()/2,
		Y:     0,
		Color: k.Color(),
	}
}

// Clone returns a copy that shares no bitmap storage
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Blocks calls fn with the board coordinates of every set cell
func (p Piece) Blocks(fn func(row, col int)) {
	for r, line := range p.Shape {
		for c, v := range line {
			if v != 0 {
				fn(p.Y+r, p.X+c)
			}
		}
	}
}
