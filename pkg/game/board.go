package game

import (
	"strings"

	"github.com/earther/fallterm/pkg/shape"
)

const (
	Rows = 20
	Cols = 10
)

// Board is the locked playfield. Row 0 is the top; each cell holds a
// fill code (0 = empty, 1-7 = the shape kind that locked there).
type Board [][]int

func NewBoard() Board {
	b := make(Board, Rows)
	for y := range b {
		b[y] = make([]int, Cols)
	}

	return b
}

func (b Board) Cell(x int, y int) int {
	return b[y][x]
}

func (b Board) LineFilled(y int) bool {
	for x := 0; x < Cols; x++ {
		if b[y][x] == 0 {
			return false
		}
	}

	return true
}

// ClearFilled removes every filled row found in a single top-to-bottom
// scan and reports how many were removed. Removal splices the row out
// and unshifts a fresh empty row at the top; the scan then continues
// from the next index on the mutated board without revisiting the
// index it just handled.
func (b Board) ClearFilled() int {
	cleared := 0

	for y := 0; y < Rows; y++ {
		if b.LineFilled(y) {
			b.spliceRow(y)
			cleared++
		}
	}

	return cleared
}

// spliceRow removes row y and inserts an empty row at the top, shifting
// rows 0..y-1 down by one. Rows below y keep their indices.
func (b Board) spliceRow(y int) {
	for my := y; my > 0; my-- {
		copy(b[my], b[my-1])
	}

	for x := 0; x < Cols; x++ {
		b[0][x] = 0
	}
}

// Collides reports whether s placed with its origin at column x, row y
// is illegal: any filled cell out of bounds (including negative rows)
// or on top of a locked cell. Pure; the board is not modified.
func (b Board) Collides(s shape.Shape, x int, y int) bool {
	for sy := range s {
		for sx := range s[sy] {
			if s[sy][sx] == 0 {
				continue
			}

			bx := x + sx
			by := y + sy

			if bx < 0 || bx >= Cols || by < 0 || by >= Rows {
				return true
			}

			if b[by][bx] != 0 {
				return true
			}
		}
	}

	return false
}

// Merge writes the piece's fill code into every board cell its shape
// occupies. Out-of-range cells indicate a broken invariant and panic.
func (b Board) Merge(p *Piece) {
	for sy := range p.Shape {
		for sx := range p.Shape[sy] {
			if p.Shape[sy][sx] == 0 {
				continue
			}

			b[p.Y+sy][p.X+sx] = p.Fill
		}
	}
}

func (b Board) Render() string {
	var sb strings.Builder

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b[y][x] == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune('█')
			}
		}

		if y < Rows-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
