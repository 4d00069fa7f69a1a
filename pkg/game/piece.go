package game

import (
	"fmt"

	"github.com/earther/fallterm/pkg/shape"
)

// Fixed spawn point for every kind, not centered per shape width.
const (
	SpawnX = 4
	SpawnY = 0
)

// Piece is the active falling piece. Shape is a working copy of its
// template; rotation replaces it in place.
type Piece struct {
	Shape shape.Shape
	Fill  int
	X     int
	Y     int
}

func NewPiece(k shape.Kind) *Piece {
	return &Piece{
		Shape: shape.New(k),
		Fill:  k.Fill(),
		X:     SpawnX,
		Y:     SpawnY,
	}
}

func (p *Piece) String() string {
	return fmt.Sprintf("piece fill=%d at (%d,%d)", p.Fill, p.X, p.Y)
}
