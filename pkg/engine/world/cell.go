// Package world provides the static 2D grid that the ray caster marches through.
// Cells hold a small integer type: zero is open floor, anything else is a wall.
package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// CellType is the code stored in a grid cell
type CellType uint8

const (
	// Empty is open floor the player may stand in and rays pass through
	Empty CellType = 0

	// MaxCellType is the largest code a map file can express (a single digit)
	MaxCellType CellType = 9
)

// IsWall returns true for any non-empty cell
func (c CellType) IsWall() bool {
	return c != Empty
}

// Rune returns the map-file digit for this cell type
func (c CellType) Rune() rune {
	return rune('0' + c)
}

// String returns a readable name for the cell type
func (c CellType) String() string {
	if c == Empty {
		return "Empty"
	}
	return fmt.Sprintf("Wall(%d)", uint8(c))
}

// Coord identifies a single grid cell by row and column
type Coord struct {
	Row int
	Col int
}

// CoordSet is a set of grid coordinates
type CoordSet = mapset.Set[Coord]

// NewCoordSet returns an empty coordinate set
func NewCoordSet() CoordSet {
	return mapset.New[Coord]()
}
