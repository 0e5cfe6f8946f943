package world

import (
	"fmt"
	"strings"
)

// Direction represents a cardinal compass heading on the grid.
// North is toward row 0, East toward higher columns.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection parses a heading name such as "north" or "W"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the row and column offsets for one step in this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Vector returns the unit heading in pose space, where X runs down the rows and Y
// across the columns
func (d Direction) Vector() (x, y float64) {
	rowDelta, colDelta := d.Delta()
	return float64(rowDelta), float64(colDelta)
}
