package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a cell is requested outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrInvalidMapFormat is returned when map data is ragged, empty or holds non-digit cells
	ErrInvalidMapFormat = errors.New("invalid map format")
)

// Grid represents the world map as a dense row-major array of cell types.
// A Grid is never modified once built, so it may be shared between goroutines.
type Grid struct {
	cells []CellType
	rows  int
	cols  int
}

// NewGrid creates an all-empty grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.build(rows, cols)
	return g
}

// NewBorderedGrid creates a grid whose perimeter is wall type 1 and whose interior is empty
func NewBorderedGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if g.IsOnPerimeter(row, col) {
				g.cells[row*cols+col] = 1
			}
		}
	}
	return g
}

// FromRows builds a grid from row slices. All rows must have the same, non-zero length.
func FromRows(rows [][]CellType) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrInvalidMapFormat)
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("row 0 is empty: %w", ErrInvalidMapFormat)
	}

	g := &Grid{}
	g.build(len(rows), cols)

	for row, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(line), cols, ErrInvalidMapFormat)
		}
		for col, cell := range line {
			if cell > MaxCellType {
				return nil, fmt.Errorf("cell (%d,%d) has code %d: %w", row, col, cell, ErrInvalidMapFormat)
			}
			g.cells[row*cols+col] = cell
		}
	}

	return g, nil
}

func (g *Grid) build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid dimensions must be positive, got %dx%d", rows, cols))
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]CellType, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is inside the one-cell perimeter
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// Cell returns the cell type at the given position
func (g *Grid) Cell(row, col int) (CellType, error) {
	if !g.IsValidPosition(row, col) {
		return Empty, fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[row*g.cols+col], nil
}

// IsWalkable reports whether the position is inside the grid and empty
func (g *Grid) IsWalkable(row, col int) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	return g.cells[row*g.cols+col] == Empty
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell CellType)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// FirstWalkable returns the first empty cell in row-major order
func (g *Grid) FirstWalkable() (Coord, bool) {
	for i, cell := range g.cells {
		if cell == Empty {
			return Coord{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Coord{}, false
}

// WallTypes returns the distinct wall codes present in the grid
func (g *Grid) WallTypes() []CellType {
	var seen [MaxCellType + 1]bool
	var types []CellType
	for _, cell := range g.cells {
		if cell.IsWall() && !seen[cell] {
			seen[cell] = true
			types = append(types, cell)
		}
	}
	return types
}

// Validate checks the grid is usable as a level
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d: %w", g.rows, g.cols, ErrInvalidMapFormat)
	}
	if _, ok := g.FirstWalkable(); !ok {
		return fmt.Errorf("grid has no empty cell to stand in: %w", ErrInvalidMapFormat)
	}
	return nil
}
