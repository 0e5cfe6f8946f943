package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"raycaster/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms.
// Every generated grid has a solid perimeter of wall type 1 and at least one empty cell.
type GridGenerator interface {
	Generate(rows, cols int) *world.Grid
	Name() string
}

// MinSize is the smallest side length a generator accepts: a perimeter plus one cell
const MinSize = 3

// Available generator names
const (
	NameRandomFill = "random"
	NameLineWalker = "walker"
	NameBSP        = "bsp"
)

var constructors = map[string]func(rng *rand.Rand) GridGenerator{
	NameRandomFill: func(rng *rand.Rand) GridGenerator { return &RandomFillGenerator{Rand: rng} },
	NameLineWalker: func(rng *rand.Rand) GridGenerator { return &LineWalkerGenerator{Rand: rng} },
	NameBSP:        func(rng *rand.Rand) GridGenerator { return &BSPGenerator{Rand: rng} },
}

// DefaultName is the generator used when none is named
const DefaultName = NameRandomFill

// Names returns the registered generator names, sorted
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the named generator seeded with seed
func ByName(name string, seed int64) (GridGenerator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (have %v)", name, Names())
	}
	return ctor(rand.New(rand.NewSource(seed))), nil
}

// canvas is a mutable grid under construction
type canvas struct {
	cells      [][]world.CellType
	rows, cols int
}

func newCanvas(rows, cols int, fill world.CellType) *canvas {
	if rows < MinSize || cols < MinSize {
		panic(fmt.Sprintf("generated grid must be at least %dx%d, got %dx%d", MinSize, MinSize, rows, cols))
	}
	c := &canvas{cells: make([][]world.CellType, rows), rows: rows, cols: cols}
	for row := range c.cells {
		c.cells[row] = make([]world.CellType, cols)
		for col := range c.cells[row] {
			c.cells[row][col] = fill
		}
	}
	return c
}

// isPlayable checks if a position is inside the one-cell perimeter
func (c *canvas) isPlayable(row, col int) bool {
	return row >= 1 && row < c.rows-1 && col >= 1 && col < c.cols-1
}

func (c *canvas) set(row, col int, t world.CellType) {
	if c.isPlayable(row, col) {
		c.cells[row][col] = t
	}
}

func (c *canvas) get(row, col int) world.CellType {
	return c.cells[row][col]
}

// border sets every perimeter cell to wall type 1
func (c *canvas) border() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if !c.isPlayable(row, col) {
				c.cells[row][col] = 1
			}
		}
	}
}

// grid freezes the canvas. A canvas with no empty cell gets its centre cleared so the
// player always has somewhere to stand.
func (c *canvas) grid() *world.Grid {
	c.border()

	g, err := world.FromRows(c.cells)
	if err != nil {
		panic("generated invalid grid: " + err.Error())
	}
	if _, ok := g.FirstWalkable(); !ok {
		row, col := g.CenterPosition()
		c.cells[row][col] = world.Empty
		return c.grid()
	}
	return g
}
