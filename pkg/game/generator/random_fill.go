package generator

import (
	"math/rand"

	"raycaster/pkg/engine/world"
)

// RandomFillGenerator walls the perimeter and fills each interior cell with wall type 1
// or empty at even odds
type RandomFillGenerator struct {
	Rand *rand.Rand
}

// Name returns the name of this generator
func (g *RandomFillGenerator) Name() string {
	return "Random Fill"
}

// Generate creates a new rows x cols grid
func (g *RandomFillGenerator) Generate(rows, cols int) *world.Grid {
	c := newCanvas(rows, cols, world.Empty)
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			c.set(row, col, world.CellType(g.Rand.Intn(2)))
		}
	}
	return c.grid()
}
