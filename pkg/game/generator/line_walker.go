package generator

import (
	"math/rand"

	"raycaster/pkg/engine/world"
)

// LineWalkerGenerator starts from a solid block and carves corridors by walking lines in
// random directions, branching as it goes
type LineWalkerGenerator struct {
	Rand *rand.Rand

	// BranchProb is the chance of starting a side corridor at each step (0 selects 0.3)
	BranchProb float32
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a new rows x cols grid
func (g *LineWalkerGenerator) Generate(rows, cols int) *world.Grid {
	c := newCanvas(rows, cols, 1)

	// Start in the center (which is always in playable area)
	row, col := rows/2, cols/2
	c.set(row, col, world.Empty)

	branchProb := g.BranchProb
	if branchProb <= 0 {
		branchProb = 0.3
	}

	// Corridor length scales with the smaller side
	span := rows
	if cols < span {
		span = cols
	}
	minDist := 2 + span/10
	maxDist := 4 + span/4

	// Build main corridors in all four directions
	for _, dir := range world.AllDirections() {
		g.buildLine(c, row, col, dir, branchProb, minDist, maxDist)
	}

	// Bigger maps get extra corridors from carved cells near the centre
	for i := 0; i < span/8; i++ {
		randRow := row + g.Rand.Intn(5) - 2
		randCol := col + g.Rand.Intn(5) - 2
		if c.isPlayable(randRow, randCol) && c.get(randRow, randCol) == world.Empty {
			g.buildLine(c, randRow, randCol, g.randomDirection(), branchProb, minDist, maxDist)
		}
	}

	return c.grid()
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection() world.Direction {
	dirs := world.AllDirections()
	return dirs[g.Rand.Intn(len(dirs))]
}

// buildLine carves a straight corridor from (row, col) in the given direction.
// Only playable cells are carved; the walk stops at the perimeter.
func (g *LineWalkerGenerator) buildLine(c *canvas, row, col int, dir world.Direction, branchProbability float32, minDist, maxDist int) {
	if !dir.IsValid() {
		dir = g.randomDirection()
	}

	rowDelta, colDelta := dir.Delta()
	distance := minDist + g.Rand.Intn(maxDist-minDist+1)

	for segment := 0; segment < distance; segment++ {
		c.set(row, col, world.Empty)

		// If the next cell would be outside playable area, stop here
		if !c.isPlayable(row+rowDelta, col+colDelta) {
			return
		}

		if branchProbability > 0 && g.Rand.Float32() < branchProbability {
			g.buildLine(c, row, col, g.randomDirection(), branchProbability-.1, minDist, maxDist)
		}

		row += rowDelta
		col += colDelta
	}

	c.set(row, col, world.Empty)
}
