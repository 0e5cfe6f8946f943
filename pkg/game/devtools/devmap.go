package devtools

import (
	"raycaster/pkg/engine/world"
)

// Developer map layout
const (
	devMapRows   = 9
	devPillarRow = 4
	devSpacing   = 2
)

// DevGrid returns a developer test map: a bordered room with a pillar of every wall
// type 1-9 along the middle row, so palette colors can be compared side by side
func DevGrid() *world.Grid {
	types := int(world.MaxCellType)
	cols := types*devSpacing + 3

	rows := make([][]world.CellType, devMapRows)
	for r := range rows {
		rows[r] = make([]world.CellType, cols)
		for c := range rows[r] {
			if r == 0 || r == devMapRows-1 || c == 0 || c == cols-1 {
				rows[r][c] = world.CellType(1)
			}
		}
	}
	for i := 0; i < types; i++ {
		rows[devPillarRow][devSpacing+i*devSpacing] = world.CellType(i + 1)
	}

	grid, err := world.FromRows(rows)
	if err != nil {
		panic("devtools: dev grid is malformed: " + err.Error())
	}
	return grid
}
