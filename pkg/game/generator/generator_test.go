// Package generator tests grid generation: perimeter walls, wall codes, connectivity and
// seeding.
package generator

import (
	"testing"

	"raycaster/pkg/engine/world"
)

// countReachable returns the number of empty cells reachable from start via N/E/S/W.
func countReachable(grid *world.Grid, start world.Coord) int {
	visited := world.NewCoordSet()
	visited.Put(start)
	queue := []world.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			dr, dc := dir.Delta()
			n := world.Coord{Row: c.Row + dr, Col: c.Col + dc}
			if grid.IsWalkable(n.Row, n.Col) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited.Size()
}

// countEmpty returns the total number of empty cells.
func countEmpty(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(row, col int, cell world.CellType) {
		if cell == world.Empty {
			n++
		}
	})
	return n
}

func generate(t *testing.T, name string, seed int64, rows, cols int) *world.Grid {
	t.Helper()
	gen, err := ByName(name, seed)
	if err != nil {
		t.Fatalf("ByName(%q): %v", name, err)
	}
	grid := gen.Generate(rows, cols)
	if grid == nil {
		t.Fatalf("%s.Generate(%d, %d) returned nil", gen.Name(), rows, cols)
	}
	return grid
}

func TestGenerate_PerimeterAndSize(t *testing.T) {
	for _, name := range Names() {
		for _, size := range [][2]int{{3, 3}, {10, 10}, {12, 30}, {40, 25}} {
			t.Run(name, func(t *testing.T) {
				grid := generate(t, name, 1, size[0], size[1])
				if grid.Rows() != size[0] || grid.Cols() != size[1] {
					t.Fatalf("size = %dx%d, want %dx%d", grid.Rows(), grid.Cols(), size[0], size[1])
				}
				grid.ForEachCell(func(row, col int, cell world.CellType) {
					if grid.IsOnPerimeter(row, col) && cell != 1 {
						t.Errorf("perimeter cell (%d,%d) = %d, want 1", row, col, cell)
					}
				})
				if _, ok := grid.FirstWalkable(); !ok {
					t.Error("generated grid has no empty cell")
				}
				if err := grid.Validate(); err != nil {
					t.Errorf("Validate() = %v", err)
				}
			})
		}
	}
}

func TestRandomFill_OnlyZeroAndOne(t *testing.T) {
	grid := generate(t, NameRandomFill, 42, 10, 10)
	walls, empty := 0, 0
	grid.ForEachCell(func(row, col int, cell world.CellType) {
		switch cell {
		case 0:
			empty++
		case 1:
			walls++
		default:
			t.Errorf("cell (%d,%d) = %d, want 0 or 1", row, col, cell)
		}
	})
	if empty == 0 || walls <= 36 {
		t.Errorf("walls = %d, empty = %d, want a mixed interior", walls, empty)
	}
}

func TestGenerate_SameSeedSameGrid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			a := generate(t, name, 7, 20, 20)
			b := generate(t, name, 7, 20, 20)
			a.ForEachCell(func(row, col int, cell world.CellType) {
				other, _ := b.Cell(row, col)
				if other != cell {
					t.Fatalf("cell (%d,%d) differs between runs: %d vs %d", row, col, cell, other)
				}
			})
		})
	}
}

func TestCarvingGenerators_AllEmptyReachable(t *testing.T) {
	for _, name := range []string{NameLineWalker, NameBSP} {
		for seed := int64(1); seed <= 5; seed++ {
			grid := generate(t, name, seed, 30, 40)
			start, ok := grid.FirstWalkable()
			if !ok {
				t.Fatalf("%s seed %d: no empty cell", name, seed)
			}
			if got, want := countReachable(grid, start), countEmpty(grid); got != want {
				t.Errorf("%s seed %d: reachable %d != empty %d (isolated area)", name, seed, got, want)
			}
		}
	}
}

func TestBSP_RoomsUseDistinctWallTypes(t *testing.T) {
	grid := generate(t, NameBSP, 3, 40, 60)
	types := grid.WallTypes()
	if len(types) < 2 {
		t.Errorf("WallTypes() = %v, want room walls beside type 1", types)
	}
	for _, wt := range types {
		if wt < 1 || wt > 4 {
			t.Errorf("wall type %d outside the default palette", wt)
		}
	}
}

func TestByName_Unknown(t *testing.T) {
	if _, err := ByName("maze", 1); err == nil {
		t.Error("ByName(maze) err = nil, want error")
	}
}

func TestNewCanvas_PanicsWhenTooSmall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newCanvas(2, 5) did not panic")
		}
	}()
	newCanvas(2, 5, 1)
}
