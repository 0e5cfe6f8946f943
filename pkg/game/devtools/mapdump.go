// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no player overlay).
// If revealedOnly is true, cells no ray has reached return '?'.
func cellSymbol(g *state.Game, row, col int, revealedOnly bool) rune {
	if revealedOnly && !g.IsDiscovered(row, col) {
		return '?'
	}
	t, err := g.Grid.Cell(row, col)
	if err != nil {
		return '#'
	}
	if t == world.Empty {
		return '.'
	}
	return t.Rune()
}

// writeMapGrid writes the grid to w with the player drawn as '@'.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool, playerRow, playerCol int) {
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			if row == playerRow && col == playerCol {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(g, row, col, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes the debug dump: metadata, legend, the revealed map and the full map.
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	bw := bufio.NewWriter(w)
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	playerRow, playerCol := -1, -1

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (grid layout, player pose) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	if g.MapPath != "" {
		fmt.Fprintf(bw, "map_file: %s\n", g.MapPath)
	}
	fmt.Fprintf(bw, "grid_rows: %d\n", rows)
	fmt.Fprintf(bw, "grid_cols: %d\n", cols)
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=x, col=y)\n")
	if g.Player != nil {
		pose := g.Player.Pose()
		cell := g.Player.Cell()
		playerRow, playerCol = cell.Row, cell.Col
		fmt.Fprintf(bw, "player_x: %.4f\n", pose.X)
		fmt.Fprintf(bw, "player_y: %.4f\n", pose.Y)
		fmt.Fprintf(bw, "player_cell: %d,%d\n", playerRow, playerCol)
		fmt.Fprintf(bw, "direction: %.4f,%.4f\n", pose.DirX, pose.DirY)
		fmt.Fprintf(bw, "plane: %.4f,%.4f\n", pose.PlaneX, pose.PlaneY)
		fmt.Fprintf(bw, "fov: %d\n", pose.FOV)
	}
	fmt.Fprintf(bw, "discovered_cells: %d\n", g.DiscoveredCount())
	fmt.Fprintf(bw, "tick: %d\n", g.Tick)

	// --- Legend ---
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, "@ = player")
	fmt.Fprintln(bw, ". = empty")
	fmt.Fprintln(bw, "1-9 = wall type")
	fmt.Fprintln(bw, "? = not yet seen (revealed map only)")
	if types := g.Grid.WallTypes(); len(types) > 0 {
		fmt.Fprint(bw, "wall_types_present:")
		for _, t := range types {
			fmt.Fprintf(bw, " %c", t.Rune())
		}
		fmt.Fprintln(bw)
	}

	// --- Maps ---
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Revealed map ---")
	writeMapGrid(bw, g, true, playerRow, playerCol)
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Full map ---")
	writeMapGrid(bw, g, false, playerRow, playerCol)

	return bw.Flush()
}

// DumpMapToFile writes the debug dump to map.txt in dir (the working directory when
// dir is empty) and returns the absolute path written.
func DumpMapToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
