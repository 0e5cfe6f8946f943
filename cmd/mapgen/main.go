// Command mapgen prints a generated map in map-file format, followed by a picture of it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/generator"
)

func main() {
	size := flag.Int("size", 10, "side length of a square map")
	rows := flag.Int("rows", 0, "rows (overrides -size)")
	cols := flag.Int("cols", 0, "columns (overrides -size)")
	seed := flag.Int64("seed", 0, "random seed (default: current time)")
	name := flag.String("generator", generator.DefaultName, fmt.Sprintf("generator %v", generator.Names()))
	out := flag.String("out", "", "also write the map to this file")
	flag.Parse()

	if *rows == 0 {
		*rows = *size
	}
	if *cols == 0 {
		*cols = *size
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := run(*rows, *cols, *seed, *name, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rows, cols int, seed int64, name, out string) error {
	if rows < generator.MinSize || cols < generator.MinSize {
		return fmt.Errorf("map must be at least %dx%d, got %dx%d", generator.MinSize, generator.MinSize, rows, cols)
	}
	gen, err := generator.ByName(name, seed)
	if err != nil {
		return err
	}
	grid := gen.Generate(rows, cols)

	fmt.Printf("%s map, seed %d. Place this map in a file:\n", gen.Name(), seed)
	if err := world.FormatMap(os.Stdout, grid); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Visualize it like:")
	if err := world.FormatVisual(os.Stdout, grid); err != nil {
		return err
	}

	if out != "" {
		if err := world.SaveMap(out, grid); err != nil {
			return err
		}
		fmt.Printf("\nWritten to %s\n", out)
	}
	return nil
}
