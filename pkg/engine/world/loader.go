package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// defaultLayout is the built-in sample level used when no map file is given
var defaultLayout = []string{
	"1111111111",
	"1000000001",
	"1011111101",
	"1010000001",
	"1010111101",
	"1010100001",
	"1010101101",
	"1000000001",
	"1001001001",
	"1111111111",
}

// DefaultGrid returns the built-in 10x10 sample level
func DefaultGrid() *Grid {
	g, err := ParseMap(strings.NewReader(strings.Join(defaultLayout, "\n")))
	if err != nil {
		panic("built-in map is invalid: " + err.Error())
	}
	return g
}

// LoadMap reads a map file from disk
func LoadMap(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	g, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return g, nil
}

// ParseMap reads a map in the plain-text format: one row per line, one digit per cell.
// Carriage returns and trailing blank lines are ignored. Anything else that is not a digit,
// and rows of differing length, fail with ErrInvalidMapFormat.
func ParseMap(r io.Reader) (*Grid, error) {
	var rows [][]CellType
	blankRun := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			blankRun++
			continue
		}
		if blankRun > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("line %d: blank line inside map: %w", lineNo-1, ErrInvalidMapFormat)
		}
		blankRun = 0

		row := make([]CellType, 0, len(line))
		for i, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("line %d col %d: %q is not a digit: %w", lineNo, i+1, ch, ErrInvalidMapFormat)
			}
			row = append(row, CellType(ch-'0'))
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", lineNo, len(row), len(rows[0]), ErrInvalidMapFormat)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map has no rows: %w", ErrInvalidMapFormat)
	}

	return FromRows(rows)
}

// FormatMap writes the grid in the map-file format accepted by ParseMap
func FormatMap(w io.Writer, g *Grid) error {
	return formatGrid(w, g, CellType.Rune)
}

// FormatVisual writes the grid as a quick picture: '|' for any wall, '.' for empty
func FormatVisual(w io.Writer, g *Grid) error {
	return formatGrid(w, g, func(c CellType) rune {
		if c.IsWall() {
			return '|'
		}
		return '.'
	})
}

func formatGrid(w io.Writer, g *Grid, symbol func(CellType) rune) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, g.Cols()+1)

	for row := 0; row < g.Rows(); row++ {
		line = line[:0]
		for col := 0; col < g.Cols(); col++ {
			line = append(line, byte(symbol(g.cells[row*g.cols+col])))
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveMap writes the grid to a file in map-file format
func SaveMap(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := FormatMap(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
