package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/generator"
)

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	return path
}

func TestLoadGrid_Sources(t *testing.T) {
	tests := []struct {
		name     string
		f        flags
		wantRows int
		wantPath bool
	}{
		{"default", flags{}, 10, false},
		{"devmap", flags{devMap: true}, 9, false},
		{"generated", flags{generate: 12, generatorID: generator.NameBSP, seed: 1}, 12, false},
		{"file", flags{mapPath: writeMap(t, "111\n101\n111\n")}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, path, err := loadGrid(&tt.f)
			if err != nil {
				t.Fatalf("loadGrid: %v", err)
			}
			if grid.Rows() != tt.wantRows {
				t.Errorf("rows = %d, want %d", grid.Rows(), tt.wantRows)
			}
			if (path != "") != tt.wantPath {
				t.Errorf("path = %q", path)
			}
		})
	}
}

func TestLoadGrid_RejectsMapWithoutFloor(t *testing.T) {
	path := writeMap(t, "111\n121\n111\n")
	grid, _, err := loadGrid(&flags{mapPath: path})
	if !errors.Is(err, world.ErrInvalidMapFormat) {
		t.Errorf("loadGrid(all walls) error = %v, want %v", err, world.ErrInvalidMapFormat)
	}
	if grid != nil {
		t.Error("loadGrid(all walls) returned a grid")
	}
}
