package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig(missing) err = %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Player.FOV != 60 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeFile(t, `{
		"window": {"width": 320, "height": 200},
		"player": {"fov": 90, "facing": "east"},
		"render": {"backend": "tui", "palette": {"2": {"x": [1,2,3], "y": [4,5,6]}}}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 200 {
		t.Errorf("window = %dx%d, want 320x200", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TargetTPS != 30 {
		t.Errorf("TargetTPS = %d, want default 30", cfg.Window.TargetTPS)
	}
	if cfg.Render.Backend != BackendTUI {
		t.Errorf("backend = %q, want tui", cfg.Render.Backend)
	}

	pose := cfg.SpawnPose()
	if pose.DirX != 0 || pose.DirY != 1 || pose.FOV != 90 {
		t.Errorf("spawn pose = %+v, want facing east (0,1) with FOV 90", pose)
	}

	pal := cfg.WallPalette()
	if pal[2].X != (color.RGBA{1, 2, 3, 255}) || pal[2].Y != (color.RGBA{4, 5, 6, 255}) {
		t.Errorf("palette[2] = %+v, want overridden colors", pal[2])
	}
	if !pal.Supports(1) {
		t.Error("override dropped default wall type 1")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", `{"window": {"width": 0}}`},
		{"bad backend", `{"render": {"backend": "opengl"}}`},
		{"bad facing", `{"player": {"facing": "up"}}`},
		{"strafe too slow", `{"player": {"strafe_slow": 0.5}}`},
		{"zero ray step", `{"render": {"minimap_ray_step": 0}}`},
		{"bad palette key", `{"render": {"palette": {"x": {"x": [0,0,0], "y": [0,0,0]}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadConfig(%s) err = %v, want ErrInvalidConfig", tt.body, err)
			}
		})
	}
}

func TestLoadConfig_UnknownField(t *testing.T) {
	_, err := LoadConfig(writeFile(t, `{"windw": {}}`))
	if err == nil {
		t.Error("LoadConfig(unknown field) err = nil, want error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	cfg := DefaultConfig()
	cfg.Player.FOV = 75
	cfg.Bindings = map[string]string{"Move Forward": "i"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Player.FOV != 75 || loaded.Bindings["Move Forward"] != "i" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestCurrent(t *testing.T) {
	orig := Current()
	defer SetCurrent(orig)

	cfg := DefaultConfig()
	cfg.Window.Title = "test"
	SetCurrent(cfg)
	if Current().Window.Title != "test" {
		t.Errorf("Current().Window.Title = %q, want test", Current().Window.Title)
	}
}
