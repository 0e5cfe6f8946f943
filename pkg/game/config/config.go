// Package config holds the user-tunable settings: window size, player tuning, renderer
// choice and wall colors. Settings are read from a JSON file layered over defaults.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"sync"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/projection"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/player"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Renderer backends
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
	BackendCell   = "cell"
)

// Config holds all settings
type Config struct {
	Window   WindowConfig      `json:"window"`
	Player   PlayerConfig      `json:"player"`
	Render   RenderConfig      `json:"render"`
	Sound    bool              `json:"sound"`
	Language string            `json:"language"`
	DumpDir  string            `json:"dump_dir,omitempty"` // map dumps; empty = working directory
	Bindings map[string]string `json:"bindings,omitempty"` // action name -> key code
}

// WindowConfig sizes the view
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	TargetTPS int    `json:"target_tps"` // simulation ticks per second
}

// PlayerConfig sets the spawn pose and movement tuning
type PlayerConfig struct {
	SpawnX      float64 `json:"spawn_x"` // along the rows
	SpawnY      float64 `json:"spawn_y"` // along the columns
	Facing      string  `json:"facing"` // north, east, south or west
	FOV         int     `json:"fov"`
	MoveSpeed   float64 `json:"move_speed"`
	StrafeSlow  float64 `json:"strafe_slow"`
	RotateSpeed float64 `json:"rotate_speed"`
}

// RenderConfig chooses the backend and tunes the frame
type RenderConfig struct {
	Backend        string              `json:"backend"`
	Workers        int                 `json:"workers"` // 0 = one per CPU
	DepthFade      float64             `json:"depth_fade"`
	Minimap        bool                `json:"minimap"`
	MinimapSize    int                 `json:"minimap_size"`     // pixels, ebiten only
	MinimapRayStep int                 `json:"minimap_ray_step"` // cast every Nth column for the overlay
	Debug          bool                `json:"debug"`
	Palette        map[string]WallPair `json:"palette,omitempty"` // wall digit -> colors
}

// WallPair is the JSON form of a wall's two-tone color
type WallPair struct {
	X [3]uint8 `json:"x"`
	Y [3]uint8 `json:"y"`
}

// DefaultConfig returns the standard settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Raycaster",
			TargetTPS: 30,
		},
		Player: PlayerConfig{
			SpawnX:      3.0,
			SpawnY:      3.0,
			Facing:      "north",
			FOV:         player.DefaultFOV,
			MoveSpeed:   player.DefaultMoveSpeed,
			StrafeSlow:  player.DefaultStrafeSlow,
			RotateSpeed: player.DefaultRotateSpeed,
		},
		Render: RenderConfig{
			Backend:        BackendEbiten,
			Workers:        0,
			DepthFade:      projection.DefaultDepthFade,
			Minimap:        true,
			MinimapSize:    200,
			MinimapRayStep: 16,
			Debug:          false,
		},
		Sound:    false,
		Language: "en_GB",
	}
}

// LoadConfig loads config from a JSON file, layering it over the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as indented JSON
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Validate checks every setting is usable
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetTPS <= 0 {
		return invalid("target_tps %d must be positive", c.Window.TargetTPS)
	}
	if _, err := world.ParseDirection(c.Player.Facing); err != nil {
		return invalid("player facing: %v", err)
	}
	if c.Player.MoveSpeed <= 0 || c.Player.RotateSpeed <= 0 {
		return invalid("move_speed and rotate_speed must be positive")
	}
	if c.Player.StrafeSlow < 0 || c.Player.StrafeSlow >= c.Player.MoveSpeed {
		return invalid("strafe_slow %v must be in [0, move_speed)", c.Player.StrafeSlow)
	}
	switch c.Render.Backend {
	case BackendEbiten, BackendTUI, BackendCell:
	default:
		return invalid("unknown renderer backend %q", c.Render.Backend)
	}
	if c.Render.Workers < 0 {
		return invalid("workers %d must not be negative", c.Render.Workers)
	}
	if c.Render.DepthFade < 0 {
		return invalid("depth_fade %v must not be negative", c.Render.DepthFade)
	}
	if c.Render.MinimapRayStep < 1 {
		return invalid("minimap_ray_step %d must be at least 1", c.Render.MinimapRayStep)
	}
	if c.Render.MinimapSize < 0 {
		return invalid("minimap_size %d must not be negative", c.Render.MinimapSize)
	}
	for key := range c.Render.Palette {
		if _, err := parseWallKey(key); err != nil {
			return invalid("palette: %v", err)
		}
	}
	return nil
}

// Speeds returns the player movement tuning
func (c *Config) Speeds() player.Speeds {
	return player.Speeds{
		Move:   c.Player.MoveSpeed,
		Strafe: c.Player.StrafeSlow,
		Rotate: c.Player.RotateSpeed,
	}
}

// SpawnPose returns the configured starting pose
func (c *Config) SpawnPose() camera.Pose {
	facing, err := world.ParseDirection(c.Player.Facing)
	if err != nil {
		facing = world.North
	}
	dirX, dirY := facing.Vector()
	return camera.New(c.Player.SpawnX, c.Player.SpawnY, dirX, dirY, c.Player.FOV)
}

// WallPalette returns the default palette with any configured overrides applied
func (c *Config) WallPalette() projection.Palette {
	pal := projection.DefaultPalette()
	for key, pair := range c.Render.Palette {
		t, err := parseWallKey(key)
		if err != nil {
			continue
		}
		pal[t] = projection.WallColors{X: rgb(pair.X), Y: rgb(pair.Y)}
	}
	return pal
}

func parseWallKey(key string) (world.CellType, error) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > int(world.MaxCellType) {
		return 0, fmt.Errorf("wall type %q must be a digit 1-9", key)
	}
	return world.CellType(n), nil
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

var (
	current   = DefaultConfig()
	currentMu sync.RWMutex
)

// Current returns the process-wide config
func Current() *Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide config
func SetCurrent(c *Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}
