package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"raycaster/pkg/engine/input"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/devtools"
	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/gameplay"
	"raycaster/pkg/game/generator"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/renderer/cell"
	ebitenRenderer "raycaster/pkg/game/renderer/ebiten"
	"raycaster/pkg/game/renderer/tui"
)

// flags holds the command line; zero values mean "not given"
type flags struct {
	mapPath     string
	configPath  string
	backend     string
	fov         int
	width       int
	height      int
	workers     int
	lang        string
	debug       bool
	sound       bool
	generate    int
	generatorID string
	seed        int64
	writeConfig string
	dumpDir     string
	devMap      bool
}

func parseFlags() (*flags, map[string]bool) {
	f := &flags{}
	flag.StringVar(&f.mapPath, "map", "", "map file to load (default: built-in 10x10 map)")
	flag.StringVar(&f.configPath, "config", "", "JSON settings file")
	flag.StringVar(&f.backend, "renderer", "", "renderer backend: ebiten, tui or cell")
	flag.IntVar(&f.fov, "fov", 0, "field of view in degrees (1-180)")
	flag.IntVar(&f.width, "width", 0, "view width in pixels")
	flag.IntVar(&f.height, "height", 0, "view height in pixels")
	flag.IntVar(&f.workers, "workers", 0, "ray casting workers (0 = one per CPU)")
	flag.StringVar(&f.lang, "lang", "", "language for HUD and messages, e.g. en_GB")
	flag.BoolVar(&f.debug, "debug", false, "start with the FPS/FOV/position overlay shown")
	flag.BoolVar(&f.sound, "sound", false, "play a thud when walking into a wall")
	flag.IntVar(&f.generate, "generate", 0, "play on a generated N x N map instead of -map")
	flag.StringVar(&f.generatorID, "generator", generator.DefaultName, fmt.Sprintf("map generator for -generate %v", generator.Names()))
	flag.Int64Var(&f.seed, "seed", 0, "seed for -generate (default: current time)")
	flag.StringVar(&f.writeConfig, "write-config", "", "write the effective settings to this file and exit")
	flag.StringVar(&f.dumpDir, "dump-dir", "", "directory for map dumps and screenshots (default: working directory)")
	flag.BoolVar(&f.devMap, "devmap", false, "play on the developer map with a pillar of every wall type")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	return f, set
}

// applyFlags copies flags that were given on the command line over the config
func applyFlags(cfg *config.Config, f *flags, set map[string]bool) {
	if set["renderer"] {
		cfg.Render.Backend = f.backend
	}
	if set["fov"] {
		cfg.Player.FOV = f.fov
	}
	if set["width"] {
		cfg.Window.Width = f.width
	}
	if set["height"] {
		cfg.Window.Height = f.height
	}
	if set["workers"] {
		cfg.Render.Workers = f.workers
	}
	if set["lang"] {
		cfg.Language = f.lang
	}
	if set["debug"] {
		cfg.Render.Debug = f.debug
	}
	if set["sound"] {
		cfg.Sound = f.sound
	}
	if set["dump-dir"] {
		cfg.DumpDir = f.dumpDir
	}
}

// applyBindings installs the key overrides from the config
func applyBindings(cfg *config.Config) error {
	for name, code := range cfg.Bindings {
		action, err := input.ParseAction(name)
		if err != nil {
			return fmt.Errorf("bindings: %w", err)
		}
		input.SetSingleBinding(action, code)
	}
	return nil
}

// loadGrid returns the grid to play on and the path it came from, if any.
// Every source is validated so startup fails before anything is drawn.
func loadGrid(f *flags) (*world.Grid, string, error) {
	grid, path, err := pickGrid(f)
	if err != nil {
		return nil, "", err
	}
	if err := grid.Validate(); err != nil {
		if path != "" {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return nil, "", err
	}
	return grid, path, nil
}

func pickGrid(f *flags) (*world.Grid, string, error) {
	if f.devMap {
		return devtools.DevGrid(), "", nil
	}
	if f.generate > 0 {
		seed := f.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gen, err := generator.ByName(f.generatorID, seed)
		if err != nil {
			return nil, "", err
		}
		if f.generate < generator.MinSize {
			return nil, "", fmt.Errorf("-generate %d: maps are at least %d cells across", f.generate, generator.MinSize)
		}
		log.Printf("Generating %dx%d map with %s (seed %d)", f.generate, f.generate, gen.Name(), seed)
		return gen.Generate(f.generate, f.generate), "", nil
	}

	if f.mapPath == "" {
		return world.DefaultGrid(), "", nil
	}
	grid, err := world.LoadMap(f.mapPath)
	if err != nil {
		return nil, "", err
	}
	return grid, f.mapPath, nil
}

func newRenderer(cfg *config.Config) renderer.Renderer {
	switch cfg.Render.Backend {
	case config.BackendTUI:
		return tui.New()
	case config.BackendCell:
		return cell.New(nil)
	default:
		return ebitenRenderer.New(ebitenRenderer.Options{
			Width:       cfg.Window.Width,
			Height:      cfg.Window.Height,
			Title:       cfg.Window.Title,
			MinimapSize: cfg.Render.MinimapSize,
		})
	}
}

func run(cfg *config.Config, f *flags) error {
	grid, mapPath, err := loadGrid(f)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	log.Printf("Map loaded: %dx%d", grid.Rows(), grid.Cols())

	// Messages are formatted by the active renderer, so it is set up first
	r := newRenderer(cfg)
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		return err
	}
	defer r.Close()

	g, err := gameplay.BuildGame(cfg, grid)
	if err != nil {
		return err
	}
	g.MapPath = mapPath
	if cfg.Sound {
		gameplay.EnableSound(g)
	}
	defer gameplay.Shutdown(g)

	builder := frame.NewBuilder(cfg.WallPalette(), cfg.Render.DepthFade, cfg.Render.MinimapRayStep)
	loop := gameplay.NewLoop(g, r, builder, cfg.Window.TargetTPS)
	return r.Run(loop.Run)
}

func main() {
	f, set := parseFlags()

	cfg := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	applyFlags(cfg, f, set)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if f.writeConfig != "" {
		if err := cfg.Save(f.writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Settings written to %s", f.writeConfig)
		return
	}

	config.SetCurrent(cfg)
	gotext.Configure("locales", cfg.Language, "default")
	if err := applyBindings(cfg); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if err := run(cfg, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
