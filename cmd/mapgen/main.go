// Command mapgen generates a level from the smart component registry and
// writes it as an editor document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/RezixDev/map-editor/config"
	"github.com/RezixDev/map-editor/generator"
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/logger"
	"github.com/RezixDev/map-editor/physics"
	"github.com/RezixDev/map-editor/prefabs"
	"go.uber.org/zap"
)

var (
	flagOut     = flag.String("out", "", "Output document path (default <levels_dir>/generated.json)")
	flagPreview = flag.Bool("preview", false, "Print an ASCII preview of the level")
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("mapgen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, stdout io.Writer) error {
	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(stdout, "config written to %s\n", path)
		return nil
	}

	prefabs.Dir = cfg.Paths.GroupsDir
	groups, err := prefabs.LoadGroups()
	if err != nil {
		return err
	}

	gc := cfg.Generator
	gen, err := generator.Configure(gc.Seed, gc.Drift, gc.Policy)
	if err != nil {
		return err
	}
	layers, err := gen.Generate(gc.Width, gc.Height, generator.Eligible(groups))
	if errors.Is(err, generator.ErrNoTerrainGroups) {
		return fmt.Errorf("no terrain groups in %s allow generation", cfg.Paths.GroupsDir)
	}
	if err != nil {
		return err
	}

	world := physics.NewWorld(&layers[generator.CollisionLayer], gc.Width, gc.Height)

	out := *flagOut
	if out == "" {
		out = filepath.Join(cfg.Paths.LevelsDir, "generated.json")
	}
	doc := &levels.Document{
		Width:      gc.Width,
		Height:     gc.Height,
		Layers:     layers,
		TileGroups: groups,
	}
	if err := levels.SaveDocument(out, doc); err != nil {
		return err
	}

	logger.Info("level written",
		zap.String("path", out),
		zap.Int("width", gc.Width),
		zap.Int("height", gc.Height),
		zap.Uint64("seed", gc.Seed),
		zap.Int("terrain_cells", layers[generator.TerrainLayer].Len()),
		zap.Int("background_cells", layers[generator.BackgroundLayer].Len()),
		zap.Int("collision_shapes", len(world.Rects)),
	)

	if *flagPreview {
		preview(stdout, layers, gc.Width, gc.Height)
	}
	return nil
}

// preview draws terrain as '#', background as '~' and empty cells as '.'.
func preview(w io.Writer, layers []levels.Layer, width, height int) {
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case layers[generator.TerrainLayer].Occupied(x, y):
				b.WriteByte('#')
			case layers[generator.BackgroundLayer].Occupied(x, y):
				b.WriteByte('~')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
