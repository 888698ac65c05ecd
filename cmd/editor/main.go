// Command editor is the interactive tile map editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/RezixDev/map-editor/config"
	"github.com/RezixDev/map-editor/generator"
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/logger"
	"github.com/RezixDev/map-editor/prefabs"
	"github.com/RezixDev/map-editor/session"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var flagLevel = flag.String("level", "", "Level to open: a file path or the name of a bundled level")

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("config written to", path)
		return
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	prefabs.Dir = cfg.Paths.GroupsDir
	gc := cfg.Generator
	gen, err := generator.Configure(gc.Seed, gc.Drift, gc.Policy)
	if err != nil {
		logger.Error("generator config", zap.Error(err))
		os.Exit(1)
	}

	s, path, err := openSession(cfg, *flagLevel, gen)
	if err != nil {
		logger.Error("open level", zap.String("level", *flagLevel), zap.Error(err))
		os.Exit(1)
	}
	addRegistry(s)

	e := NewEditor(cfg, s, path)
	e.clip = NewClipboard()
	if w, err := prefabs.NewWatcher(cfg.Paths.GroupsDir, filepath.Join(cfg.Paths.GroupsDir, "scripts")); err != nil {
		logger.Info("hot reload disabled", zap.Error(err))
	} else {
		e.watcher = w
		defer w.Close()
	}

	logger.Info("editor starting", zap.String("level", path), zap.Int("groups", len(s.Groups)))
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Map Editor - " + filepath.Base(path))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil {
		logger.Error("editor exited", zap.Error(err))
	}
}

// openSession loads name from disk, then from the bundled levels, and starts
// an empty map when no name is given.
func openSession(cfg *config.Config, name string, gen *generator.Generator) (*session.Session, string, error) {
	opts := session.Options{
		HistoryLimit: cfg.Editor.HistoryLimit,
		RecentLimit:  cfg.Editor.RecentLimit,
		Generator:    gen,
	}
	if name == "" {
		m := levels.NewMap(cfg.Editor.MapWidth, cfg.Editor.MapHeight)
		return session.New(m, opts), filepath.Join(cfg.Paths.LevelsDir, "untitled.json"), nil
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}

	doc, err := levels.LoadDocument(name)
	if err == nil {
		return session.FromDocument(doc, opts), name, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", err
	}
	doc, err = levels.LoadLevelFromFS(filepath.Base(name))
	if err != nil {
		return nil, "", err
	}
	return session.FromDocument(doc, opts), filepath.Join(cfg.Paths.LevelsDir, filepath.Base(name)), nil
}

// addRegistry adds registry components the document does not already define.
func addRegistry(s *session.Session) {
	groups, err := prefabs.LoadGroups()
	if err != nil {
		logger.Warn("load components", zap.Error(err))
		return
	}
	known := make(map[string]bool, len(s.Groups))
	for _, g := range s.Groups {
		known[g.Name] = true
	}
	for _, g := range groups {
		if !known[g.Name] {
			s.PutGroup(g)
		}
	}
}
