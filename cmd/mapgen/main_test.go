package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RezixDev/map-editor/config"
	"github.com/RezixDev/map-editor/generator"
	"github.com/RezixDev/map-editor/levels"
)

func TestRunWritesDocument(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.GroupsDir = filepath.Join(dir, "prefabs")
	cfg.Paths.LevelsDir = dir
	cfg.Generator.Seed = 5
	cfg.Generator.Width = 48
	cfg.Generator.Height = 20

	*flagPreview = true
	defer func() { *flagPreview = false }()

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	doc, err := levels.LoadDocument(filepath.Join(dir, "generated.json"))
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if len(doc.Layers) != 3 || doc.Width != 48 || doc.Height != 20 {
		t.Fatalf("document = %dx%d with %d layers", doc.Width, doc.Height, len(doc.Layers))
	}
	if doc.Layers[generator.TerrainLayer].Len() == 0 {
		t.Error("generated terrain is empty")
	}
	if len(doc.TileGroups) == 0 {
		t.Error("registry not stored in the document")
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 20 || len(lines[0]) != 48 {
		t.Errorf("preview is %d lines of %d", len(lines), len(lines[0]))
	}
	if !strings.Contains(out.String(), "#") {
		t.Error("preview shows no terrain")
	}
}

func TestRunRejectsUnknownDrift(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.GroupsDir = t.TempDir()
	cfg.Paths.LevelsDir = t.TempDir()
	cfg.Generator.Drift = "zigzag"
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Error("run() accepted an unknown drift mode")
	}
}

func TestRunSavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapeditor.yaml")
	for name, value := range map[string]string{"save-config": "true", "config": path} {
		if err := flag.Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	defer func() {
		flag.Set("save-config", "false")
		flag.Set("config", "")
	}()

	cfg := config.Default()
	cfg.Paths.LevelsDir = t.TempDir()
	cfg.Generator.Seed = 42
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output %q does not name %s", out.String(), path)
	}
	got, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got.Generator.Seed != 42 {
		t.Errorf("saved seed = %d, want 42", got.Generator.Seed)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LevelsDir, "generated.json")); !os.IsNotExist(err) {
		t.Error("saving the config also generated a level")
	}
}
