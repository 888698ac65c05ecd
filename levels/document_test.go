package levels

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDocumentMissingLayers(t *testing.T) {
	cases := []string{
		`{"width": 10, "height": 10}`,
		`{"width": 10, "height": 10, "layers": null}`,
	}
	for _, in := range cases {
		_, err := ReadDocument(strings.NewReader(in))
		if !errors.Is(err, ErrMissingLayers) {
			t.Fatalf("expected ErrMissingLayers for %s, got %v", in, err)
		}
	}
}

func TestReadDocumentMalformed(t *testing.T) {
	if _, err := ReadDocument(strings.NewReader(`{"layers": [`)); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := ReadDocument(strings.NewReader(`{"layers": [{"data": {"x": {"tileId": 1}}}]}`)); err == nil {
		t.Fatal("expected bad key error")
	}
}

func TestReadDocumentNormalizes(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`{"width": 3, "height": 3, "layers": []}`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(doc.Layers) != 1 || doc.Layers[0].ID == "" || doc.Layers[0].Data == nil {
		t.Fatalf("expected one default layer, got %+v", doc.Layers)
	}

	doc, err = ReadDocument(strings.NewReader(`{"layers": [{"id": "a", "opacity": 3}, {"id": "a"}]}`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Layers[0].Opacity != 1 {
		t.Fatalf("opacity should clamp, got %f", doc.Layers[0].Opacity)
	}
	if doc.Layers[1].ID == "a" {
		t.Fatal("duplicate ids should be reassigned")
	}
}

func TestReadDocumentRejectsNestedProperties(t *testing.T) {
	cases := map[string]string{
		"array in layer":  `{"layers": [{"data": {"0,0": {"tileId": 1, "properties": {"tags": ["x"]}}}}]}`,
		"object in layer": `{"layers": [{"data": {"0,0": {"tileId": 1, "properties": {"meta": {"a": 1}}}}}]}`,
		"array in brush":  `{"layers": [], "recentBrushes": [{"data": {"0,0": {"tileId": 1, "properties": {"tags": [1]}}}}]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(in))
			if !errors.Is(err, ErrPropertyType) {
				t.Errorf("err = %v, want ErrPropertyType", err)
			}
		})
	}

	doc, err := ReadDocument(strings.NewReader(`{"layers": [{"data": {"0,0": {"tileId": 1, "properties": {"a": "s", "b": 2, "c": false, "d": null}}}}]}`))
	if err != nil {
		t.Fatalf("primitive properties rejected: %v", err)
	}
	tile, _ := doc.Layers[0].Get(0, 0)
	if !tile.Equal(tile.Clone()) {
		t.Error("tile with primitive properties not equal to its clone")
	}
}

func TestTileEqualNestedValues(t *testing.T) {
	a := Tile{TileID: 1, Properties: map[string]any{"tags": []any{"x"}}}
	b := Tile{TileID: 1, Properties: map[string]any{"tags": []any{"x"}}}
	c := Tile{TileID: 1, Properties: map[string]any{"tags": []any{"y"}}}
	if !a.Equal(b) {
		t.Error("equal nested properties compared unequal")
	}
	if a.Equal(c) {
		t.Error("different nested properties compared equal")
	}
}

func TestReadDocumentLayerDefaults(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`{"layers": [{"id": "a", "name": "old"}, {"id": "b", "visible": false, "opacity": 0}]}`))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if l := doc.Layers[0]; !l.Visible || l.Opacity != 1 {
		t.Errorf("layer without keys: visible=%v opacity=%v, want true 1", l.Visible, l.Opacity)
	}
	if l := doc.Layers[1]; l.Visible || l.Opacity != 0 {
		t.Errorf("explicit keys overridden: visible=%v opacity=%v", l.Visible, l.Opacity)
	}
}

func TestDocumentRoundTripKeepsCoordinateKeys(t *testing.T) {
	m := NewMap(8, 8)
	m.Layers[0].Set(-3, 2, Tile{TileID: 12, FlipX: true, Properties: map[string]any{"kind": "spike"}})
	doc := &Document{
		Width:  m.Width,
		Height: m.Height,
		Layers: m.Layers,
		RecentBrushes: []CustomBrush{
			{Width: 2, Height: 1, Data: map[Point]Tile{{0, 0}: {TileID: 4}, {1, 0}: {TileID: 4, FlipX: true}}},
		},
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"-3,2"`) {
		t.Fatalf("expected x,y key in output: %s", buf.String())
	}

	back, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !LayersEqual(doc.Layers, back.Layers) {
		t.Fatalf("layers differ after reload")
	}
	if !back.RecentBrushes[0].Equal(doc.RecentBrushes[0]) {
		t.Fatalf("recent brush differs after reload")
	}
}

func TestSaveAndLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "level.json")
	m := NewMap(5, 5)
	m.Layers[0].Set(1, 1, Tile{TileID: 1})
	if err := SaveDocument(path, &Document{Width: 5, Height: 5, Layers: m.Layers}); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, ok := doc.Layers[0].Get(1, 1); !ok || got.TileID != 1 {
		t.Fatalf("unexpected tile %+v ok=%v", got, ok)
	}
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadLevelFromFS(t *testing.T) {
	doc, err := LoadLevelFromFS("sample.json")
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if len(doc.Layers) != 2 || len(doc.TileGroups) != 1 {
		t.Fatalf("unexpected sample contents: %d layers, %d groups", len(doc.Layers), len(doc.TileGroups))
	}
	tile, ok := doc.Layers[1].Get(-1, 7)
	if !ok || !tile.FlipX || tile.Properties["solid"] != true {
		t.Fatalf("negative coordinate tile not loaded: %+v", tile)
	}
	if g := doc.TileGroups[0]; g.Role != RoleTerrain || len(g.Middle) != 1 {
		t.Fatalf("unexpected group %+v", g)
	}
}
