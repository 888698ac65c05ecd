package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/RezixDev/map-editor/generator"
	"github.com/RezixDev/map-editor/levels"
)

func newSession(t *testing.T, w, h int) *Session {
	t.Helper()
	return New(levels.NewMap(w, h), Options{Generator: generator.NewSeeded(1, generator.Options{})})
}

func ground() levels.TileGroup {
	return levels.TileGroup{
		Name:              "ground",
		Left:              []int{1},
		Middle:            [][]int{{2}},
		Right:             []int{3},
		Single:            []int{4},
		Height:            1,
		Role:              levels.RoleTerrain,
		CanResize:         true,
		AllowInGeneration: true,
		Density:           5,
	}
}

func TestStrokeIsOneUndoStep(t *testing.T) {
	s := newSession(t, 10, 10)
	s.SelectTile(7)

	s.BeginStroke(0, 0)
	for x := 1; x < 5; x++ {
		s.StrokeTo(x, 0)
	}
	s.EndStroke()

	if got := s.ActiveLayer().Len(); got != 5 {
		t.Fatalf("painted %d cells, want 5", got)
	}
	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if got := s.ActiveLayer().Len(); got != 0 {
		t.Errorf("after one undo %d cells remain, want 0", got)
	}
	if s.CanUndo() {
		t.Error("stroke left more than one history entry")
	}
	if !s.Redo() || s.ActiveLayer().Len() != 5 {
		t.Error("redo did not restore the stroke")
	}
}

func TestStrokeWithoutChangeSkipsHistory(t *testing.T) {
	s := newSession(t, 4, 4)
	s.Tool = ToolErase
	s.BeginStroke(1, 1)
	s.StrokeTo(2, 2)
	s.EndStroke()
	if s.CanUndo() {
		t.Error("erasing empty cells recorded history")
	}

	s.Tool = ToolBrush
	s.SelectTile(1)
	s.BeginStroke(-1, 0)
	s.EndStroke()
	if s.CanUndo() {
		t.Error("out-of-bounds single-cell paint recorded history")
	}
	if s.ActiveLayer().Len() != 0 {
		t.Error("out-of-bounds paint wrote a tile")
	}
}

func TestStrokeToWithoutBegin(t *testing.T) {
	s := newSession(t, 4, 4)
	s.SelectTile(1)
	if n := s.StrokeTo(1, 1); n != 0 {
		t.Errorf("StrokeTo outside a stroke changed %d cells", n)
	}
}

func TestEraseStroke(t *testing.T) {
	s := newSession(t, 4, 4)
	s.SelectTile(3)
	s.Paste(0, 0)
	s.Paste(1, 0)

	s.Tool = ToolErase
	s.BeginStroke(0, 0)
	s.StrokeTo(1, 0)
	s.EndStroke()

	if s.ActiveLayer().Len() != 0 {
		t.Errorf("erase left %d cells", s.ActiveLayer().Len())
	}
	s.Undo()
	if s.ActiveLayer().Len() != 2 {
		t.Errorf("undo of erase restored %d cells, want 2", s.ActiveLayer().Len())
	}
}

func TestFlippedGroupStroke(t *testing.T) {
	s := newSession(t, 20, 5)
	g := ground()
	g.Middle = [][]int{{2}, {5}}
	s.PutGroup(g)
	if !s.SelectGroup("ground", 5) {
		t.Fatal("SelectGroup() = false")
	}
	s.ToggleFlip()
	s.BeginStroke(10, 2)
	s.EndStroke()

	want := map[int]int{10: 3, 11: 2, 12: 5, 13: 2, 14: 1}
	for x, id := range want {
		tile, ok := s.ActiveLayer().Get(x, 2)
		if !ok || tile.TileID != id || !tile.FlipX {
			t.Errorf("cell (%d,2) = %+v, %v; want id %d flipped", x, tile, ok, id)
		}
	}
}

func TestFill(t *testing.T) {
	s := newSession(t, 5, 5)
	s.SelectTile(2)
	if n := s.Fill(0, 0); n != 25 {
		t.Fatalf("Fill() = %d, want 25", n)
	}
	if n := s.Fill(3, 3); n != 0 {
		t.Errorf("refill with same id = %d, want 0", n)
	}
	s.Undo()
	if s.ActiveLayer().Len() != 0 || s.CanUndo() {
		t.Error("fill was not a single undo step")
	}
	if n := s.Fill(9, 9); n != 0 || s.CanUndo() {
		t.Error("out-of-bounds fill mutated or recorded history")
	}
}

func TestCopyPasteAndDelete(t *testing.T) {
	s := newSession(t, 10, 10)
	s.SelectTile(1)
	s.Paste(0, 0)
	s.SelectTile(2)
	s.Paste(1, 0)

	rect := levels.Normalize(1, 0, 0, 0)
	b, ok := s.Copy(rect)
	if !ok || len(b.Data) != 2 {
		t.Fatalf("Copy() = %+v, %v", b, ok)
	}
	s.Paste(5, 5)
	if tile, _ := s.ActiveLayer().Get(6, 5); tile.TileID != 2 {
		t.Errorf("pasted (6,5) = %d, want 2", tile.TileID)
	}

	if n := s.DeleteSelection(levels.SelectionRect{X: 5, Y: 5, W: 2, H: 1}); n != 2 {
		t.Errorf("DeleteSelection() = %d, want 2", n)
	}
	if n := s.DeleteSelection(levels.SelectionRect{X: 5, Y: 5, W: 2, H: 1}); n != 0 {
		t.Errorf("second DeleteSelection() = %d, want 0", n)
	}
	if _, ok := s.Copy(levels.SelectionRect{X: 8, Y: 8, W: 2, H: 2}); ok {
		t.Error("copy of an empty region reported ok")
	}
}

func TestCutIsOneUndoStep(t *testing.T) {
	s := newSession(t, 10, 10)
	s.SelectTile(4)
	s.Paste(2, 2)
	before := levels.CloneLayers(s.Map.Layers)

	if n := s.Cut(levels.SelectionRect{X: 2, Y: 2, W: 1, H: 1}); n != 1 {
		t.Fatalf("Cut() = %d, want 1", n)
	}
	s.Undo()
	if !levels.LayersEqual(s.Map.Layers, before) {
		t.Error("undo after cut did not restore the layer")
	}
}

func TestRecentBrushes(t *testing.T) {
	s := New(levels.NewMap(4, 4), Options{RecentLimit: 3})
	for _, id := range []int{1, 2, 3, 2, 4} {
		s.SelectTile(id)
	}
	recent := s.RecentBrushes()
	var got []int
	for _, b := range recent {
		got = append(got, b.Data[levels.Point{}].TileID)
	}
	want := []int{4, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("recent = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("recent = %v, want %v", got, want)
		}
	}
}

func TestCaptureGroup(t *testing.T) {
	s := newSession(t, 10, 10)
	for x, id := range []int{1, 2, 3} {
		s.SelectTile(id)
		s.Paste(x, 0)
	}
	g, err := s.CaptureGroup(levels.SelectionRect{X: 0, Y: 0, W: 3, H: 1}, "strip")
	if err != nil {
		t.Fatalf("CaptureGroup() error = %v", err)
	}
	if g.Left[0] != 1 || g.Right[0] != 3 || g.Middle[0][0] != 2 {
		t.Errorf("captured group = %+v", g)
	}
	if len(s.Groups) != 1 {
		t.Fatalf("registry has %d groups, want 1", len(s.Groups))
	}
	if _, err := s.CaptureGroup(levels.SelectionRect{X: 0, Y: 0, W: 3, H: 1}, "strip"); err != nil {
		t.Fatal(err)
	}
	if len(s.Groups) != 1 {
		t.Error("recapturing the same name added a duplicate")
	}
	if _, err := s.CaptureGroup(levels.SelectionRect{X: 0, Y: 0, W: 4, H: 1}, "gap"); err == nil {
		t.Error("capture of a sparse selection succeeded")
	}
	if !s.RemoveGroup("strip") || len(s.Groups) != 0 {
		t.Error("RemoveGroup did not drop the group")
	}
}

func TestLayerOps(t *testing.T) {
	s := newSession(t, 4, 4)
	first := s.ActiveLayerID()

	id := s.AddLayer("")
	if s.ActiveLayerID() != id || len(s.Map.Layers) != 2 {
		t.Fatal("AddLayer did not add and activate a layer")
	}
	if name, ok := s.RenameLayer(id, "Layer 1"); !ok || name != "Layer 1 (1)" {
		t.Errorf("RenameLayer() = %q, %v", name, ok)
	}
	if !s.MoveLayer(id, 0) || s.Map.Layers[0].ID != id {
		t.Error("MoveLayer did not move to the bottom")
	}
	if s.MoveLayer(id, 0) {
		t.Error("moving to the current position reported a change")
	}
	if !s.SetLayerVisible(id, false) || s.SetLayerVisible(id, false) {
		t.Error("SetLayerVisible change detection")
	}
	if !s.SetLayerOpacity(id, 0.5) {
		t.Error("SetLayerOpacity() = false")
	}

	if !s.RemoveLayer(id) {
		t.Fatal("RemoveLayer() = false")
	}
	if s.ActiveLayerID() != first {
		t.Errorf("active layer after removal = %s, want %s", s.ActiveLayerID(), first)
	}
	if s.RemoveLayer(first) {
		t.Error("removed the last layer")
	}

	for s.CanUndo() {
		s.Undo()
	}
	if len(s.Map.Layers) != 1 || s.Map.Layers[0].ID != first {
		t.Error("undoing every layer op did not restore the original stack")
	}
	s.ActiveLayer()
}

func TestSetLayerOpacityClampsBeforeCompare(t *testing.T) {
	s := newSession(t, 4, 4)
	id := s.ActiveLayerID()
	tests := []struct {
		name    string
		opacity float64
		want    bool
	}{
		{"above range at full", 2, false},
		{"lower", 0.25, true},
		{"same", 0.25, false},
		{"below range", -3, true},
		{"below range at zero", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			past := s.CanUndo()
			if got := s.SetLayerOpacity(id, tt.opacity); got != tt.want {
				t.Errorf("SetLayerOpacity(%v) = %v, want %v", tt.opacity, got, tt.want)
			}
			if !tt.want && s.CanUndo() != past {
				t.Error("unchanged opacity recorded history")
			}
		})
	}
}

func TestUndoRestoresActiveLayer(t *testing.T) {
	s := newSession(t, 4, 4)
	s.AddLayer("top")
	s.Undo()
	if s.Map.LayerIndex(s.ActiveLayerID()) < 0 {
		t.Error("active layer points at a layer undo removed")
	}
}

func TestActiveLayerPanicsWhenMissing(t *testing.T) {
	s := newSession(t, 4, 4)
	if s.SetActiveLayer("nope") {
		t.Fatal("SetActiveLayer accepted an unknown id")
	}
	s.active = "nope"
	defer func() {
		if recover() == nil {
			t.Error("ActiveLayer did not panic")
		}
	}()
	s.ActiveLayer()
}

func TestGenerate(t *testing.T) {
	s := newSession(t, 4, 4)
	changed, err := s.Generate(40, 20)
	if err != nil || changed {
		t.Fatalf("Generate() without groups = %v, %v; want no-op", changed, err)
	}
	if s.CanUndo() {
		t.Error("no-op generate recorded history")
	}

	s.PutGroup(ground())
	changed, err = s.Generate(40, 20)
	if err != nil || !changed {
		t.Fatalf("Generate() = %v, %v", changed, err)
	}
	if len(s.Map.Layers) != 3 || s.Map.Width != 40 || s.Map.Height != 20 {
		t.Fatalf("map after generate = %dx%d with %d layers", s.Map.Width, s.Map.Height, len(s.Map.Layers))
	}
	if s.ActiveLayerID() != s.Map.Layers[generator.TerrainLayer].ID {
		t.Error("terrain layer is not active after generate")
	}
	if s.Map.Layers[generator.TerrainLayer].Len() == 0 {
		t.Error("generated terrain is empty")
	}
	s.Undo()
	if len(s.Map.Layers) != 1 {
		t.Error("undo did not restore the pre-generate layers")
	}
}

func TestGenerateUndoRestoresSize(t *testing.T) {
	s := newSession(t, 10, 10)
	s.PutGroup(ground())
	if changed, err := s.Generate(60, 30); err != nil || !changed {
		t.Fatalf("Generate() = %v, %v", changed, err)
	}
	generated := s.Map.Clone()

	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if s.Map.Width != 10 || s.Map.Height != 10 || len(s.Map.Layers) != 1 {
		t.Errorf("after undo: %dx%d with %d layers, want 10x10 with 1", s.Map.Width, s.Map.Height, len(s.Map.Layers))
	}
	if n := s.Fill(50, 20); n != 0 {
		t.Errorf("fill outside the restored bounds painted %d cells", n)
	}

	if !s.Redo() {
		t.Fatal("Redo() = false")
	}
	if s.Map.Width != 60 || s.Map.Height != 30 {
		t.Errorf("after redo: %dx%d, want 60x30", s.Map.Width, s.Map.Height)
	}
	if !levels.LayersEqual(s.Map.Layers, generated.Layers) {
		t.Error("redo did not bring back the generated layers")
	}
}

func TestGenerateSkipsOptedOutGroups(t *testing.T) {
	s := newSession(t, 4, 4)
	g := ground()
	g.AllowInGeneration = false
	s.PutGroup(g)
	if changed, err := s.Generate(40, 20); err != nil || changed {
		t.Errorf("Generate() = %v, %v; want no-op", changed, err)
	}
}

func TestSaveLoad(t *testing.T) {
	s := newSession(t, 8, 8)
	s.SelectTile(5)
	s.Paste(1, 1)
	s.PutGroup(ground())

	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		t.Fatal(err)
	}

	other := newSession(t, 2, 2)
	if err := other.Load(&buf); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !levels.LayersEqual(other.Map.Layers, s.Map.Layers) {
		t.Error("loaded layers differ")
	}
	if len(other.Groups) != 1 || other.Groups[0].Name != "ground" {
		t.Errorf("loaded groups = %+v", other.Groups)
	}
	if other.Brush().Data[levels.Point{}].TileID != 5 {
		t.Error("recent brush not restored as the current brush")
	}
	if other.CanUndo() {
		t.Error("history survived a load")
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	s := newSession(t, 8, 8)
	s.SelectTile(5)
	s.Paste(1, 1)
	before := levels.CloneLayers(s.Map.Layers)

	for _, in := range []string{
		`{"width":4,"height":4}`,
		`{not json`,
		`{"width":4,"height":4,"layers":[{"data":{"0,0":{"tileId":1,"properties":{"tags":["x"]}}}}]}`,
	} {
		if err := s.Load(strings.NewReader(in)); err == nil {
			t.Errorf("Load(%q) succeeded", in)
		}
	}
	if !levels.LayersEqual(s.Map.Layers, before) || s.Map.Width != 8 {
		t.Error("failed load changed the session")
	}
	if !s.CanUndo() {
		t.Error("failed load cleared history")
	}
}
