package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/RezixDev/map-editor/config"
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/logger"
	"github.com/RezixDev/map-editor/pattern"
	"github.com/RezixDev/map-editor/prefabs"
	"github.com/RezixDev/map-editor/session"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// statusTicks is how long a status message stays up at 60 TPS.
const statusTicks = 180

// Editor is the ebiten game wrapping an editing session.
type Editor struct {
	cfg     *config.Config
	session *session.Session
	view    View
	prompt  *Prompt
	clip    *Clipboard
	watcher *prefabs.Watcher
	path    string

	status     string
	statusLeft int
	groupIdx   int
	groupWidth int
	selecting  bool
	selStart   levels.Point
	selection  *levels.SelectionRect
	lastCell   [2]int
	rightErase bool
	prevTool   session.Tool
	panning    bool
	lastMX     int
	lastMY     int
	hoverX     int
	hoverY     int
	screenW    int
	screenH    int
	pixel      *ebiten.Image
	showHelp   bool
}

func NewEditor(cfg *config.Config, s *session.Session, path string) *Editor {
	return &Editor{
		cfg:     cfg,
		session: s,
		view:    View{CellSize: cfg.Editor.CellSize, Zoom: 1, PanX: 16, PanY: 32},
		prompt:  NewPrompt(),
		path:    path,
	}
}

func (e *Editor) setStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
	e.statusLeft = statusTicks
	logger.Debug("editor status", zap.String("msg", e.status))
}

func (e *Editor) beginStroke(x, y int) {
	e.lastCell = [2]int{x, y}
	e.session.BeginStroke(x, y)
}

// dragStroke continues the stroke along every cell between the previous and
// current cursor cell.
func (e *Editor) dragStroke(x, y int) {
	if !e.session.Stroking() || e.lastCell == [2]int{x, y} {
		return
	}
	pts := line(e.lastCell[0], e.lastCell[1], x, y)
	for _, p := range pts[1:] {
		e.session.StrokeTo(p[0], p[1])
	}
	e.lastCell = [2]int{x, y}
}

func (e *Editor) endStroke() {
	e.session.EndStroke()
}

func (e *Editor) cycleGroup(delta int) {
	groups := e.session.Groups
	if len(groups) == 0 {
		e.setStatus("no smart components loaded")
		return
	}
	e.groupIdx = ((e.groupIdx+delta)%len(groups) + len(groups)) % len(groups)
	e.groupWidth = pattern.NaturalWidth(groups[e.groupIdx])
	e.selectGroup()
}

func (e *Editor) resizeGroup(delta int) {
	if len(e.session.Groups) == 0 {
		return
	}
	g := e.session.Groups[e.groupIdx%len(e.session.Groups)]
	if !g.CanResize {
		e.setStatus("%s has a fixed width", g.Name)
		return
	}
	e.groupWidth = max(1, e.groupWidth+delta)
	e.selectGroup()
}

func (e *Editor) selectGroup() {
	g := e.session.Groups[e.groupIdx]
	if e.session.SelectGroup(g.Name, e.groupWidth) {
		e.session.Tool = session.ToolBrush
		e.setStatus("component %s, width %d", g.Name, e.groupWidth)
	}
}

func (e *Editor) copySelection() bool {
	if e.selection == nil {
		e.setStatus("nothing selected")
		return false
	}
	b, ok := e.session.Copy(*e.selection)
	if !ok {
		e.setStatus("selection is empty")
		return false
	}
	if err := e.clip.Write(b); err != nil && !errors.Is(err, errNoClipboard) {
		logger.Warn("clipboard write failed", zap.Error(err))
	}
	e.setStatus("copied %dx%d", b.Width, b.Height)
	return true
}

func (e *Editor) cutSelection() {
	if e.selection == nil {
		e.setStatus("nothing selected")
		return
	}
	n := e.session.Cut(*e.selection)
	if n == 0 {
		e.setStatus("selection is empty")
		return
	}
	if err := e.clip.Write(e.session.Brush()); err != nil && !errors.Is(err, errNoClipboard) {
		logger.Warn("clipboard write failed", zap.Error(err))
	}
	e.setStatus("cut %d tiles", n)
}

// pasteAt prefers a brush from the system clipboard, falling back to the
// current brush.
func (e *Editor) pasteAt(x, y int) {
	if b, err := e.clip.Read(); err == nil {
		e.session.SetBrush(b)
	}
	if n := e.session.Paste(x, y); n > 0 {
		e.setStatus("pasted %d tiles", n)
	}
}

func (e *Editor) deleteSelection() {
	if e.selection == nil {
		return
	}
	e.setStatus("deleted %d tiles", e.session.DeleteSelection(*e.selection))
}

func (e *Editor) captureGroup(name string) {
	if e.selection == nil || name == "" {
		return
	}
	g, err := e.session.CaptureGroup(*e.selection, name)
	if err != nil {
		e.setStatus("capture failed: %v", err)
		return
	}
	e.setStatus("captured component %s (%dx%d)", g.Name, g.PreviewWidth, g.Height)
}

func (e *Editor) generate() {
	w, h := e.session.Map.Width, e.session.Map.Height
	if w <= 0 || h <= 0 {
		w, h = e.cfg.Generator.Width, e.cfg.Generator.Height
	}
	changed, err := e.session.Generate(w, h)
	switch {
	case err != nil:
		e.setStatus("generate failed: %v", err)
	case !changed:
		e.setStatus("no terrain components allow generation")
	default:
		e.selection = nil
		e.setStatus("generated %dx%d level", w, h)
	}
}

func (e *Editor) save() error {
	if err := levels.SaveDocument(e.path, e.session.Document()); err != nil {
		e.setStatus("save failed: %v", err)
		return err
	}
	e.setStatus("saved %s", e.path)
	return nil
}

func (e *Editor) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		e.setStatus("load failed: %v", err)
		return err
	}
	defer f.Close()
	if err := e.session.Load(f); err != nil {
		e.setStatus("load failed: %v", err)
		return err
	}
	e.path = path
	e.selection = nil
	e.groupIdx = 0
	e.setStatus("loaded %s", path)
	return nil
}

func (e *Editor) activeIndex() int {
	return e.session.Map.LayerIndex(e.session.ActiveLayerID())
}

func (e *Editor) stepLayer(delta int) {
	layers := e.session.Map.Layers
	i := ((e.activeIndex()+delta)%len(layers) + len(layers)) % len(layers)
	e.session.SetActiveLayer(layers[i].ID)
	e.setStatus("layer %s", layers[i].Name)
}

func (e *Editor) moveLayer(delta int) {
	e.session.MoveLayer(e.session.ActiveLayerID(), e.activeIndex()+delta)
}

func (e *Editor) toggleVisible() {
	l := e.session.ActiveLayer()
	e.session.SetLayerVisible(l.ID, !l.Visible)
}

func (e *Editor) removeLayer() {
	if !e.session.RemoveLayer(e.session.ActiveLayerID()) {
		e.setStatus("cannot remove the last layer")
	}
}

func (e *Editor) renameLayer(name string) {
	if applied, ok := e.session.RenameLayer(e.session.ActiveLayerID(), name); ok {
		e.setStatus("renamed to %s", applied)
	}
}

func (e *Editor) undo() {
	if e.session.Undo() {
		e.setStatus("undo")
	}
}

func (e *Editor) redo() {
	if e.session.Redo() {
		e.setStatus("redo")
	}
}
