package session

import (
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/paint"
	"github.com/RezixDev/map-editor/pattern"
)

type Tool int

const (
	ToolBrush Tool = iota
	ToolErase
	ToolFill
	ToolSelect
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolErase:
		return "erase"
	case ToolFill:
		return "fill"
	case ToolSelect:
		return "select"
	}
	return "unknown"
}

// Brush returns a copy of the current brush.
func (s *Session) Brush() levels.CustomBrush {
	return s.brush.Clone()
}

// SetBrush makes b current and records it in the recent list.
func (s *Session) SetBrush(b levels.CustomBrush) {
	s.brush = b.Clone()
	s.remember(b)
}

// SelectTile switches to a 1x1 brush of id.
func (s *Session) SelectTile(id int) {
	s.SetBrush(levels.SingleTileBrush(id))
}

// SelectGroup expands the named smart component at width into the brush.
// A width of zero uses the component's natural width.
func (s *Session) SelectGroup(name string, width int) bool {
	for _, g := range s.Groups {
		if g.Name != name {
			continue
		}
		if width <= 0 {
			width = pattern.NaturalWidth(g)
		}
		s.SetBrush(pattern.Brush(width, g))
		return true
	}
	return false
}

// RecentBrushes lists recently used brushes, most recent first.
func (s *Session) RecentBrushes() []levels.CustomBrush {
	out := make([]levels.CustomBrush, len(s.recent))
	for i, b := range s.recent {
		out[i] = b.Clone()
	}
	return out
}

func (s *Session) remember(b levels.CustomBrush) {
	if len(b.Data) == 0 {
		return
	}
	recent := []levels.CustomBrush{b.Clone()}
	for _, r := range s.recent {
		if !r.Equal(b) && len(recent) < s.recentLimit {
			recent = append(recent, r)
		}
	}
	s.recent = recent
}

func (s *Session) ToggleFlip() {
	s.Flipped = !s.Flipped
}

// BeginStroke starts a drag at (x, y). Every cell the stroke touches until
// EndStroke shares one history entry.
func (s *Session) BeginStroke(x, y int) int {
	s.stroking = true
	s.strokeMarked = false
	return s.StrokeTo(x, y)
}

// StrokeTo applies the current tool at (x, y) and returns the cells changed.
func (s *Session) StrokeTo(x, y int) int {
	if !s.stroking {
		return 0
	}
	switch s.Tool {
	case ToolBrush:
		return s.strokeBrush(x, y)
	case ToolErase:
		return s.strokeErase(x, y)
	}
	return 0
}

func (s *Session) EndStroke() {
	s.stroking = false
	s.strokeMarked = false
}

func (s *Session) Stroking() bool {
	return s.stroking
}

func (s *Session) markStroke() {
	if s.strokeMarked {
		return
	}
	s.checkpoint()
	s.strokeMarked = true
}

func (s *Session) strokeBrush(x, y int) int {
	if len(s.brush.Data) == 0 {
		return 0
	}
	layer := s.ActiveLayer()
	if s.brush.Width == 1 && s.brush.Height == 1 && len(s.brush.Data) == 1 {
		if !s.Map.InBounds(x, y) {
			return 0
		}
		t := s.brush.Data[levels.Point{}].Clone()
		t.FlipX = t.FlipX != s.Flipped
		if cur, ok := layer.Get(x, y); ok && cur.Equal(t) {
			return 0
		}
		s.markStroke()
		paint.PaintCell(s.ActiveLayer(), x, y, &t)
		return 1
	}
	s.markStroke()
	return paint.Stamp(s.ActiveLayer(), s.brush, x, y, s.Flipped)
}

func (s *Session) strokeErase(x, y int) int {
	if !s.ActiveLayer().Occupied(x, y) {
		return 0
	}
	s.markStroke()
	paint.PaintCell(s.ActiveLayer(), x, y, nil)
	return 1
}

// FillTileID is the tile id the fill tool paints: the brush origin cell, or
// any cell of a brush without one.
func (s *Session) FillTileID() (int, bool) {
	if t, ok := s.brush.Data[levels.Point{}]; ok {
		return t.TileID, true
	}
	best, found := levels.Point{}, false
	for p := range s.brush.Data {
		if !found || p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best, found = p, true
		}
	}
	if !found {
		return 0, false
	}
	return s.brush.Data[best].TileID, true
}

// Fill flood-fills the region under (x, y) on the active layer.
func (s *Session) Fill(x, y int) int {
	id, ok := s.FillTileID()
	if !ok || !s.Map.InBounds(x, y) {
		return 0
	}
	if cur, ok := s.ActiveLayer().Get(x, y); ok && cur.TileID == id {
		return 0
	}
	s.checkpoint()
	return paint.FloodFill(s.ActiveLayer(), x, y, id, s.Map.Width, s.Map.Height, s.Flipped)
}

// Copy captures rect from the active layer into the brush. An empty
// selection leaves the brush alone.
func (s *Session) Copy(rect levels.SelectionRect) (levels.CustomBrush, bool) {
	b := paint.Capture(s.ActiveLayer(), rect)
	if len(b.Data) == 0 {
		return b, false
	}
	s.SetBrush(b)
	return b, true
}

// Cut copies rect and then clears it as one undoable action.
func (s *Session) Cut(rect levels.SelectionRect) int {
	if _, ok := s.Copy(rect); !ok {
		return 0
	}
	return s.DeleteSelection(rect)
}

func (s *Session) DeleteSelection(rect levels.SelectionRect) int {
	if len(paint.Capture(s.ActiveLayer(), rect).Data) == 0 {
		return 0
	}
	s.checkpoint()
	return paint.Clear(s.ActiveLayer(), rect)
}

// Paste stamps the current brush with its origin at (x, y).
func (s *Session) Paste(x, y int) int {
	if len(s.brush.Data) == 0 {
		return 0
	}
	s.checkpoint()
	return paint.Stamp(s.ActiveLayer(), s.brush, x, y, s.Flipped)
}

// CaptureGroup registers the selection as a smart component, replacing any
// component with the same name.
func (s *Session) CaptureGroup(rect levels.SelectionRect, name string) (levels.TileGroup, error) {
	g, err := paint.CaptureGroup(s.ActiveLayer(), rect, name)
	if err != nil {
		return levels.TileGroup{}, err
	}
	s.PutGroup(g)
	return g.Clone(), nil
}

func (s *Session) PutGroup(g levels.TileGroup) {
	for i := range s.Groups {
		if s.Groups[i].Name == g.Name {
			s.Groups[i] = g.Clone()
			return
		}
	}
	s.Groups = append(s.Groups, g.Clone())
}

// RemoveGroup drops the named component from the registry.
func (s *Session) RemoveGroup(name string) bool {
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
			return true
		}
	}
	return false
}
