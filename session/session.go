// Package session is the editing surface an input layer drives: it owns the
// map, the active layer, the current brush and the undo history, and
// checkpoints exactly once before the first change of every user action.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/RezixDev/map-editor/generator"
	"github.com/RezixDev/map-editor/history"
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/logger"
	"go.uber.org/zap"
)

const DefaultRecentLimit = 10

type Options struct {
	HistoryLimit int
	RecentLimit  int
	// Generator is used by Generate; nil gets a time-seeded default.
	Generator    *generator.Generator
}

type Session struct {
	Map     *levels.Map
	Groups  []levels.TileGroup
	// Flipped mirrors stamps and sets the flip of filled tiles.
	Flipped bool
	Tool    Tool

	active      string
	history     *history.History
	brush       levels.CustomBrush
	recent      []levels.CustomBrush
	recentLimit int
	gen         *generator.Generator

	stroking     bool
	strokeMarked bool
}

// New wraps m. The top layer starts active.
func New(m *levels.Map, opts Options) *Session {
	if m == nil || len(m.Layers) == 0 {
		w, h := 0, 0
		if m != nil {
			w, h = m.Width, m.Height
		}
		m = levels.NewMap(w, h)
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultRecentLimit
	}
	if opts.Generator == nil {
		opts.Generator = generator.New(generator.Options{})
	}
	return &Session{
		Map:         m,
		active:      m.Layers[len(m.Layers)-1].ID,
		history:     history.New(opts.HistoryLimit),
		brush:       levels.SingleTileBrush(0),
		recentLimit: opts.RecentLimit,
		gen:         opts.Generator,
	}
}

// FromDocument opens a loaded document.
func FromDocument(doc *levels.Document, opts Options) *Session {
	s := New(doc.Map(), opts)
	s.Groups = cloneGroups(doc.TileGroups)
	for i := len(doc.RecentBrushes) - 1; i >= 0; i-- {
		s.remember(doc.RecentBrushes[i])
	}
	if len(s.recent) > 0 {
		s.brush = s.recent[0].Clone()
	}
	return s
}

// Document snapshots the persisted state.
func (s *Session) Document() *levels.Document {
	recent := make([]levels.CustomBrush, len(s.recent))
	for i, b := range s.recent {
		recent[i] = b.Clone()
	}
	return &levels.Document{
		Width:         s.Map.Width,
		Height:        s.Map.Height,
		Layers:        levels.CloneLayers(s.Map.Layers),
		RecentBrushes: recent,
		TileGroups:    cloneGroups(s.Groups),
	}
}

// Load replaces the session content with a document read from r. On error
// the session is untouched.
func (s *Session) Load(r io.Reader) error {
	doc, err := levels.ReadDocument(r)
	if err != nil {
		return fmt.Errorf("session: load: %w", err)
	}
	fresh := FromDocument(doc, Options{RecentLimit: s.recentLimit, Generator: s.gen})
	fresh.history = s.history
	fresh.history.Reset()
	fresh.Tool = s.Tool
	*s = *fresh
	return nil
}

func (s *Session) Save(w io.Writer) error {
	return s.Document().Write(w)
}

// ActiveLayer returns the painting target. A missing active layer is a
// programming error.
func (s *Session) ActiveLayer() *levels.Layer {
	l := s.Map.LayerByID(s.active)
	if l == nil {
		panic(fmt.Sprintf("session: active layer %q not in map", s.active))
	}
	return l
}

func (s *Session) ActiveLayerID() string {
	return s.active
}

func (s *Session) SetActiveLayer(id string) bool {
	if s.Map.LayerIndex(id) < 0 {
		return false
	}
	s.active = id
	return true
}

// checkpoint records history once per action. Strokes call it through
// markStroke so a drag costs one entry.
func (s *Session) checkpoint() {
	s.history.Checkpoint(s.Map)
}

func (s *Session) Undo() bool {
	restored, ok := s.history.Undo(s.Map)
	if !ok {
		return false
	}
	s.restore(restored)
	return true
}

func (s *Session) Redo() bool {
	restored, ok := s.history.Redo(s.Map)
	if !ok {
		return false
	}
	s.restore(restored)
	return true
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

func (s *Session) restore(m *levels.Map) {
	s.Map.Width, s.Map.Height = m.Width, m.Height
	s.Map.Layers = m.Layers
	s.stroking = false
	if s.Map.LayerIndex(s.active) < 0 {
		s.active = s.Map.Layers[len(s.Map.Layers)-1].ID
	}
}

// SetGenerator swaps the generator, e.g. after a policy script changed.
func (s *Session) SetGenerator(g *generator.Generator) {
	if g != nil {
		s.gen = g
	}
}

// Generate replaces the layers with a generated level of the given size,
// using the session's eligible groups. With no eligible terrain group it
// does nothing and returns false.
func (s *Session) Generate(width, height int) (bool, error) {
	layers, err := s.gen.Generate(width, height, generator.Eligible(s.Groups))
	switch {
	case errors.Is(err, generator.ErrNoTerrainGroups), errors.Is(err, generator.ErrEmptyMap):
		logger.Debug("generate skipped", zap.Error(err))
		return false, nil
	case err != nil:
		return false, err
	}
	s.checkpoint()
	s.Map.Width, s.Map.Height = width, height
	s.Map.Layers = layers
	s.active = layers[generator.TerrainLayer].ID
	s.stroking = false
	return true, nil
}

func cloneGroups(src []levels.TileGroup) []levels.TileGroup {
	if src == nil {
		return nil
	}
	out := make([]levels.TileGroup, len(src))
	for i, g := range src {
		out[i] = g.Clone()
	}
	return out
}
