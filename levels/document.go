package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrMissingLayers is returned when a persisted document has no layers array.
var ErrMissingLayers = errors.New("levels: document has no layers")

// Document is the persisted editor state: the map, the recent-brush history
// and the smart component registry.
type Document struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Layers        []Layer       `json:"layers"`
	RecentBrushes []CustomBrush `json:"recentBrushes,omitempty"`
	TileGroups    []TileGroup   `json:"tileGroups,omitempty"`
}

// Map returns a map view over a deep copy of the document layers.
func (d *Document) Map() *Map {
	return &Map{Width: d.Width, Height: d.Height, Layers: CloneLayers(d.Layers)}
}

// ReadDocument decodes and normalizes a document. On error nothing is
// returned, so callers keep their prior state.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("levels: decode document: %w", err)
	}
	if doc.Layers == nil {
		return nil, ErrMissingLayers
	}
	if doc.Width < 0 || doc.Height < 0 {
		return nil, fmt.Errorf("levels: negative map size %dx%d", doc.Width, doc.Height)
	}
	if err := normalizeLayers(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// normalizeLayers fills gaps a hand-edited document may have and rejects
// tile properties the editor cannot compare.
func normalizeLayers(doc *Document) error {
	// ensure there is at least one layer
	if len(doc.Layers) == 0 {
		doc.Layers = []Layer{NewLayer("Layer 1")}
	}
	seen := make(map[string]bool, len(doc.Layers))
	for i := range doc.Layers {
		l := &doc.Layers[i]
		if l.ID == "" || seen[l.ID] {
			l.ID = uuid.NewString()
		}
		seen[l.ID] = true
		if l.Data == nil {
			l.Data = map[Point]Tile{}
		}
		if err := validateTiles(l.Data); err != nil {
			return fmt.Errorf("levels: layer %q: %w", l.Name, err)
		}
		l.Opacity = max(0, min(l.Opacity, 1))
	}
	for i := range doc.RecentBrushes {
		if doc.RecentBrushes[i].Data == nil {
			doc.RecentBrushes[i].Data = map[Point]Tile{}
		}
		if err := validateTiles(doc.RecentBrushes[i].Data); err != nil {
			return fmt.Errorf("levels: recent brush %d: %w", i, err)
		}
	}
	return nil
}

func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func LoadDocument(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", filename, err)
	}
	defer f.Close()
	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", filename, err)
	}
	return doc, nil
}

func SaveDocument(filename string, d *Document) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("levels: write %s: %w", filename, err)
	}
	return f.Close()
}
