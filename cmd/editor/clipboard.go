package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/logger"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

const brushClipKind = "map-editor/brush"

var errNoClipboard = errors.New("system clipboard unavailable")

type clipPayload struct {
	Kind  string             `json:"kind"`
	Brush levels.CustomBrush `json:"brush"`
}

// Clipboard carries brushes through the system clipboard as JSON text so
// they can move between editor windows.
type Clipboard struct {
	ok bool
}

func NewClipboard() *Clipboard {
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard disabled", zap.Error(err))
		return &Clipboard{}
	}
	return &Clipboard{ok: true}
}

func (c *Clipboard) Write(b levels.CustomBrush) error {
	if c == nil || !c.ok {
		return errNoClipboard
	}
	data, err := encodeBrush(b)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func (c *Clipboard) Read() (levels.CustomBrush, error) {
	if c == nil || !c.ok {
		return levels.CustomBrush{}, errNoClipboard
	}
	return decodeBrush(clipboard.Read(clipboard.FmtText))
}

func encodeBrush(b levels.CustomBrush) ([]byte, error) {
	return json.Marshal(clipPayload{Kind: brushClipKind, Brush: b})
}

// decodeBrush rejects text that is not a brush and brushes with cells outside
// their declared size.
func decodeBrush(data []byte) (levels.CustomBrush, error) {
	var p clipPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return levels.CustomBrush{}, fmt.Errorf("clipboard: %w", err)
	}
	if p.Kind != brushClipKind {
		return levels.CustomBrush{}, errors.New("clipboard: not a brush")
	}
	b := p.Brush
	if b.Width < 1 || b.Height < 1 || len(b.Data) == 0 {
		return levels.CustomBrush{}, errors.New("clipboard: empty brush")
	}
	for pt := range b.Data {
		if pt.X < 0 || pt.Y < 0 || pt.X >= b.Width || pt.Y >= b.Height {
			return levels.CustomBrush{}, fmt.Errorf("clipboard: cell %s outside %dx%d brush", pt, b.Width, b.Height)
		}
	}
	return b, nil
}
