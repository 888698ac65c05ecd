package main

import (
	"testing"

	"github.com/RezixDev/map-editor/levels"
)

func TestBrushClipRoundTrip(t *testing.T) {
	b := levels.CustomBrush{Width: 2, Height: 1, Data: map[levels.Point]levels.Tile{
		{X: 0, Y: 0}: {TileID: 3},
		{X: 1, Y: 0}: {TileID: 4, FlipX: true},
	}}
	data, err := encodeBrush(b)
	if err != nil {
		t.Fatal(err)
	}
	got, err := decodeBrush(data)
	if err != nil {
		t.Fatalf("decodeBrush() error = %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("decoded %+v, want %+v", got, b)
	}
}

func TestDecodeBrushRejects(t *testing.T) {
	tests := map[string]string{
		"plain text":   "hello",
		"other json":   `{"kind":"something","brush":{"width":1,"height":1,"data":{"0,0":{"tileId":1}}}}`,
		"empty brush":  `{"kind":"map-editor/brush","brush":{"width":1,"height":1,"data":{}}}`,
		"out of range": `{"kind":"map-editor/brush","brush":{"width":1,"height":1,"data":{"3,0":{"tileId":1}}}}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := decodeBrush([]byte(in)); err == nil {
				t.Error("decodeBrush() accepted invalid input")
			}
		})
	}
}

func TestNilClipboard(t *testing.T) {
	var c *Clipboard
	if err := c.Write(levels.SingleTileBrush(1)); err != errNoClipboard {
		t.Errorf("Write() = %v, want errNoClipboard", err)
	}
	if _, err := c.Read(); err != errNoClipboard {
		t.Errorf("Read() = %v, want errNoClipboard", err)
	}
}
