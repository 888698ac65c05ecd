package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadLevelFromFS reads a document bundled with the binary.
func LoadLevelFromFS(name string) (*Document, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	doc, err := ReadDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	return doc, nil
}
