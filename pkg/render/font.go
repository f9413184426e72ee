// pkg/render/font.go
package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource parses a TTF once and hands out faces per size.
type FontSource struct {
	data  []byte
	font  *opentype.Font
	faces map[float64]font.Face
}

// LoadFont reads a TTF/OTF file; an empty path uses Go Regular.
func LoadFont(path string) (*FontSource, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontSource{data: data, font: tt, faces: make(map[float64]font.Face)}, nil
}

// Face returns a cached face for size (in pixels at 72 DPI).
func (f *FontSource) Face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Data returns the raw font bytes.
func (f *FontSource) Data() []byte { return f.data }
