package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontManager парсит TTF один раз и выдаёт начертания нужных размеров.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// LoadFontManager читает TTF-файл с диска.
func LoadFontManager(path string) (*FontManager, error) {
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return NewFontManager(fontData)
}

// NewFontManager разбирает уже прочитанные данные шрифта.
func NewFontManager(fontData []byte) (*FontManager, error) {
	tt, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face возвращает закэшированное начертание размера size.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}
