package fonts

import (
	"bytes"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body    FontName = "body"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Display FontName = "display"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	// uiSource backs the ebitenui faces
	uiSource *text.GoTextFaceSource
)

// LoadDefaults registers every face from the bundled Go fonts, or from
// override when it is non-empty. Arabic strings need an override with
// Arabic glyphs.
func LoadDefaults(override []byte) error {
	regular, bold := goregular.TTF, gobold.TTF
	if len(override) > 0 {
		regular, bold = override, override
	}
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Body, regular, 16},
		{Bold, bold, 20},
		{Title, bold, 40},
		{Display, bold, 56},
		{Small, regular, 12},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(regular))
	if err != nil {
		return fmt.Errorf("ui font: %w", err)
	}
	uiSource = src
	return nil
}

// ReadOverride reads a TTF file for LoadDefaults
func ReadOverride(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return b, nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// UIFace returns a text/v2 face for ebitenui widgets
func UIFace(size float64) text.Face {
	if uiSource == nil {
		panic("fonts not loaded")
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
