package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Small FontName = "small"
	Large FontName = "large"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFontWithSize parses ttf and registers a face under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadDefaults registers the game faces from ttf, falling back to Go
// Regular when ttf is empty or unreadable. It reports the parse error of
// the game font, if any.
func LoadDefaults(ttf []byte) error {
	var err error
	if len(ttf) > 0 {
		if err = loadSizes(ttf); err == nil {
			return nil
		}
	}
	if fallbackErr := loadSizes(goregular.TTF); fallbackErr != nil {
		return fallbackErr
	}
	return err
}

func loadSizes(ttf []byte) error {
	if err := LoadFontWithSize(Small, ttf, 9); err != nil {
		return err
	}
	return LoadFontWithSize(Large, ttf, 16)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
