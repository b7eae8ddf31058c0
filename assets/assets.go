// Package assets loads images, fonts and audio from the game's data
// directory. Files are read through an fs.FS so the directory can be swapped
// with --assets.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"maps"
	"slices"

	cfg "github.com/automoto/tangent/config"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
)

// Asset paths relative to the data directory.
const (
	TilesImage      = "images/tiles.bmp"
	PlayerImage     = "images/player.bmp"
	EnemyImage      = "images/enemy.bmp"
	BackgroundImage = "images/bg.bmp"
	LivesImage      = "images/lives.bmp"
	FontFile        = "images/font.ttf"
)

// colorKey is drawn transparent in every sprite sheet.
var colorKey = color.NRGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}

type ImageLoader struct {
	fsys       fs.FS
	logger     *zap.Logger
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	missing    map[string]bool
}

func NewImageLoader(fsys fs.FS, logger *zap.Logger) *ImageLoader {
	return &ImageLoader{
		fsys:       fsys,
		logger:     logger,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// Load reads and decodes an image, keying out magenta.
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(KeyOut(src, colorKey))
	l.cache[path] = img
	return img, nil
}

// Get returns the image at path or nil when it cannot be loaded. Failures
// are logged once per path.
func (l *ImageLoader) Get(path string) *ebiten.Image {
	if l.missing[path] {
		return nil
	}
	img, err := l.Load(path)
	if err != nil {
		l.missing[path] = true
		l.logger.Warn("image unavailable, drawing placeholders", zap.String("path", path), zap.Error(err))
		return nil
	}
	return img
}

// Frame returns a cached sub-image of a sheet, or nil if the sheet is missing.
func (l *ImageLoader) Frame(path string, r image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%d,%d,%d,%d", path, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.Get(path)
	if sheet == nil {
		return nil
	}
	frame := sheet.SubImage(r).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// KeyOut copies src with every pixel matching key made fully transparent.
func KeyOut(src image.Image, key color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		if p[0] == key.R && p[1] == key.G && p[2] == key.B {
			p[3] = 0
		}
	}
	return dst
}

// ReadFont returns the raw TrueType data of the game font.
func ReadFont(fsys fs.FS) ([]byte, error) {
	return fs.ReadFile(fsys, FontFile)
}

// Images lists every sprite sheet the game draws.
var Images = []string{TilesImage, PlayerImage, EnemyImage, BackgroundImage, LivesImage}

// Verify reads every game asset up front. Images must decode; the font and
// audio files must be readable. All failures are reported together.
func Verify(fsys fs.FS) error {
	var errs []error
	for _, path := range Images {
		data, err := fs.ReadFile(fsys, path)
		if err == nil {
			_, _, err = image.Decode(bytes.NewReader(data))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("image %s: %w", path, err))
		}
	}

	audioPaths := slices.Concat(
		slices.Sorted(maps.Values(cfg.Sound.SFXPaths)),
		slices.Sorted(maps.Values(cfg.Sound.MusicPaths)),
	)
	for _, path := range append([]string{FontFile}, audioPaths...) {
		if _, err := fs.Stat(fsys, path); err != nil {
			errs = append(errs, fmt.Errorf("asset %s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}
