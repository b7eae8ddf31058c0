package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/tangent/config"
)

// Load reads a plain text level from fsys. Whitespace is ignored and every
// other byte fills one tile in row-major order until the grid is full.
// It takes an fs.FS so callers can pass embed.FS, os.DirFS or fstest.MapFS.
func Load(fsys fs.FS, path string) (*TileMap, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Open loads base as a text level, falling back to base+".tmx".
func Open(fsys fs.FS, base string) (*TileMap, error) {
	m, err := Load(fsys, base)
	if err == nil || !errors.Is(err, ErrFileNotFound) {
		return m, err
	}
	m, tmxErr := LoadTMX(fsys, base+".tmx")
	if tmxErr != nil && errors.Is(tmxErr, ErrFileNotFound) {
		return nil, err
	}
	return m, tmxErr
}

// Parse builds a TileMap from level file contents using the configured grid.
func Parse(path string, data []byte) (*TileMap, error) {
	cols, rows := config.C.Cols(), config.C.Rows()
	total := cols * rows

	symbols := make([]byte, 0, total)
	for _, b := range data {
		if len(symbols) == total {
			break
		}
		if isSpace(b) {
			continue
		}
		symbols = append(symbols, b)
	}
	if len(symbols) < total {
		return nil, &LoadError{
			Path: path,
			Err:  fmt.Errorf("%w: got %d of %d tiles", ErrTruncatedFile, len(symbols), total),
		}
	}
	return build(path, cols, rows, symbols)
}

func build(path string, cols, rows int, symbols []byte) (*TileMap, error) {
	m := &TileMap{
		Path:     path,
		Cols:     cols,
		Rows:     rows,
		TileSize: float64(config.C.TileSize),
		Start:    -1,
		symbols:  symbols,
		kinds:    make([]Kind, len(symbols)),
	}

	starts := 0
	for i, s := range symbols {
		k := KindOf(s)
		m.kinds[i] = k
		switch k {
		case KindStart:
			starts++
			m.Start = i
		case KindExit:
			m.Exits = append(m.Exits, i)
		case KindCoin:
			m.Coins = append(m.Coins, i)
		case KindPlatformH:
			m.Platforms = append(m.Platforms, PlatformOrigin{Index: i, Axis: AxisHorizontal})
		case KindPlatformV:
			m.Platforms = append(m.Platforms, PlatformOrigin{Index: i, Axis: AxisVertical})
		}
	}

	switch {
	case starts == 0:
		return nil, &LoadError{Path: path, Err: ErrMissingStart}
	case starts > 1:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)}
	}
	if len(m.Exits) == 0 {
		return nil, &LoadError{Path: path, Err: ErrMissingExit}
	}
	return m, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
