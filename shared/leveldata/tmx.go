package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/tangent/config"
	"github.com/lafriks/go-tiled"
)

// SymbolProperty is the tileset tile property holding the level symbol.
const SymbolProperty = "symbol"

// LoadTMX reads a level drawn in Tiled. Each tileset tile carries a "symbol"
// string property naming the level file symbol it stands for; empty cells
// and tiles without the property are empty. The first tile layer is used.
func LoadTMX(fsys fs.FS, tmxPath string) (*TileMap, error) {
	if _, err := fs.Stat(fsys, tmxPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: tmxPath, Err: ErrFileNotFound}
		}
		return nil, &LoadError{Path: tmxPath, Err: err}
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &LoadError{Path: tmxPath, Err: fmt.Errorf("load TMX: %w", err)}
	}

	cols, rows := config.C.Cols(), config.C.Rows()
	if levelMap.Width != cols || levelMap.Height != rows {
		return nil, &LoadError{
			Path: tmxPath,
			Err:  fmt.Errorf("%w: got %dx%d, want %dx%d", ErrBadDimensions, levelMap.Width, levelMap.Height, cols, rows),
		}
	}
	if len(levelMap.Layers) == 0 {
		return nil, &LoadError{Path: tmxPath, Err: fmt.Errorf("%w: no tile layer", ErrTruncatedFile)}
	}

	layer := levelMap.Layers[0]
	if len(layer.Tiles) < cols*rows {
		return nil, &LoadError{
			Path: tmxPath,
			Err:  fmt.Errorf("%w: got %d of %d tiles", ErrTruncatedFile, len(layer.Tiles), cols*rows),
		}
	}

	symbols := make([]byte, cols*rows)
	for i := range symbols {
		symbols[i] = kindTable[KindEmpty].Symbol
		tile := layer.Tiles[i]
		if tile == nil || tile.IsNil() || tile.Tileset == nil {
			continue
		}
		tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
		if err != nil {
			continue
		}
		if s := tilesetTile.Properties.GetString(SymbolProperty); s != "" {
			symbols[i] = s[0]
		}
	}
	return build(tmxPath, cols, rows, symbols)
}
