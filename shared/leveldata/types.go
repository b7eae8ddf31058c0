// Package leveldata parses level grids and answers tile queries by world
// coordinate. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/gamemath"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrTruncatedFile  = errors.New("unexpected end of file")
	ErrMissingStart   = errors.New("missing starting position")
	ErrDuplicateStart = errors.New("more than one starting position")
	ErrMissingExit    = errors.New("missing end position")
	ErrBadDimensions  = errors.New("map dimensions do not match the screen grid")
)

// LoadError reports which level failed to load. Use errors.Is against the
// Err* sentinels to find the reason.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load level %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Kind is the closed set of tile kinds a level can contain.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindStart
	KindExit
	KindWall
	KindSlopeLeft
	KindSlopeRight
	KindLedge
	KindPlatformLeftCap
	KindPlatformRightCap
	KindSpike
	KindHazardLeft
	KindHazardRight
	KindCoin
	KindPlatformH
	KindPlatformV
	KindReverse
	kindCount
)

// Trigger is a non-collision behavior attached to a tile kind.
type Trigger uint8

const (
	TriggerNone Trigger = iota
	TriggerExit
	TriggerReverse
)

// KindInfo describes how a tile kind collides, triggers and draws.
type KindInfo struct {
	Name    string
	Symbol  byte
	Solid   bool
	Trigger Trigger
	Sprite  config.TileCell
	Drawn   bool
}

var kindTable = [kindCount]KindInfo{
	KindEmpty:            {Name: "empty", Symbol: '.'},
	KindStart:            {Name: "start", Symbol: 'S'},
	KindExit:             {Name: "exit", Symbol: 'E', Solid: true, Trigger: TriggerExit, Sprite: config.TileCell{Col: 6, Row: 6}, Drawn: true},
	KindWall:             {Name: "wall", Symbol: '#', Solid: true, Sprite: config.TileCell{Col: 8, Row: 0}, Drawn: true},
	KindSlopeLeft:        {Name: "slope_left", Symbol: '/', Solid: true, Sprite: config.TileCell{Col: 8, Row: 9}, Drawn: true},
	KindSlopeRight:       {Name: "slope_right", Symbol: '\\', Solid: true, Sprite: config.TileCell{Col: 9, Row: 10}, Drawn: true},
	KindLedge:            {Name: "ledge", Symbol: '-', Solid: true, Sprite: config.TileCell{Col: 3, Row: 9}, Drawn: true},
	KindPlatformLeftCap:  {Name: "platform_left_cap", Symbol: '[', Solid: true, Sprite: config.TileCell{Col: 3, Row: 10}, Drawn: true},
	KindPlatformRightCap: {Name: "platform_right_cap", Symbol: ']', Solid: true, Sprite: config.TileCell{Col: 4, Row: 10}, Drawn: true},
	KindSpike:            {Name: "spike", Symbol: 'X', Solid: true, Sprite: config.TileCell{Col: 6, Row: 9}, Drawn: true},
	KindHazardLeft:       {Name: "hazard_left", Symbol: '<', Solid: true, Sprite: config.TileCell{Col: 2, Row: 11}, Drawn: true},
	KindHazardRight:      {Name: "hazard_right", Symbol: '>', Solid: true, Sprite: config.TileCell{Col: 4, Row: 11}, Drawn: true},
	KindCoin:             {Name: "coin", Symbol: 'C'},
	KindPlatformH:        {Name: "platform_h", Symbol: 'H'},
	KindPlatformV:        {Name: "platform_v", Symbol: 'V'},
	KindReverse:          {Name: "reverse", Symbol: 'd', Trigger: TriggerReverse},
}

// symbolKinds maps every byte to a kind; unknown symbols are empty.
var symbolKinds [256]Kind

func init() {
	for k := Kind(1); k < kindCount; k++ {
		symbolKinds[kindTable[k].Symbol] = k
	}
}

// KindOf returns the tile kind for a level file symbol.
func KindOf(symbol byte) Kind {
	return symbolKinds[symbol]
}

// Info returns the table entry for k.
func (k Kind) Info() KindInfo {
	if k >= kindCount {
		return kindTable[KindEmpty]
	}
	return kindTable[k]
}

func (k Kind) String() string { return k.Info().Name }

// Axis is the travel axis of a moving platform.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// PlatformOrigin is where a moving platform spawns.
type PlatformOrigin struct {
	Index int
	Axis  Axis
}

// TileMap is an immutable grid of tiles loaded from one level file.
type TileMap struct {
	Path     string
	Cols     int
	Rows     int
	TileSize float64

	// Start is the tile index of the first S symbol.
	Start int
	// Exits lists every E tile index in row-major order.
	Exits []int
	// Coins lists coin spawn indices in row-major order.
	Coins []int
	// Platforms lists moving platform spawns in row-major order.
	Platforms []PlatformOrigin

	symbols []byte
	kinds   []Kind
}

// Width is the map width in pixels.
func (m *TileMap) Width() float64 { return float64(m.Cols) * m.TileSize }

// Height is the map height in pixels.
func (m *TileMap) Height() float64 { return float64(m.Rows) * m.TileSize }

// InBounds reports whether (col, row) is inside the grid.
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// GetTile returns the kind at (col, row). Cells outside the grid are empty.
func (m *TileMap) GetTile(col, row int) Kind {
	if !m.InBounds(col, row) {
		return KindEmpty
	}
	return m.kinds[row*m.Cols+col]
}

// Symbol returns the raw level file symbol at (col, row), or 0 outside the grid.
func (m *TileMap) Symbol(col, row int) byte {
	if !m.InBounds(col, row) {
		return 0
	}
	return m.symbols[row*m.Cols+col]
}

// Cell converts a world point to grid coordinates.
func (m *TileMap) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / m.TileSize)), int(math.Floor(y / m.TileSize))
}

// KindAt returns the kind under a world point.
func (m *TileMap) KindAt(x, y float64) Kind {
	col, row := m.Cell(x, y)
	return m.GetTile(col, row)
}

// IsSolid reports whether the world point blocks movement. Points left or
// right of the grid are solid so the screen edges act as walls; points above
// or below are open.
func (m *TileMap) IsSolid(x, y float64) bool {
	if x < 0 || x >= m.Width() {
		return true
	}
	return m.KindAt(x, y).Info().Solid
}

// IsExit reports whether the world point is on an exit tile.
func (m *TileMap) IsExit(x, y float64) bool {
	return m.KindAt(x, y).Info().Trigger == TriggerExit
}

// IsReverse reports whether the world point is on a platform reversal tile.
func (m *TileMap) IsReverse(x, y float64) bool {
	return m.KindAt(x, y).Info().Trigger == TriggerReverse
}

// IndexPos returns the top-left world position of tile index i.
func (m *TileMap) IndexPos(i int) (float64, float64) {
	return float64(i%m.Cols) * m.TileSize, float64(i/m.Cols) * m.TileSize
}

// TileRect returns the world rectangle of tile index i.
func (m *TileMap) TileRect(i int) gamemath.Rect {
	x, y := m.IndexPos(i)
	return gamemath.NewRect(x, y, m.TileSize, m.TileSize)
}

// All yields every tile index with its kind in row-major order.
func (m *TileMap) All() iter.Seq2[int, Kind] {
	return func(yield func(int, Kind) bool) {
		for i, k := range m.kinds {
			if !yield(i, k) {
				return
			}
		}
	}
}
