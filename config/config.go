package config

import "image/color"

// Default is the only render layer the game uses.
const Default = 0

// Config holds screen and grid geometry.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TileSize int    `yaml:"tileSize"`
	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	Title    string `yaml:"title"`

	// MaxFrameDelta bounds a single simulation step in milliseconds.
	MaxFrameDelta int64 `yaml:"maxFrameDelta"`
}

// Cols is the level grid width in tiles.
func (c *Config) Cols() int { return c.Width / c.TileSize }

// Rows is the level grid height in tiles.
func (c *Config) Rows() int { return c.Height / c.TileSize }

// PlayerConfig contains all player-related configuration values.
// Speeds are pixels per second, accelerations pixels per second squared.
type PlayerConfig struct {
	// Movement
	MoveAccel    float64 `yaml:"moveAccel"`
	MaxMoveSpeed float64 `yaml:"maxMoveSpeed"`
	JumpAccel    float64 `yaml:"jumpAccel"`
	MaxJumpSpeed float64 `yaml:"maxJumpSpeed"`
	Gravity      float64 `yaml:"gravity"`

	// Lives
	StartingLives int `yaml:"startingLives"`
	MaxLives      int `yaml:"maxLives"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Animation
	WalkFrameMs int64 `yaml:"walkFrameMs"`
	WalkFrames  int   `yaml:"walkFrames"`
}

// PlatformConfig contains moving platform values.
type PlatformConfig struct {
	Speed float64 `yaml:"speed"` // pixels per second
	Size  float64 `yaml:"size"`
}

// CoinConfig contains coin pickup values.
type CoinConfig struct {
	PerLife int `yaml:"perLife"`
	Score   int `yaml:"score"`
}

// LevelConfig describes how numbered level files are found.
type LevelConfig struct {
	Count        int    `yaml:"count"`
	PathFormat   string `yaml:"pathFormat"`
	TitleFormat  string `yaml:"titleFormat"`
	BannerMs     int64  `yaml:"bannerMs"`
	BannerFadeMs int64  `yaml:"bannerFadeMs"`
}

// UIConfig contains HUD layout and colors.
type UIConfig struct {
	HUDMargin     float64
	HUDLineHeight float64
	HUDRightInset float64
	LivesIconGap  float64
	TextColor     color.RGBA
	BannerColor   color.RGBA
	OverlayColor  color.RGBA
}

// DebugConfig contains developer switches.
type DebugConfig struct {
	AllowLevelSkip bool `yaml:"allowLevelSkip"`
	ShowColliders  bool `yaml:"showColliders"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Platform PlatformConfig
var Coins CoinConfig
var Level LevelConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction is a platform travel direction or a facing.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Opposite returns the reverse direction on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

// Horizontal reports whether d is left or right.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Delta returns the unit step for d in screen coordinates.
func (d Direction) Delta() (float64, float64) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

func init() {
	C = &Config{
		Width:         640,
		Height:        480,
		TileSize:      16,
		Scale:         1,
		TPS:           60,
		Title:         "Tangent",
		MaxFrameDelta: 50,
	}

	// Player Config
	// The per-second values equal 32/64/64 px per frame at 60 TPS.
	Player = PlayerConfig{
		MoveAccel:    1920,
		MaxMoveSpeed: 386,
		JumpAccel:    3840,
		MaxJumpSpeed: 640,
		Gravity:      3840,

		StartingLives: 2,
		MaxLives:      5,

		Width:  16,
		Height: 28,

		WalkFrameMs: 80,
		WalkFrames:  5,
	}

	Platform = PlatformConfig{
		Speed: 64,
		Size:  16,
	}

	Coins = CoinConfig{
		PerLife: 25,
		Score:   100,
	}

	Level = LevelConfig{
		Count:        9,
		PathFormat:   "levels/level%d",
		TitleFormat:  "Level %d",
		BannerMs:     1000,
		BannerFadeMs: 250,
	}

	UI = UIConfig{
		HUDMargin:     5,
		HUDLineHeight: 10,
		HUDRightInset: 95,
		LivesIconGap:  2,
		TextColor:     White,
		BannerColor:   White,
		OverlayColor:  Black,
	}

	Debug = DebugConfig{
		AllowLevelSkip: true,
	}
}
