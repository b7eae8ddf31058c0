package core

import (
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/leveldata"
	"github.com/automoto/tangent/shared/timer"
	"github.com/solarlune/resolv"
	"go.uber.org/zap"
)

// ErrLevelOutOfRange is returned for a level number outside 1..Level.Count.
var ErrLevelOutOfRange = errors.New("level number out of range")

// Level is one loaded map with its coins and platforms sharing a collision
// space.
type Level struct {
	Number    int
	Map       *leveldata.TileMap
	Space     *resolv.Space
	Coins     *CoinCollector
	Platforms *MovingPlatformSystem
}

func newLevel(number int, m *leveldata.TileMap) *Level {
	ts := int(m.TileSize)
	space := resolv.NewSpace(int(m.Width()), int(m.Height()), ts, ts)

	coins := NewCoinCollector(m, space)
	for _, i := range m.Coins {
		coins.AddCoin(i)
	}
	return &Level{
		Number:    number,
		Map:       m,
		Space:     space,
		Coins:     coins,
		Platforms: NewMovingPlatformSystem(m, space),
	}
}

// LevelPath returns the level file base path for level n.
func LevelPath(n int) string {
	return fmt.Sprintf(cfg.Level.PathFormat, n)
}

// LevelDirector loads numbered levels, positions the player on them and
// drives the level title banner.
type LevelDirector struct {
	levels fs.FS
	logger *zap.Logger

	current *Level
	title   string
	banner  bool
	timer   *timer.Timer
}

// NewLevelDirector creates a director that reads level files from levels.
func NewLevelDirector(levels fs.FS, clock timer.Clock, logger *zap.Logger) *LevelDirector {
	return &LevelDirector{
		levels: levels,
		logger: logger,
		timer:  timer.New(clock, cfg.Level.BannerMs),
	}
}

// LoadLevel replaces the current level with level n and moves the player
// to its start. On failure the current level stays in place.
func (d *LevelDirector) LoadLevel(n int, p *Player) error {
	if n < 1 || n > cfg.Level.Count {
		return fmt.Errorf("%w: %d", ErrLevelOutOfRange, n)
	}

	m, err := leveldata.Open(d.levels, LevelPath(n))
	if err != nil {
		d.logger.Warn("level load failed", zap.Int("level", n), zap.Error(err))
		return err
	}

	d.current = newLevel(n, m)
	d.title = fmt.Sprintf(cfg.Level.TitleFormat, n)
	p.PlaceAt(m)
	d.StartBanner()

	d.logger.Info("level loaded",
		zap.Int("level", n),
		zap.String("path", m.Path),
		zap.Int("coins", len(m.Coins)),
		zap.Int("platforms", len(m.Platforms)),
	)
	return nil
}

// AdvanceLevel loads the next level, wrapping from the last back to the first.
func (d *LevelDirector) AdvanceLevel(p *Player) error {
	next := d.Number() + 1
	if next > cfg.Level.Count {
		next = 1
	}
	return d.LoadLevel(next, p)
}

// Respawn puts the player back on the start tile and resets every platform.
// Coins stay collected.
func (d *LevelDirector) Respawn(p *Player) {
	if d.current == nil {
		return
	}
	p.PlaceAt(d.current.Map)
	d.current.Platforms.Reset()
}

// Level returns the current level, or nil before the first load.
func (d *LevelDirector) Level() *Level { return d.current }

// Number returns the current level number, or 0 before the first load.
func (d *LevelDirector) Number() int {
	if d.current == nil {
		return 0
	}
	return d.current.Number
}

// StartBanner shows the level title from now.
func (d *LevelDirector) StartBanner() {
	d.banner = true
	d.timer.Reset()
}

// TickBanner hides the banner once it has been up for the configured time
// and reports whether it is still showing.
func (d *LevelDirector) TickBanner() bool {
	if d.banner && d.timer.Expired() {
		d.banner = false
	}
	return d.banner
}

// ShowBanner reports whether the level title is up.
func (d *LevelDirector) ShowBanner() bool { return d.banner }

// Title returns the banner text for the current level.
func (d *LevelDirector) Title() string { return d.title }

// BannerElapsed returns how long the banner has been showing in milliseconds.
func (d *LevelDirector) BannerElapsed() int64 { return d.timer.Elapsed() }
