package core

import (
	"errors"
	"testing"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/timer"
	"go.uber.org/zap"
)

type respawnSnapshot struct {
	x, y, velX, velY float64
	facing           cfg.Direction
	jump             cfg.JumpState
	keys             [4]bool
	dead, onPlatform bool
	platforms        [][2]float64
	dirs             []cfg.Direction
}

func snapshot(p *Player, lvl *Level) respawnSnapshot {
	s := respawnSnapshot{
		x: p.X, y: p.Y, velX: p.VelX, velY: p.VelY,
		facing: p.Facing, jump: p.Jump, keys: p.Keys,
		dead: p.Dead, onPlatform: p.OnPlatform,
	}
	for _, pl := range lvl.Platforms.Platforms() {
		s.platforms = append(s.platforms, [2]float64{pl.Body.X, pl.Body.Y})
		s.dirs = append(s.dirs, pl.Dir)
	}
	return s
}

func (s respawnSnapshot) equal(o respawnSnapshot) bool {
	if s.x != o.x || s.y != o.y || s.velX != o.velX || s.velY != o.velY ||
		s.facing != o.facing || s.jump != o.jump || s.keys != o.keys ||
		s.dead != o.dead || s.onPlatform != o.onPlatform || len(s.platforms) != len(o.platforms) {
		return false
	}
	for i := range s.platforms {
		if s.platforms[i] != o.platforms[i] || s.dirs[i] != o.dirs[i] {
			return false
		}
	}
	return true
}

func TestRespawnIsIdempotent(t *testing.T) {
	clock := &timer.ManualClock{}
	d := NewLevelDirector(fullSet(floorGrid().set(10, 20, 'H').set(20, 20, 'V')), clock, zap.NewNop())
	p := NewPlayer(clock)
	if err := d.LoadLevel(1, p); err != nil {
		t.Fatal(err)
	}

	p.Press(cfg.ActionLeft)
	p.Press(cfg.ActionUp)
	for range 20 {
		d.Level().Platforms.UpdateAll(50, p)
		p.Update(50, d.Level().Map, d.Level().Platforms)
	}
	p.Dead = true

	d.Respawn(p)
	once := snapshot(p, d.Level())
	d.Respawn(p)
	twice := snapshot(p, d.Level())
	if !once.equal(twice) {
		t.Errorf("respawn not idempotent:\n%+v\n%+v", once, twice)
	}
	if once.x != startX || once.y != restY || once.dead || once.keys != [4]bool{} {
		t.Errorf("respawn state = %+v", once)
	}
	if once.facing != cfg.DirectionRight || once.jump != cfg.CanJump {
		t.Errorf("facing %v jump %v", once.facing, once.jump)
	}
}

func TestLoadLevelRange(t *testing.T) {
	clock := &timer.ManualClock{}
	d := NewLevelDirector(fullSet(floorGrid()), clock, zap.NewNop())
	p := NewPlayer(clock)
	for _, n := range []int{0, -1, cfg.Level.Count + 1} {
		if err := d.LoadLevel(n, p); !errors.Is(err, ErrLevelOutOfRange) {
			t.Errorf("LoadLevel(%d) = %v", n, err)
		}
	}
	if d.Level() != nil || d.Number() != 0 {
		t.Error("failed loads installed a level")
	}
}

func TestBannerTiming(t *testing.T) {
	clock := &timer.ManualClock{}
	d := NewLevelDirector(fullSet(floorGrid()), clock, zap.NewNop())
	if err := d.LoadLevel(3, NewPlayer(clock)); err != nil {
		t.Fatal(err)
	}
	if !d.ShowBanner() || d.Title() != "Level 3" {
		t.Fatalf("banner %v title %q", d.ShowBanner(), d.Title())
	}
	clock.Advance(cfg.Level.BannerMs - 1)
	if !d.TickBanner() {
		t.Error("banner hidden early")
	}
	clock.Advance(1)
	if d.TickBanner() {
		t.Error("banner still up after its time")
	}
}
