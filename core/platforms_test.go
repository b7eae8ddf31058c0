package core

import (
	"math"
	"testing"

	cfg "github.com/automoto/tangent/config"
)

func TestHorizontalPlatformReverses(t *testing.T) {
	g := floorGrid().set(10, 20, 'H').set(13, 20, '#').set(5, 20, 'd')
	p, lvl := newTestPlayer(t, g)
	pl := lvl.Platforms.Platforms()[0]

	reversals := 0
	dir := pl.Dir
	for i := range 200 {
		lvl.Platforms.UpdateAll(50, p)
		r := pl.Rect()
		if r.Right() > 13*16 {
			t.Fatalf("tick %d: platform at %v entered the wall", i, r.X)
		}
		if r.X < 6*16 {
			t.Fatalf("tick %d: platform at %v passed the reversal tile", i, r.X)
		}
		if pl.Dir != dir {
			reversals++
			dir = pl.Dir
		}
	}
	if reversals < 4 {
		t.Errorf("reversals = %d, want the platform to patrol", reversals)
	}
}

func TestVerticalPlatformReverses(t *testing.T) {
	g := floorGrid().set(20, 20, 'V').set(20, 15, '#')
	p, lvl := newTestPlayer(t, g)
	pl := lvl.Platforms.Platforms()[0]
	if pl.Dir != cfg.DirectionUp {
		t.Fatalf("dir = %v, want up", pl.Dir)
	}

	sawDown := false
	for i := range 200 {
		lvl.Platforms.UpdateAll(50, p)
		if pl.Body.Y < 16*16 || pl.Body.Y > 27*16 {
			t.Fatalf("tick %d: platform y = %v out of its lane", i, pl.Body.Y)
		}
		if pl.Dir == cfg.DirectionDown {
			sawDown = true
		}
	}
	if !sawDown {
		t.Error("platform never turned at the ceiling")
	}
}

func TestPlatformCarriesPlayerSideways(t *testing.T) {
	p, lvl := newTestPlayer(t, floorGrid().set(10, 20, 'H'))
	pl := lvl.Platforms.Platforms()[0]
	p.X, p.Y = 160, 20*16-cfg.Player.Height

	for i := range 10 {
		if !lvl.Platforms.UpdateAll(50, p) {
			t.Fatalf("tick %d: player not carried", i)
		}
		if math.Abs(p.X-pl.Body.X) > 1e-9 {
			t.Fatalf("tick %d: player x %v, platform x %v", i, p.X, pl.Body.X)
		}
		if p.Y != pl.Body.Y-cfg.Player.Height {
			t.Fatalf("tick %d: player y %v not on platform top %v", i, p.Y, pl.Body.Y)
		}
	}
	if !p.OnPlatform || p.Jump != cfg.CanJump {
		t.Errorf("onPlatform = %v jump = %v", p.OnPlatform, p.Jump)
	}
}

func TestPlatformLiftsPlayer(t *testing.T) {
	p, lvl := newTestPlayer(t, floorGrid().set(20, 20, 'V'))
	pl := lvl.Platforms.Platforms()[0]
	p.X, p.Y = 320, 20*16-cfg.Player.Height

	for i := range 10 {
		lvl.Platforms.UpdateAll(50, p)
		if p.Y != pl.Body.Y-cfg.Player.Height {
			t.Fatalf("tick %d: player y %v, platform y %v", i, p.Y, pl.Body.Y)
		}
	}
	if p.Y >= 20*16-cfg.Player.Height {
		t.Errorf("player did not rise: y = %v", p.Y)
	}
}

func TestLiftStopsUnderRiderAtCeiling(t *testing.T) {
	p, lvl := newTestPlayer(t, floorGrid().set(20, 20, 'V').set(20, 16, '#'))
	pl := lvl.Platforms.Platforms()[0]
	p.X, p.Y = 320, 20*16-cfg.Player.Height
	p.OnPlatform = true

	turned := false
	for i := range 20 {
		if !lvl.Platforms.UpdateAll(50, p) {
			t.Fatalf("tick %d: rider dropped at platform y %v", i, pl.Body.Y)
		}
		if overlapsSolid(lvl.Map, p.Rect()) {
			t.Fatalf("tick %d: rider pushed into the ceiling at y %v", i, p.Y)
		}
		if p.Y != pl.Body.Y-cfg.Player.Height {
			t.Fatalf("tick %d: player y %v, platform y %v", i, p.Y, pl.Body.Y)
		}
		if pl.Dir == cfg.DirectionDown {
			turned = true
		}
	}
	if !turned {
		t.Error("platform never turned under the rider")
	}
}

func TestRidingLiftUnderCeilingThroughSession(t *testing.T) {
	g := floorGrid().set(20, 20, 'V').set(20, 16, '#').set(21, 16, '#')
	s := newTestSession(t, fullSet(g), nil, 1)
	skipBanner(t, s)
	p := s.Player()
	pl := s.Level().Platforms.Platforms()[0]
	p.X, p.Y = pl.Body.X, pl.Body.Y-cfg.Player.Height
	p.Jump = cfg.Jumped

	for i := range 150 {
		if err := s.Update(20); err != nil {
			t.Fatal(err)
		}
		if overlapsSolid(s.Level().Map, p.Rect()) {
			t.Fatalf("tick %d: player inside the ceiling at y %v", i, p.Y)
		}
		if p.Y != pl.Body.Y-cfg.Player.Height {
			t.Fatalf("tick %d: player fell off, y = %v platform y = %v", i, p.Y, pl.Body.Y)
		}
	}
}

func TestJumpingPlayerIsNotCarried(t *testing.T) {
	p, lvl := newTestPlayer(t, floorGrid().set(10, 20, 'H'))
	p.X, p.Y = 160, 20*16-cfg.Player.Height
	p.OnPlatform = true
	p.Jump = cfg.Jumping

	if lvl.Platforms.UpdateAll(50, p) {
		t.Error("carried a jumping player")
	}
	if p.OnPlatform {
		t.Error("player still marked on platform")
	}
}

func TestRidingPlatformThroughSession(t *testing.T) {
	g := floorGrid().set(10, 20, 'H').set(14, 20, 'd').set(6, 20, 'd')
	s := newTestSession(t, fullSet(g), nil, 1)
	skipBanner(t, s)
	p := s.Player()
	pl := s.Level().Platforms.Platforms()[0]
	p.X, p.Y = pl.Body.X, pl.Body.Y-cfg.Player.Height
	p.Jump = cfg.Jumped

	for i := range 100 {
		if err := s.Update(20); err != nil {
			t.Fatal(err)
		}
		if p.Y != pl.Body.Y-cfg.Player.Height {
			t.Fatalf("tick %d: player fell off, y = %v platform y = %v", i, p.Y, pl.Body.Y)
		}
	}
}

func TestPlatformResetRestoresOrigin(t *testing.T) {
	p, lvl := newTestPlayer(t, floorGrid().set(10, 20, 'H').set(20, 20, 'V'))
	for range 30 {
		lvl.Platforms.UpdateAll(50, p)
	}
	lvl.Platforms.Reset()

	h, v := lvl.Platforms.Platforms()[0], lvl.Platforms.Platforms()[1]
	if h.Body.X != 160 || h.Body.Y != 320 || h.Dir != cfg.DirectionRight {
		t.Errorf("horizontal platform = (%v,%v) %v", h.Body.X, h.Body.Y, h.Dir)
	}
	if v.Body.X != 320 || v.Body.Y != 320 || v.Dir != cfg.DirectionUp {
		t.Errorf("vertical platform = (%v,%v) %v", v.Body.X, v.Body.Y, v.Dir)
	}

	n := 0
	for range lvl.Platforms.Positions() {
		n++
	}
	if n != 2 {
		t.Errorf("Positions yielded %d platforms", n)
	}
}
