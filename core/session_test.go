package core

import (
	"errors"
	"testing"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/leveldata"
	"go.uber.org/zap"
)

func standOnExit(s *Session) {
	p := s.Player()
	p.X = 38*16 - 8
	p.Y = restY
}

func TestExitAdvancesAndWraps(t *testing.T) {
	s := newTestSession(t, fullSet(floorGrid()), nil, cfg.Level.Count)
	skipBanner(t, s)

	standOnExit(s)
	if err := s.Step(10, KeyEvent{Action: cfg.ActionDown, Down: true}); err != nil {
		t.Fatal(err)
	}
	if s.LevelNumber() != 1 {
		t.Fatalf("level = %d, want wrap to 1", s.LevelNumber())
	}
	if !s.ShowBanner() || s.BannerTitle() != "Level 1" {
		t.Errorf("banner %v %q", s.ShowBanner(), s.BannerTitle())
	}
	p := s.Player()
	if p.X != startX || p.Y != restY || p.Held(cfg.ActionDown) {
		t.Errorf("player not reset: (%v,%v) down=%v", p.X, p.Y, p.Held(cfg.ActionDown))
	}

	skipBanner(t, s)
	standOnExit(s)
	if err := s.Step(10, KeyEvent{Action: cfg.ActionDown, Down: true}); err != nil {
		t.Fatal(err)
	}
	if s.LevelNumber() != 2 {
		t.Errorf("level = %d, want 2", s.LevelNumber())
	}
}

func TestExitNeedsStandingStill(t *testing.T) {
	s := newTestSession(t, fullSet(floorGrid()), nil, 1)
	skipBanner(t, s)
	standOnExit(s)
	s.Player().VelX = 100
	if err := s.Step(10, KeyEvent{Action: cfg.ActionDown, Down: true}); err != nil {
		t.Fatal(err)
	}
	if s.LevelNumber() != 1 {
		t.Errorf("moving player left the level")
	}
}

func TestAdvanceFailureKeepsLevel(t *testing.T) {
	s := newTestSession(t, levelFS(map[int]*grid{1: floorGrid()}), nil, 1)
	skipBanner(t, s)

	err := s.HandleEvent(KeyEvent{Action: cfg.ActionNextLevel, Down: true})
	if !errors.Is(err, leveldata.ErrFileNotFound) {
		t.Fatalf("err = %v, want file not found", err)
	}
	if s.LevelNumber() != 1 || s.State() != cfg.StatePlaying {
		t.Errorf("level %d state %v", s.LevelNumber(), s.State())
	}

	standOnExit(s)
	err = s.Step(10, KeyEvent{Action: cfg.ActionDown, Down: true})
	if err == nil {
		t.Fatal("expected an error from the failed exit")
	}
	var le *leveldata.LoadError
	if !errors.As(err, &le) || le.Path != "levels/level2.tmx" && le.Path != "levels/level2" {
		t.Errorf("err = %v", err)
	}
	if s.LevelNumber() != 1 {
		t.Errorf("level = %d", s.LevelNumber())
	}
	if p := s.Player(); p.X != startX || p.Y != restY {
		t.Errorf("player at (%v,%v), want respawned at start", p.X, p.Y)
	}
}

func TestNewSessionFailsWithoutLevel(t *testing.T) {
	_, err := NewSession(Options{Levels: levelFS(nil), Logger: zap.NewNop()})
	if !errors.Is(err, leveldata.ErrFileNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestLevelSkipCanBeDisabled(t *testing.T) {
	saved := cfg.Debug.AllowLevelSkip
	cfg.Debug.AllowLevelSkip = false
	t.Cleanup(func() { cfg.Debug.AllowLevelSkip = saved })

	s := newTestSession(t, fullSet(floorGrid()), nil, 1)
	skipBanner(t, s)
	if err := s.HandleEvent(KeyEvent{Action: cfg.ActionNextLevel, Down: true}); err != nil {
		t.Fatal(err)
	}
	if s.LevelNumber() != 1 {
		t.Errorf("level = %d", s.LevelNumber())
	}
}

func TestInputIgnoredDuringBanner(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(t, fullSet(floorGrid()), audio, 1)
	if !s.ShowBanner() {
		t.Fatal("new session should start on the banner")
	}
	if err := s.HandleEvent(KeyEvent{Action: cfg.ActionUp, Down: true}); err != nil {
		t.Fatal(err)
	}
	p := s.Player()
	if p.Held(cfg.ActionUp) || p.Jump != cfg.CanJump {
		t.Errorf("press during banner applied: held=%v jump=%v", p.Held(cfg.ActionUp), p.Jump)
	}
	if len(audio.sounds) != 0 {
		t.Errorf("sounds = %v", audio.sounds)
	}
}

func TestJumpPlaysSound(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(t, fullSet(floorGrid()), audio, 1)
	skipBanner(t, s)
	if audio.lastMusic() != cfg.MusicBGM {
		t.Errorf("music = %v, want background loop", audio.lastMusic())
	}
	if err := s.HandleEvent(KeyEvent{Action: cfg.ActionUp, Down: true}); err != nil {
		t.Fatal(err)
	}
	if audio.lastSound() != cfg.SoundJump {
		t.Errorf("sound = %v", audio.lastSound())
	}
}

func TestUpdateClampsFrameDelta(t *testing.T) {
	s := newTestSession(t, fullSet(floorGrid()), nil, 1)
	if err := s.Update(10_000); err != nil {
		t.Fatal(err)
	}
	if !s.ShowBanner() {
		t.Error("a single long frame skipped the banner")
	}
	if got := s.BannerElapsed(); got != cfg.C.MaxFrameDelta {
		t.Errorf("banner elapsed = %d, want %d", got, cfg.C.MaxFrameDelta)
	}
}

func TestDeathRespawnsAfterCue(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(t, fullSet(floorGrid()), audio, 1)
	skipBanner(t, s)
	p := s.Player()

	p.Y = 500
	if err := s.Update(10); err != nil {
		t.Fatal(err)
	}
	if s.State() != cfg.StateDead || !p.Dead || audio.lastMusic() != cfg.MusicDeath {
		t.Fatalf("state %v dead %v music %v", s.State(), p.Dead, audio.lastMusic())
	}
	s.Update(10)
	if s.State() != cfg.StateDead {
		t.Fatal("left the death state while the cue was playing")
	}

	audio.finish()
	s.Update(10)
	if s.State() != cfg.StateBanner || p.Lives != cfg.Player.StartingLives-1 {
		t.Fatalf("state %v lives %d", s.State(), p.Lives)
	}
	if p.Dead || p.X != startX || p.Y != restY {
		t.Errorf("not respawned: dead=%v at (%v,%v)", p.Dead, p.X, p.Y)
	}
	s.Update(10)
	if audio.lastMusic() != cfg.MusicBGM {
		t.Errorf("music = %v, want background after respawn", audio.lastMusic())
	}
}

func TestGameOverFreezesUntilRestart(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(t, fullSet(floorGrid()), audio, 3)
	skipBanner(t, s)
	p := s.Player()
	p.Lives = 0
	p.Score = 300

	p.Y = 500
	s.Update(10)
	audio.finish()
	s.Update(10)
	if !s.GameOver() || p.Lives != -1 || audio.lastMusic() != cfg.MusicGameOver {
		t.Fatalf("game over %v lives %d music %v", s.GameOver(), p.Lives, audio.lastMusic())
	}

	x, y := p.X, p.Y
	for range 20 {
		if err := s.Step(10, KeyEvent{Action: cfg.ActionRight, Down: true}); err != nil {
			t.Fatal(err)
		}
	}
	if !s.GameOver() || p.X != x || p.Y != y {
		t.Fatalf("game over state moved: over=%v (%v,%v)", s.GameOver(), p.X, p.Y)
	}
	if s.RestartReady() {
		t.Error("restart offered while the cue plays")
	}

	audio.finish()
	if !s.RestartReady() {
		t.Fatal("restart not offered after the cue")
	}
	if err := s.HandleEvent(KeyEvent{Action: cfg.ActionNone, Down: true}); err != nil {
		t.Fatal(err)
	}
	np := s.Player()
	if s.State() != cfg.StateBanner || s.LevelNumber() != 1 {
		t.Errorf("state %v level %d after restart", s.State(), s.LevelNumber())
	}
	if np.Lives != cfg.Player.StartingLives || np.Score != 0 || np.Coins != 0 {
		t.Errorf("lives %d score %d coins %d after restart", np.Lives, np.Score, np.Coins)
	}
}
