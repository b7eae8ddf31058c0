// Package core is the platformer simulation: tile collision, player
// physics, coins, moving platforms and the level and life sequencing of a
// play session. It does no rendering and reads no devices; a frontend feeds
// it key events and elapsed time and draws from its views.
package core

import (
	"errors"
	"io/fs"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/timer"
	"go.uber.org/zap"
)

// KeyEvent is a key going down or up. Action is ActionNone for keys with no
// binding; those still count as "any key" on the game over screen.
type KeyEvent struct {
	Action cfg.ActionID
	Down   bool
}

// Options configures a new session.
type Options struct {
	// Levels holds the level files under the configured path format.
	Levels fs.FS
	// Audio receives sound cues. Nil means silent.
	Audio Audio
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// StartLevel defaults to 1.
	StartLevel int
}

// Session owns all simulation state for one game.
type Session struct {
	clock    *timer.ManualClock
	audio    Audio
	logger   *zap.Logger
	director *LevelDirector

	player *Player
	state  cfg.SessionState
	hud    HUD
}

// NewSession loads the start level and shows its banner.
func NewSession(opts Options) (*Session, error) {
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.StartLevel == 0 {
		opts.StartLevel = 1
	}

	clock := &timer.ManualClock{}
	s := &Session{
		clock:    clock,
		audio:    opts.Audio,
		logger:   opts.Logger,
		director: NewLevelDirector(opts.Levels, clock, opts.Logger),
	}
	if err := s.start(opts.StartLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// start begins a fresh game on level n with full lives and zero counters.
func (s *Session) start(level int) error {
	p := NewPlayer(s.clock)
	if err := s.director.LoadLevel(level, p); err != nil {
		return err
	}
	s.player = p
	s.state = cfg.StateBanner
	s.hud.Refresh(p)
	s.logger.Info("session started", zap.Int("level", level), zap.Int("lives", p.Lives))
	return nil
}

// HandleEvent applies one key event. Presses are ignored while dying or
// while the banner is up. On the game over screen any key press restarts
// once the game over cue has finished.
func (s *Session) HandleEvent(ev KeyEvent) error {
	if s.state == cfg.StateGameOver {
		if ev.Down && !s.audio.MusicPlaying() {
			return s.start(1)
		}
		return nil
	}
	if !ev.Down {
		s.player.Release(ev.Action)
		return nil
	}
	if s.state != cfg.StatePlaying {
		return nil
	}

	switch ev.Action {
	case cfg.ActionNextLevel:
		if !cfg.Debug.AllowLevelSkip {
			return nil
		}
		if err := s.director.AdvanceLevel(s.player); err != nil {
			return err
		}
		s.state = cfg.StateBanner
	default:
		if s.player.Press(ev.Action) {
			s.audio.PlaySound(cfg.SoundJump)
		}
	}
	return nil
}

// Update advances the session by elapsedMs, capped at the configured
// maximum frame delta.
func (s *Session) Update(elapsedMs int64) error {
	elapsedMs = min(max(elapsedMs, 0), cfg.C.MaxFrameDelta)
	s.clock.Advance(elapsedMs)

	if (s.state == cfg.StateBanner || s.state == cfg.StatePlaying) && !s.audio.MusicPlaying() {
		s.audio.PlayMusic(cfg.MusicBGM, true)
	}

	var err error
	switch s.state {
	case cfg.StateBanner:
		if !s.director.TickBanner() {
			s.state = cfg.StatePlaying
		}
	case cfg.StatePlaying:
		err = s.tick(elapsedMs)
	case cfg.StateDead:
		if !s.audio.MusicPlaying() {
			s.loseLife()
		}
	}
	s.hud.Refresh(s.player)
	return err
}

// Step applies events in order and then advances time.
func (s *Session) Step(elapsedMs int64, events ...KeyEvent) error {
	var errs []error
	for _, ev := range events {
		if err := s.HandleEvent(ev); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.Update(elapsedMs); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Session) tick(elapsedMs int64) error {
	lvl := s.director.Level()
	lvl.Platforms.UpdateAll(elapsedMs, s.player)

	if s.player.Update(elapsedMs, lvl.Map, lvl.Platforms) {
		if err := s.director.AdvanceLevel(s.player); err != nil {
			s.director.Respawn(s.player)
			return err
		}
		s.state = cfg.StateBanner
		return nil
	}

	if s.player.Y > lvl.Map.Height() {
		s.kill()
		return nil
	}

	for _, pickup := range lvl.Coins.CheckPickups(s.player.Rect()) {
		s.collect(pickup)
	}
	return nil
}

func (s *Session) collect(pickup Pickup) {
	p := s.player
	p.Coins++
	if p.Coins%cfg.Coins.PerLife != 0 {
		p.Score += cfg.Coins.Score
		s.audio.PlaySound(cfg.SoundCoin)
		return
	}
	if p.Lives < cfg.Player.MaxLives {
		p.Lives++
		s.audio.PlaySound(cfg.SoundOneUp)
		s.logger.Debug("extra life", zap.Int("lives", p.Lives), zap.Int("coin", pickup.Index))
		return
	}
	s.audio.PlaySound(cfg.SoundCoin)
}

func (s *Session) kill() {
	s.player.Dead = true
	s.state = cfg.StateDead
	s.audio.PlayMusic(cfg.MusicDeath, false)
	s.logger.Debug("player died", zap.Int("level", s.director.Number()), zap.Int("lives", s.player.Lives))
}

func (s *Session) loseLife() {
	s.player.Lives--
	if s.player.Lives >= 0 {
		s.director.Respawn(s.player)
		s.director.StartBanner()
		s.state = cfg.StateBanner
		return
	}
	s.player.Lives = -1
	s.state = cfg.StateGameOver
	s.audio.PlayMusic(cfg.MusicGameOver, false)
	s.logger.Info("game over", zap.Int("level", s.director.Number()), zap.Int("score", s.player.Score))
}

// Player returns the player. Callers must treat it as read-only.
func (s *Session) Player() *Player { return s.player }

// Level returns the current level.
func (s *Session) Level() *Level { return s.director.Level() }

// LevelNumber returns the 1-based number of the current level.
func (s *Session) LevelNumber() int { return s.director.Number() }

// State returns the session phase.
func (s *Session) State() cfg.SessionState { return s.state }

// ShowBanner reports whether the level title is up.
func (s *Session) ShowBanner() bool { return s.state == cfg.StateBanner }

// BannerTitle returns the title shown on the level banner.
func (s *Session) BannerTitle() string { return s.director.Title() }

// BannerElapsed returns how long the current banner has been showing.
func (s *Session) BannerElapsed() int64 { return s.director.BannerElapsed() }

// GameOver reports whether the player has run out of lives.
func (s *Session) GameOver() bool { return s.state == cfg.StateGameOver }

// RestartReady reports whether a key press would restart the game.
func (s *Session) RestartReady() bool {
	return s.state == cfg.StateGameOver && !s.audio.MusicPlaying()
}

// HUD returns the cached status strings.
func (s *Session) HUD() *HUD { return &s.hud }
