package factory

import (
	"io/fs"

	"github.com/automoto/tangent/archetypes"
	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/core"
	"github.com/automoto/tangent/shared/timer"
	"github.com/automoto/tangent/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GameConfig describes the session a scene plays.
type GameConfig struct {
	Levels     fs.FS
	StartLevel int
	Clock      timer.Clock
	Logger     *zap.Logger
	Saved      *systems.SavedSettings
}

// CreateGame spawns the game entity and starts a session on it. Nothing is
// left in the world when the start level fails to load.
func CreateGame(e *ecs.ECS, conf GameConfig) (*donburi.Entry, error) {
	game := archetypes.Game.Spawn(e)

	session, err := core.NewSession(core.Options{
		Levels:     conf.Levels,
		Audio:      systems.SessionAudio{ECS: e},
		Logger:     conf.Logger,
		StartLevel: conf.StartLevel,
	})
	if err != nil {
		e.World.Remove(game.Entity())
		return nil, err
	}

	components.Session.SetValue(game, components.SessionData{
		Session: session,
		Clock:   conf.Clock,
		LastMs:  conf.Clock.Now(),
	})

	settings := components.Settings.Get(game)
	*settings = components.SettingsData{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		Debug:       cfg.Debug.ShowColliders,
	}
	systems.ApplySavedSettings(settings, conf.Saved)
	systems.GetOrCreateAudio(e)

	return game, nil
}

// CreateOverlay spawns the game over overlay entity.
func CreateOverlay(e *ecs.ECS, overlay components.OverlayData) *donburi.Entry {
	entry := archetypes.Overlay.Spawn(e)
	components.Overlay.SetValue(entry, overlay)
	return entry
}
