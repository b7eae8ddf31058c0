package systems

import (
	"encoding/json"

	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logger.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		logger.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// ApplySavedSettings copies saved preferences into the settings component
// and the audio mixer.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved != nil {
		s.MusicVolume = saved.MusicVolume
		s.SFXVolume = saved.SFXVolume
		s.Muted = saved.Muted
	}
	applyVolumes(s)
}

func applyVolumes(s *components.SettingsData) {
	if s.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
		return
	}
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
}

// UpdateSettings toggles mute and the collider overlay.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		applyVolumes(settings)
		_ = SaveSettings(&SavedSettings{
			MusicVolume: settings.MusicVolume,
			SFXVolume:   settings.SFXVolume,
			Muted:       settings.Muted,
		})
		logger.Debug("mute toggled", zap.Bool("muted", settings.Muted))
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}
