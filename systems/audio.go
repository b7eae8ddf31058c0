package systems

import (
	"sync"

	"github.com/automoto/tangent/assets"
	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicID      cfg.MusicID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	missingAudio               = make(map[string]bool)
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, assetFS)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			reportMissingAudio(path, err)
		}
	}
}

// UpdateAudio plays the sound effects queued since the last frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
	audioData.MusicPlayer = globalMusicPlayer
	audioData.CurrentMusic = globalMusicID
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok || missingAudio[path] {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		reportMissingAudio(path, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic replaces the current track. A track that cannot be loaded
// leaves nothing playing.
func PlayMusic(id cfg.MusicID, loop bool) {
	initGlobalAudio()
	StopMusic()

	path, ok := cfg.Sound.MusicPaths[id]
	if !ok || missingAudio[path] {
		return
	}
	player, err := globalAudioLoader.LoadMusic(path, loop)
	if err != nil {
		reportMissingAudio(path, err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicID = id
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicID = cfg.MusicNone
	}
}

// MusicPlaying reports whether a track is still audible.
func MusicPlaying() bool {
	return globalMusicPlayer != nil && globalMusicPlayer.IsPlaying()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	if audioData.Context == nil {
		*audioData = components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		}
	}
	return audioData
}

func reportMissingAudio(path string, err error) {
	if missingAudio[path] {
		return
	}
	missingAudio[path] = true
	logger.Warn("audio unavailable, continuing silently", zap.String("path", path), zap.Error(err))
}

// SessionAudio routes simulation sound cues into the ECS audio queue and
// the global music player.
type SessionAudio struct {
	ECS *ecs.ECS
}

func (a SessionAudio) PlaySound(id cfg.SoundID) { PlaySFX(a.ECS, id) }

func (a SessionAudio) PlayMusic(id cfg.MusicID, loop bool) { PlayMusic(id, loop) }

func (a SessionAudio) MusicPlaying() bool { return MusicPlaying() }
