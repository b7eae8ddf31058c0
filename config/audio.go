package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundJump
	SoundStomp
	SoundOneUp
)

func (s SoundID) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundJump:
		return "jump"
	case SoundStomp:
		return "stomp"
	case SoundOneUp:
		return "1up"
	}
	return "none"
}

// MusicID represents a music track. Only one track plays at a time.
type MusicID int

const (
	MusicNone MusicID = iota
	MusicBGM
	MusicDeath
	MusicGameOver
)

func (m MusicID) String() string {
	switch m {
	case MusicBGM:
		return "bgm"
	case MusicDeath:
		return "death"
	case MusicGameOver:
		return "game_over"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int     `yaml:"sampleRate"`
	DefaultMusicVol float64 `yaml:"musicVolume"`
	DefaultSFXVol   float64 `yaml:"sfxVolume"`
}

// SoundConfig maps sound and music IDs to asset paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	MusicPaths        map[MusicID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundCoin:  "audio/sfx-coin.wav",
			SoundJump:  "audio/sfx-jump.wav",
			SoundStomp: "audio/sfx-stomp.wav",
			SoundOneUp: "audio/sfx-1up.wav",
		},
		MusicPaths: map[MusicID]string{
			MusicBGM:      "audio/mus-bgm.ogg",
			MusicDeath:    "audio/mus-death.wav",
			MusicGameOver: "audio/mus-gameover.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundOneUp: 1.2,
		},
	}
}
