package core

import "github.com/automoto/tangent/config"

// Audio is the sound output the session drives. MusicPlaying is polled once
// per frame to sequence the death and game over cues.
type Audio interface {
	PlaySound(id config.SoundID)
	PlayMusic(id config.MusicID, loop bool)
	MusicPlaying() bool
}

// NopAudio discards all cues. Music never reports as playing.
type NopAudio struct{}

// PlaySound drops the cue.
func (NopAudio) PlaySound(config.SoundID) {}

// PlayMusic drops the cue.
func (NopAudio) PlayMusic(config.MusicID, bool) {}

// MusicPlaying always reports false.
func (NopAudio) MusicPlaying() bool { return false }
