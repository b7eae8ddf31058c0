package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(path string) (decodedStream, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	sr := l.context.SampleRate()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sr, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sr, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	stream, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a streaming player for a music track. Looping tracks
// restart from the beginning forever; others stop at the end.
func (l *AudioLoader) LoadMusic(path string, loop bool) (*audio.Player, error) {
	stream, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	if loop {
		return l.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return l.context.NewPlayer(stream)
}
