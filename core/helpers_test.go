package core

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/gamemath"
	"github.com/automoto/tangent/shared/leveldata"
	"go.uber.org/zap"
)

const (
	cols = 40
	rows = 30

	// startX and restY place the player on the start tile of floorGrid.
	startX = 16.0
	restY  = 28*16 - 28.0
)

type grid [rows][cols]byte

func newGrid() *grid {
	var g grid
	for r := range g {
		for c := range g[r] {
			g[r][c] = '.'
		}
	}
	return &g
}

func (g *grid) set(col, row int, s byte) *grid {
	g[row][col] = s
	return g
}

func (g *grid) String() string {
	var b strings.Builder
	for r := range g {
		b.Write(g[r][:])
		b.WriteByte('\n')
	}
	return b.String()
}

// floorGrid is two solid rows at the bottom with the start on the left and
// an exit set into the floor on the right.
func floorGrid() *grid {
	g := newGrid()
	for c := 0; c < cols; c++ {
		g.set(c, 28, '#').set(c, 29, '#')
	}
	return g.set(1, 26, 'S').set(38, 28, 'E')
}

func parseGrid(t *testing.T, g *grid) *leveldata.TileMap {
	t.Helper()
	m, err := leveldata.Parse("test", []byte(g.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

// levelFS maps level numbers to grids.
func levelFS(levels map[int]*grid) fstest.MapFS {
	fsys := fstest.MapFS{}
	for n, g := range levels {
		fsys[fmt.Sprintf(cfg.Level.PathFormat, n)] = &fstest.MapFile{Data: []byte(g.String())}
	}
	return fsys
}

// fullSet returns every configured level built from the same grid.
func fullSet(g *grid) fstest.MapFS {
	levels := map[int]*grid{}
	for n := 1; n <= cfg.Level.Count; n++ {
		levels[n] = g
	}
	return levelFS(levels)
}

type fakeAudio struct {
	sounds  []cfg.SoundID
	music   []cfg.MusicID
	playing bool
}

func (a *fakeAudio) PlaySound(id cfg.SoundID) { a.sounds = append(a.sounds, id) }

func (a *fakeAudio) PlayMusic(id cfg.MusicID, loop bool) {
	a.music = append(a.music, id)
	a.playing = true
}

func (a *fakeAudio) MusicPlaying() bool { return a.playing }

// finish ends whatever music is playing.
func (a *fakeAudio) finish() { a.playing = false }

func (a *fakeAudio) lastMusic() cfg.MusicID {
	if len(a.music) == 0 {
		return cfg.MusicNone
	}
	return a.music[len(a.music)-1]
}

func (a *fakeAudio) lastSound() cfg.SoundID {
	if len(a.sounds) == 0 {
		return cfg.SoundNone
	}
	return a.sounds[len(a.sounds)-1]
}

func newTestSession(t *testing.T, levels fstest.MapFS, audio Audio, start int) *Session {
	t.Helper()
	s, err := NewSession(Options{Levels: levels, Audio: audio, Logger: zap.NewNop(), StartLevel: start})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// skipBanner advances time until the session is playing.
func skipBanner(t *testing.T, s *Session) {
	t.Helper()
	for range 100 {
		if s.State() == cfg.StatePlaying {
			return
		}
		if err := s.Update(50); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	t.Fatalf("state = %v, want playing", s.State())
}

// overlapsSolid reports whether r covers part of a solid tile's interior
// or leaves the map sideways.
func overlapsSolid(m *leveldata.TileMap, r gamemath.Rect) bool {
	const eps = 1e-4
	x0, y0 := r.X+eps, r.Y+eps
	x1, y1 := r.Right()-eps, r.Bottom()-eps
	if x0 < 0 || x1 > m.Width() {
		return true
	}
	c0, r0 := m.Cell(x0, y0)
	c1, r1 := m.Cell(x1, y1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if m.GetTile(col, row).Info().Solid {
				return true
			}
		}
	}
	return false
}
