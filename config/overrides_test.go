package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	saved := currentOverrides()
	t.Cleanup(func() {
		screen := saved.Screen
		C = &screen
		Player = saved.Player
		Platform = saved.Platform
		Coins = saved.Coins
		Level = saved.Level
		Audio = saved.Audio
		Debug = saved.Debug
	})
}

func TestApplyYAMLKeepsUnsetFields(t *testing.T) {
	restoreGlobals(t)

	err := ApplyYAML([]byte("player:\n  maxLives: 9\ncoins:\n  score: 50\n"))
	if err != nil {
		t.Fatalf("ApplyYAML: %v", err)
	}
	if Player.MaxLives != 9 {
		t.Errorf("MaxLives = %d, want 9", Player.MaxLives)
	}
	if Coins.Score != 50 {
		t.Errorf("Coins.Score = %d, want 50", Coins.Score)
	}
	if Player.StartingLives != 2 {
		t.Errorf("StartingLives = %d, want default 2", Player.StartingLives)
	}
	if C.Width != 640 || C.TileSize != 16 {
		t.Errorf("screen = %dx%d tile %d, want defaults", C.Width, C.Height, C.TileSize)
	}
}

func TestApplyYAMLRejectsBadGeometry(t *testing.T) {
	restoreGlobals(t)

	tests := []struct {
		name string
		doc  string
	}{
		{"zero tile", "screen:\n  tileSize: 0\n"},
		{"uneven width", "screen:\n  width: 650\n"},
		{"no levels", "level:\n  count: 0\n"},
		{"lives above cap", "player:\n  startingLives: 7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyYAML([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if C.Width != 640 || C.TileSize != 16 || Level.Count != 9 || Player.StartingLives != 2 {
				t.Errorf("globals changed after rejected overrides")
			}
		})
	}
}

func TestLoadOverridesCustomPath(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("platform:\n  speed: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	used, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if used != path {
		t.Errorf("used = %q, want %q", used, path)
	}
	if Platform.Speed != 32 {
		t.Errorf("Platform.Speed = %v, want 32", Platform.Speed)
	}
}

func TestLoadOverridesMissingCustomPath(t *testing.T) {
	restoreGlobals(t)

	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}
