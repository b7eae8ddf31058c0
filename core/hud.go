package core

import "fmt"

// HUD caches the formatted status strings. They are rebuilt only when a
// counter they show changes; Generation increments on every rebuild so a
// renderer can cache whatever it derives from them.
type HUD struct {
	LivesLabel string
	Score      string
	Coins      string
	Lives      int
	Generation uint64

	score, coins int
	valid        bool
}

// Refresh updates the cached strings from the player's counters. It
// reports whether anything was rebuilt.
func (h *HUD) Refresh(p *Player) bool {
	changed := false
	if !h.valid {
		h.LivesLabel = "Lives:"
	}
	if !h.valid || p.Score != h.score {
		h.score = p.Score
		h.Score = fmt.Sprintf("Score: %d", p.Score)
		changed = true
	}
	if !h.valid || p.Coins != h.coins {
		h.coins = p.Coins
		h.Coins = fmt.Sprintf("Coins: %d", p.Coins)
		changed = true
	}
	if !h.valid || p.Lives != h.Lives {
		h.Lives = p.Lives
		changed = true
	}
	h.valid = true
	if changed {
		h.Generation++
	}
	return changed
}

// LivesIcons is the number of life icons to draw: the current life plus
// every spare one.
func (h *HUD) LivesIcons() int {
	return max(h.Lives+1, 0)
}
