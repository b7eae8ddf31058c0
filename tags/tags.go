package tags

import "github.com/yohamta/donburi"

var (
	Game    = donburi.NewTag().SetName("Game")
	Overlay = donburi.NewTag().SetName("Overlay")
)

// Resolv tags for the per-level collision space
const (
	ResolvPlayer   = "player"
	ResolvCoin     = "coin"
	ResolvPlatform = "platform"
)
