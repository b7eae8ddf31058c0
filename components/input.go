package components

import (
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/core"
	"github.com/yohamta/donburi"
)

// ActionState represents the state of an action for the current frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the key events produced this frame.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Events   []core.KeyEvent
}

var Input = donburi.NewComponentType[InputData]()
