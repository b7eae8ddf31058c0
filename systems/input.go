package systems

import (
	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings maps keyboard keys to actions. Keys missing from the map still
// produce events with ActionNone.
var KeyBindings = map[ebiten.Key]cfg.ActionID{
	ebiten.KeyArrowUp:    cfg.ActionUp,
	ebiten.KeyArrowDown:  cfg.ActionDown,
	ebiten.KeyArrowLeft:  cfg.ActionLeft,
	ebiten.KeyArrowRight: cfg.ActionRight,
	ebiten.KeyW:          cfg.ActionUp,
	ebiten.KeyS:          cfg.ActionDown,
	ebiten.KeyA:          cfg.ActionLeft,
	ebiten.KeyD:          cfg.ActionRight,
	ebiten.KeyZ:          cfg.ActionNextLevel,
	ebiten.KeyM:          cfg.ActionMute,
	ebiten.KeyF1:         cfg.ActionDebug,
}

// Reusable slice for key polling to avoid allocations
var keyBuf []ebiten.Key

// UpdateInput polls the keyboard, records held actions and queues this
// frame's key events. Releases are queued before presses so a direction
// change within one frame ends with the new key held.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Events = input.Events[:0]

	keyBuf = inpututil.AppendJustReleasedKeys(keyBuf[:0])
	for _, key := range keyBuf {
		input.Events = append(input.Events, core.KeyEvent{Action: KeyBindings[key], Down: false})
	}
	keyBuf = inpututil.AppendJustPressedKeys(keyBuf[:0])
	for _, key := range keyBuf {
		input.Events = append(input.Events, core.KeyEvent{Action: KeyBindings[key], Down: true})
	}

	for key, action := range KeyBindings {
		if ebiten.IsKeyPressed(key) {
			input.Current[action] = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
