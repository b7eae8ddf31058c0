package systems

import (
	"fmt"

	"github.com/automoto/tangent/components"
	"github.com/automoto/tangent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// RestartPrompt appears once the game over cue has finished.
const RestartPrompt = "Press ANY key to continue"

func getOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := tags.Overlay.First(e.World)
	if !ok {
		return nil
	}
	return components.Overlay.Get(entry)
}

// UpdateGameOver keeps the game over labels in step with the session and
// lets the overlay process its frame.
func UpdateGameOver(e *ecs.ECS) {
	data := getSession(e)
	overlay := getOverlay(e)
	if data == nil || overlay == nil || !data.Session.GameOver() {
		return
	}

	overlay.Score.Label = fmt.Sprintf("Score: %d", data.Session.Player().Score)
	if data.Session.RestartReady() {
		overlay.Prompt.Label = RestartPrompt
	} else {
		overlay.Prompt.Label = ""
	}
	overlay.UI.Update()
}

// DrawGameOver renders the overlay while the game is over.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	data := getSession(e)
	overlay := getOverlay(e)
	if data == nil || overlay == nil || !data.Session.GameOver() {
		return
	}
	overlay.UI.Draw(screen)
}
