package systems

import (
	"fmt"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/timer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const titleRefreshMs = 1000

// NewUpdateWindowTitle returns a system that shows the measured frame rate
// in the window caption once a second.
func NewUpdateWindowTitle(clock timer.Clock) ecs.System {
	t := timer.New(clock, titleRefreshMs)
	return func(e *ecs.ECS) {
		if !t.Ready() {
			return
		}
		ebiten.SetWindowTitle(fmt.Sprintf("%s -- %.0f FPS", cfg.C.Title, ebiten.ActualFPS()))
	}
}
