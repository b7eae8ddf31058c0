package systems

import (
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSession feeds this frame's key events and the wall-clock time since
// the previous frame into the simulation.
func UpdateSession(e *ecs.ECS) {
	data := getSession(e)
	if data == nil {
		return
	}
	input := getOrCreateInput(e)

	now := data.Clock.Now()
	elapsed := now - data.LastMs
	data.LastMs = now

	if err := data.Session.Step(elapsed, input.Events...); err != nil {
		logger.Error("session step failed",
			zap.Int("level", data.Session.LevelNumber()),
			zap.Stringer("state", data.Session.State()),
			zap.Error(err),
		)
	}
}
