package components

import (
	"github.com/automoto/tangent/core"
	"github.com/automoto/tangent/shared/timer"
	"github.com/yohamta/donburi"
)

// SessionData wraps the simulation and the wall clock that paces it.
type SessionData struct {
	Session *core.Session
	Clock   timer.Clock
	LastMs  int64
}

var Session = donburi.NewComponentType[SessionData]()
