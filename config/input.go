package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionNextLevel
	ActionMute
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionNextLevel:
		return "next_level"
	case ActionMute:
		return "mute"
	case ActionDebug:
		return "debug"
	}
	return "none"
}

// KeySlot maps a direction action onto one of the four held-key slots.
func (a ActionID) KeySlot() (int, bool) {
	switch a {
	case ActionUp:
		return 0, true
	case ActionDown:
		return 1, true
	case ActionLeft:
		return 2, true
	case ActionRight:
		return 3, true
	}
	return 0, false
}
