package config

// JumpState is the vertical movement state of the player.
type JumpState int

const (
	// CanJump means grounded and eligible to start a jump.
	CanJump JumpState = iota
	// Jumping means ascending while the jump key is held.
	Jumping
	// Jumped means falling or descending.
	Jumped
)

func (s JumpState) String() string {
	switch s {
	case CanJump:
		return "can_jump"
	case Jumping:
		return "jumping"
	case Jumped:
		return "jumped"
	}
	return "unknown"
}

// SessionState is the top-level mode of a play session.
type SessionState int

const (
	// StateBanner shows the level title; gameplay is suspended.
	StateBanner SessionState = iota
	StatePlaying
	// StateDead waits for the death cue to finish.
	StateDead
	// StateGameOver is terminal until a restart key.
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateBanner:
		return "banner"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}
