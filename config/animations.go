package config

import "image"

// AnimationID names a pose in the player sprite sheet.
type AnimationID int

const (
	AnimIdleLeft AnimationID = iota
	AnimIdleRight
	AnimMoveLeft
	AnimMoveRight
	AnimJumpLeft
	AnimJumpRight
	AnimDuckLeft
	AnimDuckRight
	AnimTurnLeft
	AnimTurnRight
)

func (a AnimationID) String() string {
	switch a {
	case AnimIdleLeft:
		return "idle_left"
	case AnimIdleRight:
		return "idle_right"
	case AnimMoveLeft:
		return "move_left"
	case AnimMoveRight:
		return "move_right"
	case AnimJumpLeft:
		return "jump_left"
	case AnimJumpRight:
		return "jump_right"
	case AnimDuckLeft:
		return "duck_left"
	case AnimDuckRight:
		return "duck_right"
	case AnimTurnLeft:
		return "turn_left"
	case AnimTurnRight:
		return "turn_right"
	}
	return "unknown"
}

// AnimationDef locates a pose in the sheet. Animated poses step
// FrameStride pixels to the right per frame.
type AnimationDef struct {
	X, Y        int
	FrameStride int
}

// PlayerAnimations maps each pose to its cell in the 16x28 player sheet.
// Turning poses sit on the opposite row: the sprite faces the
// new direction while sliding the old way.
var PlayerAnimations = map[AnimationID]AnimationDef{
	AnimIdleLeft:  {X: 0, Y: 28},
	AnimIdleRight: {X: 0, Y: 0},
	AnimMoveLeft:  {X: 0, Y: 28, FrameStride: 16},
	AnimMoveRight: {X: 0, Y: 0, FrameStride: 16},
	AnimJumpLeft:  {X: 80, Y: 28},
	AnimJumpRight: {X: 80, Y: 0},
	AnimDuckLeft:  {X: 96, Y: 28},
	AnimDuckRight: {X: 96, Y: 0},
	AnimTurnLeft:  {X: 112, Y: 0},
	AnimTurnRight: {X: 112, Y: 28},
}

// AnimationRect returns the source rectangle for a pose and frame.
func AnimationRect(id AnimationID, frame int) image.Rectangle {
	def := PlayerAnimations[id]
	w, h := int(Player.Width), int(Player.Height)
	x := def.X + def.FrameStride*frame
	return image.Rect(x, def.Y, x+w, def.Y+h)
}

// TileCell is a 16x16 cell in the tileset image, addressed by column and row.
type TileCell struct {
	Col, Row int
}

// Rect returns the pixel rectangle of the cell.
func (c TileCell) Rect() image.Rectangle {
	ts := C.TileSize
	return image.Rect(c.Col*ts, c.Row*ts, (c.Col+1)*ts, (c.Row+1)*ts)
}

// Sprite cells for entities drawn from the tileset.
var (
	CoinCell     = TileCell{Col: 7, Row: 1}
	PlatformCell = TileCell{Col: 5, Row: 9}
)
