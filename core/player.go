package core

import (
	"math"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/gamemath"
	"github.com/automoto/tangent/shared/leveldata"
	"github.com/automoto/tangent/shared/timer"
)

// skin keeps edge probes inside the body so a box resting flush against a
// tile does not register as overlapping it.
const skin = 1e-6

// Key slots in Player.Keys.
const (
	keyUp = iota
	keyDown
	keyLeft
	keyRight
)

// Player is the controllable character: body, velocity, jump state, held
// keys and the counters shown on the HUD.
type Player struct {
	X, Y       float64
	VelX, VelY float64 // pixels per second

	Facing cfg.Direction
	Jump   cfg.JumpState
	Keys   [4]bool

	Lives int
	Score int
	Coins int

	Dead       bool
	OnPlatform bool

	Anim  cfg.AnimationID
	Frame int

	frameTimer *timer.Timer
}

// NewPlayer returns a player with starting lives. Call PlaceAt before the
// first update.
func NewPlayer(clock timer.Clock) *Player {
	return &Player{
		Facing:     cfg.DirectionRight,
		Jump:       cfg.CanJump,
		Lives:      cfg.Player.StartingLives,
		Anim:       cfg.AnimIdleRight,
		frameTimer: timer.New(clock, cfg.Player.WalkFrameMs),
	}
}

// Rect returns the body rectangle.
func (p *Player) Rect() gamemath.Rect {
	return gamemath.NewRect(p.X, p.Y, cfg.Player.Width, cfg.Player.Height)
}

// Held reports whether the key bound to a direction action is down.
func (p *Player) Held(a cfg.ActionID) bool {
	slot, ok := a.KeySlot()
	return ok && p.Keys[slot]
}

// PlaceAt moves the player to the level's start tile with a clean movement
// state. The body sits two tiles tall above the start tile's bottom edge.
func (p *Player) PlaceAt(m *leveldata.TileMap) {
	x, y := m.IndexPos(m.Start)
	p.X = x
	p.Y = y + 2*m.TileSize - cfg.Player.Height
	p.VelX, p.VelY = 0, 0
	p.Facing = cfg.DirectionRight
	p.Jump = cfg.CanJump
	p.Keys = [4]bool{}
	p.Dead = false
	p.OnPlatform = false
	p.Anim = cfg.AnimIdleRight
	p.Frame = 0
	p.frameTimer.Reset()
}

// Press records a key going down. It reports whether a jump started.
func (p *Player) Press(a cfg.ActionID) bool {
	slot, ok := a.KeySlot()
	if !ok {
		return false
	}
	p.Keys[slot] = true

	switch a {
	case cfg.ActionUp:
		if p.Jump == cfg.CanJump {
			p.Jump = cfg.Jumping
			return true
		}
	case cfg.ActionLeft, cfg.ActionRight:
		p.Frame = 1
		p.frameTimer.Reset()
	}
	return false
}

// Release records a key going up.
func (p *Player) Release(a cfg.ActionID) {
	if slot, ok := a.KeySlot(); ok {
		p.Keys[slot] = false
	}
}

// Update advances the player by elapsedMs against the tile map and the
// level's platforms. It reports true when the player asked to leave through
// an exit tile; the caller owns the level change.
func (p *Player) Update(elapsedMs int64, m *leveldata.TileMap, platforms *MovingPlatformSystem) bool {
	dt := float64(elapsedMs) / 1000
	p.accelerate(dt)

	if p.VelX == 0 && p.Keys[keyDown] && m.IsExit(p.X+cfg.Player.Width/2, p.Y+cfg.Player.Height) {
		return true
	}

	p.move(dt, m, platforms)
	p.X = gamemath.Clamp(p.X, 0, m.Width()-cfg.Player.Width)
	p.animate()
	return false
}

func (p *Player) accelerate(dt float64) {
	accel := cfg.Player.MoveAccel * dt
	left, right := p.Keys[keyLeft], p.Keys[keyRight]
	switch {
	case right && !left:
		p.Facing = cfg.DirectionRight
		p.VelX += accel
	case left && !right:
		p.Facing = cfg.DirectionLeft
		p.VelX -= accel
	default:
		p.VelX = gamemath.ApplyFriction(p.VelX, accel)
	}
	p.VelX = gamemath.ClampSpeed(p.VelX, cfg.Player.MaxMoveSpeed)

	if p.OnPlatform {
		return
	}
	switch p.Jump {
	case cfg.Jumping:
		p.VelY -= cfg.Player.JumpAccel * dt
		if p.VelY <= -cfg.Player.MaxJumpSpeed {
			p.VelY = -cfg.Player.MaxJumpSpeed
			p.Jump = cfg.Jumped
		} else if !p.Keys[keyUp] {
			p.Jump = cfg.Jumped
		}
	case cfg.Jumped:
		p.VelY += cfg.Player.Gravity * dt
	}
}

// move integrates velocity in sub-steps no longer than half a tile so a
// fast body cannot skip over a tile between probes.
func (p *Player) move(dt float64, m *leveldata.TileMap, platforms *MovingPlatformSystem) {
	dist := math.Max(math.Abs(p.VelX), math.Abs(p.VelY)) * dt
	steps := int(math.Ceil(dist / (m.TileSize / 2)))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float64(steps)
	for range steps {
		p.stepVertical(sub, m, platforms)
		if p.VelX != 0 {
			p.stepHorizontal(sub, m)
		}
	}
}

func (p *Player) stepVertical(dt float64, m *leveldata.TileMap, platforms *MovingPlatformSystem) {
	if p.OnPlatform {
		return
	}
	h := cfg.Player.Height

	if p.VelY == 0 {
		if p.Jump == cfg.CanJump && !p.supported(m) {
			p.Jump = cfg.Jumped
		}
		return
	}

	y := p.Y + p.VelY*dt
	if p.VelY > 0 {
		if p.solidRow(m, p.X, y+h) {
			p.land(m, y)
			return
		}
		if top, ok := platforms.LandingTop(p.X, p.Y+h, y+h); ok {
			p.Y = top - h
			p.VelY = 0
			p.Jump = cfg.CanJump
			p.OnPlatform = true
			return
		}
	} else if p.solidRow(m, p.X, y) {
		_, row := m.Cell(p.X, y)
		p.Y = float64(row+1) * m.TileSize
		p.VelY = 0
		p.Jump = cfg.Jumped
		return
	}
	p.Y = y
}

// land snaps the feet to the top of the tile row that was hit, then walks
// the body up while it still overlaps a solid tile.
func (p *Player) land(m *leveldata.TileMap, y float64) {
	_, row := m.Cell(p.X, y+cfg.Player.Height)
	y = float64(row)*m.TileSize - cfg.Player.Height
	for i := 0; i < m.Rows && p.blocked(m, p.X, y); i++ {
		y -= m.TileSize
	}
	p.Y = y
	p.VelY = 0
	p.Jump = cfg.CanJump
}

func (p *Player) stepHorizontal(dt float64, m *leveldata.TileMap) {
	w := cfg.Player.Width
	x := p.X + p.VelX*dt

	if p.VelX < 0 {
		if p.solidColumn(m, x, p.Y) {
			col, _ := m.Cell(x, p.Y)
			x = float64(col+1) * m.TileSize
			p.VelX = 0
		}
	} else {
		edge := x + w - skin
		if p.solidColumn(m, edge, p.Y) {
			col, _ := m.Cell(edge, p.Y)
			x = float64(col)*m.TileSize - w
			p.VelX = 0
		}
	}
	p.X = x
}

// solidRow probes a horizontal line across the body's width at y.
func (p *Player) solidRow(m *leveldata.TileMap, x, y float64) bool {
	w := cfg.Player.Width
	return m.IsSolid(x, y) || m.IsSolid(x+w/2, y) || m.IsSolid(x+w-skin, y)
}

// solidColumn probes a vertical line down the body's height at x.
func (p *Player) solidColumn(m *leveldata.TileMap, x, y float64) bool {
	h := cfg.Player.Height
	return m.IsSolid(x, y) || m.IsSolid(x, y+h/2) || m.IsSolid(x, y+h-skin)
}

// blocked reports whether a body at (x, y) overlaps any solid tile.
func (p *Player) blocked(m *leveldata.TileMap, x, y float64) bool {
	w := cfg.Player.Width
	return p.solidColumn(m, x, y) || p.solidColumn(m, x+w/2, y) || p.solidColumn(m, x+w-skin, y)
}

func (p *Player) supported(m *leveldata.TileMap) bool {
	feet := p.Y + cfg.Player.Height
	return m.IsSolid(p.X, feet) || m.IsSolid(p.X+cfg.Player.Width-skin, feet)
}

// standsOn reports whether the feet line touches the top region of r.
func (p *Player) standsOn(r gamemath.Rect) bool {
	w := cfg.Player.Width
	feet := p.Y + cfg.Player.Height
	return r.Contains(p.X, feet) || r.Contains(p.X+w/2, feet) || r.Contains(p.X+w-skin, feet)
}

// carry moves the player with a platform whose top is now at top. The
// horizontal shift is dropped when it would push the body into a wall, and
// the whole carry is refused when the new height is blocked.
func (p *Player) carry(m *leveldata.TileMap, dx, top float64) bool {
	y := top - cfg.Player.Height
	if p.blocked(m, p.X, y) {
		return false
	}
	p.Y = y
	if dx != 0 && !p.blocked(m, p.X+dx, y) {
		p.X += dx
	}
	return true
}

func (p *Player) animate() {
	p.Anim = SelectAnimation(p.VelX, p.VelY, p.Jump, p.Facing, p.Keys)
	if p.VelX == 0 || p.Jump != cfg.CanJump {
		return
	}
	if p.frameTimer.Ready() {
		p.Frame = (p.Frame + 1) % cfg.Player.WalkFrames
	}
}

// SelectAnimation picks the pose for a movement state. Priority runs jump,
// duck, turn, walk, idle.
func SelectAnimation(velX, velY float64, jump cfg.JumpState, facing cfg.Direction, keys [4]bool) cfg.AnimationID {
	left := facing == cfg.DirectionLeft
	pick := func(l, r cfg.AnimationID) cfg.AnimationID {
		if left {
			return l
		}
		return r
	}

	switch {
	case jump != cfg.CanJump || velY != 0:
		return pick(cfg.AnimJumpLeft, cfg.AnimJumpRight)
	case keys[keyDown] && !keys[keyLeft] && !keys[keyRight]:
		return pick(cfg.AnimDuckLeft, cfg.AnimDuckRight)
	case velX > 0 && keys[keyLeft] && !keys[keyRight]:
		return cfg.AnimTurnLeft
	case velX < 0 && keys[keyRight] && !keys[keyLeft]:
		return cfg.AnimTurnRight
	case velX != 0:
		return pick(cfg.AnimMoveLeft, cfg.AnimMoveRight)
	}
	return pick(cfg.AnimIdleLeft, cfg.AnimIdleRight)
}
