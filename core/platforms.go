package core

import (
	"iter"
	"math"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/gamemath"
	"github.com/automoto/tangent/shared/leveldata"
	"github.com/automoto/tangent/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Platform is a one-tile block that patrols one axis, turning around at
// solid tiles, reversal tiles and the grid edge.
type Platform struct {
	Body *resolv.Object
	Axis leveldata.Axis
	Dir  cfg.Direction

	originX, originY float64
}

// Rect returns the platform's current rectangle.
func (p *Platform) Rect() gamemath.Rect {
	return gamemath.NewRect(p.Body.X, p.Body.Y, p.Body.W, p.Body.H)
}

func (p *Platform) reset() {
	p.Body.X, p.Body.Y = p.originX, p.originY
	p.Body.Update()
	p.Dir = initialDirection(p.Axis)
}

func initialDirection(axis leveldata.Axis) cfg.Direction {
	if axis == leveldata.AxisVertical {
		return cfg.DirectionUp
	}
	return cfg.DirectionRight
}

// MovingPlatformSystem owns the platforms of one level.
type MovingPlatformSystem struct {
	tiles     *leveldata.TileMap
	space     *resolv.Space
	platforms []*Platform
}

// NewMovingPlatformSystem spawns a platform for every origin in the map.
func NewMovingPlatformSystem(tiles *leveldata.TileMap, space *resolv.Space) *MovingPlatformSystem {
	s := &MovingPlatformSystem{tiles: tiles, space: space}
	for _, origin := range tiles.Platforms {
		s.Add(origin)
	}
	return s
}

// Add spawns a platform on its origin tile.
func (s *MovingPlatformSystem) Add(origin leveldata.PlatformOrigin) *Platform {
	x, y := s.tiles.IndexPos(origin.Index)
	size := cfg.Platform.Size
	p := &Platform{
		Body:    resolv.NewObject(x, y, size, size, tags.ResolvPlatform),
		Axis:    origin.Axis,
		Dir:     initialDirection(origin.Axis),
		originX: x,
		originY: y,
	}
	p.Body.Data = p
	s.space.Add(p.Body)
	s.platforms = append(s.platforms, p)
	return p
}

// Platforms returns the live platforms in spawn order.
func (s *MovingPlatformSystem) Platforms() []*Platform { return s.platforms }

// Positions yields each platform's top-left corner.
func (s *MovingPlatformSystem) Positions() iter.Seq[dmath.Vec2] {
	return func(yield func(dmath.Vec2) bool) {
		for _, p := range s.platforms {
			if !yield(dmath.NewVec2(p.Body.X, p.Body.Y)) {
				return
			}
		}
	}
}

// Reset returns every platform to its origin and initial direction.
func (s *MovingPlatformSystem) Reset() {
	for _, p := range s.platforms {
		p.reset()
	}
}

// UpdateAll moves every platform. When any of them carries the player the
// player is grounded on it; otherwise the player is released.
func (s *MovingPlatformSystem) UpdateAll(elapsedMs int64, player *Player) bool {
	carried := false
	for _, p := range s.platforms {
		if s.Update(p, elapsedMs, player) {
			carried = true
		}
	}
	if carried {
		player.Jump = cfg.CanJump
		player.VelY = 0
		player.OnPlatform = true
	} else {
		player.OnPlatform = false
	}
	return carried
}

// Update moves one platform and reports whether it carried the player.
// A platform whose leading edge enters a blocker snaps back flush against it
// and turns around, so it never overlaps a solid tile at the end of a tick.
// A platform that would lift its rider into a ceiling stops under the
// rider's feet and turns around instead.
func (s *MovingPlatformSystem) Update(p *Platform, elapsedMs int64, player *Player) bool {
	before := p.Rect()
	riding := player.OnPlatform && player.standsOn(before)

	step := cfg.Platform.Speed * float64(elapsedMs) / 1000
	dx, dy := p.Dir.Delta()
	p.Body.X += dx * step
	p.Body.Y += dy * step
	if x, y := p.leadingEdge(); s.blocks(x, y) {
		p.snapBack(s.tiles.TileSize)
		p.Dir = p.Dir.Opposite()
	}
	p.Body.Update()

	if player.Dead || player.Jump == cfg.Jumping {
		return false
	}
	after := p.Rect()
	if !riding && !player.standsOn(after) {
		return false
	}

	shift := 0.0
	if p.Axis == leveldata.AxisHorizontal {
		shift = after.X - before.X
	}
	if player.carry(s.tiles, shift, after.Y) {
		return true
	}
	if after.Y >= before.Y {
		return false
	}
	// A rider pinned against a ceiling blocks the platform like a solid tile.
	p.Body.Y = player.Y + cfg.Player.Height
	p.Body.Update()
	p.Dir = cfg.DirectionDown
	return player.carry(s.tiles, 0, p.Body.Y)
}

func (p *Platform) leadingEdge() (float64, float64) {
	half := p.Body.W / 2
	switch p.Dir {
	case cfg.DirectionUp:
		return p.Body.X + half, p.Body.Y
	case cfg.DirectionDown:
		return p.Body.X + half, p.Body.Y + p.Body.H
	case cfg.DirectionLeft:
		return p.Body.X, p.Body.Y + half
	default:
		return p.Body.X + p.Body.W, p.Body.Y + half
	}
}

func (p *Platform) snapBack(tile float64) {
	switch p.Dir {
	case cfg.DirectionUp:
		p.Body.Y = (math.Floor(p.Body.Y/tile) + 1) * tile
	case cfg.DirectionDown:
		p.Body.Y = math.Floor((p.Body.Y+p.Body.H)/tile)*tile - p.Body.H
	case cfg.DirectionLeft:
		p.Body.X = (math.Floor(p.Body.X/tile) + 1) * tile
	default:
		p.Body.X = math.Floor((p.Body.X+p.Body.W)/tile)*tile - p.Body.W
	}
}

// blocks reports whether a platform may not enter the point.
func (s *MovingPlatformSystem) blocks(x, y float64) bool {
	col, row := s.tiles.Cell(x, y)
	if !s.tiles.InBounds(col, row) {
		return true
	}
	return s.tiles.IsSolid(x, y) || s.tiles.IsReverse(x, y)
}

// LandingTop finds the highest platform top crossed by feet moving from
// fromY down to toY with the body's left edge at x. Platforms are one-way:
// only tops reached from above count.
func (s *MovingPlatformSystem) LandingTop(x, fromY, toY float64) (float64, bool) {
	if s == nil {
		return 0, false
	}
	w := cfg.Player.Width
	best, found := 0.0, false
	for _, p := range s.platforms {
		r := p.Rect()
		if fromY > r.Y || toY < r.Y {
			continue
		}
		if x+w-skin < r.X || x > r.Right() {
			continue
		}
		if !found || r.Y < best {
			best, found = r.Y, true
		}
	}
	return best, found
}
