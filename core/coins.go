package core

import (
	"iter"
	"slices"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/gamemath"
	"github.com/automoto/tangent/shared/leveldata"
	"github.com/automoto/tangent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Pickup is raised once for every coin the player touches.
type Pickup struct {
	Index int
}

type coinSlot struct {
	index     int
	collected bool
	body      *resolv.Object
}

// CoinCollector tracks the coins of one level. Slots keep their spawn order
// and a collected slot never becomes present again.
type CoinCollector struct {
	tiles *leveldata.TileMap
	space *resolv.Space
	slots []coinSlot
	reach *resolv.Object
}

// NewCoinCollector creates an empty collector whose coin bodies live in
// space, together with the single player body used to find them.
func NewCoinCollector(tiles *leveldata.TileMap, space *resolv.Space) *CoinCollector {
	reach := resolv.NewObject(0, 0, cfg.Player.Width+2, cfg.Player.Height+2, tags.ResolvPlayer)
	space.Add(reach)
	return &CoinCollector{
		tiles: tiles,
		space: space,
		slots: make([]coinSlot, 0, 8),
		reach: reach,
	}
}

// AddCoin places a coin on tile index.
func (c *CoinCollector) AddCoin(index int) {
	r := c.tiles.TileRect(index)
	body := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCoin)
	body.Data = len(c.slots)
	c.space.Add(body)
	c.slots = append(c.slots, coinSlot{index: index, body: body})
}

// CheckPickups collects every present coin whose tile touches player.
// The space narrows the candidates; the tile rectangle decides.
func (c *CoinCollector) CheckPickups(player gamemath.Rect) []Pickup {
	// Grown by a pixel so coins that only touch an edge share a cell.
	c.reach.X, c.reach.Y = player.X-1, player.Y-1
	c.reach.W, c.reach.H = player.W+2, player.H+2
	c.reach.Update()

	check := c.reach.Check(0, 0, tags.ResolvCoin)
	if check == nil {
		return nil
	}

	var hits []int
	for _, obj := range check.ObjectsByTags(tags.ResolvCoin) {
		slot, ok := obj.Data.(int)
		if !ok || c.slots[slot].collected {
			continue
		}
		if !c.tiles.TileRect(c.slots[slot].index).Intersects(player) {
			continue
		}
		hits = append(hits, slot)
	}
	if len(hits) == 0 {
		return nil
	}

	slices.Sort(hits)
	hits = slices.Compact(hits)
	pickups := make([]Pickup, 0, len(hits))
	for _, slot := range hits {
		s := &c.slots[slot]
		s.collected = true
		c.space.Remove(s.body)
		pickups = append(pickups, Pickup{Index: s.index})
	}
	return pickups
}

// Positions yields the world position of every coin still present.
func (c *CoinCollector) Positions() iter.Seq[math.Vec2] {
	return func(yield func(math.Vec2) bool) {
		for _, s := range c.slots {
			if s.collected {
				continue
			}
			x, y := c.tiles.IndexPos(s.index)
			if !yield(math.NewVec2(x, y)) {
				return
			}
		}
	}
}

// Remaining counts coins not yet collected.
func (c *CoinCollector) Remaining() int {
	n := 0
	for _, s := range c.slots {
		if !s.collected {
			n++
		}
	}
	return n
}

// Len counts all coins the level spawned.
func (c *CoinCollector) Len() int { return len(c.slots) }
