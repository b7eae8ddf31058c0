package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tangent/assets"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/core"
	"github.com/automoto/tangent/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Placeholder colors used when a sprite sheet is missing.
	wallColor     = color.RGBA{100, 100, 100, 255}
	exitColor     = color.RGBA{40, 200, 40, 255}
	platformColor = color.RGBA{160, 110, 60, 255}
	coinColor     = color.RGBA{255, 215, 0, 255}
	playerColor   = color.RGBA{220, 40, 40, 255}
)

// levelCache holds the static part of the current map, redrawn only when
// the map changes.
var levelCache struct {
	tiles *leveldata.TileMap
	image *ebiten.Image
}

// isPlayView reports whether the world is visible this frame.
func isPlayView(s *core.Session) bool {
	return !s.ShowBanner() && !s.GameOver()
}

// DrawLevel renders the background and static tiles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	data := getSession(e)
	if data == nil || !isPlayView(data.Session) {
		return
	}
	lvl := data.Session.Level()
	if lvl == nil {
		return
	}

	if levelCache.tiles != lvl.Map {
		levelCache.tiles = lvl.Map
		levelCache.image = renderTiles(lvl.Map)
	}
	screen.DrawImage(levelCache.image, nil)
}

func renderTiles(m *leveldata.TileMap) *ebiten.Image {
	img := ebiten.NewImage(int(m.Width()), int(m.Height()))
	if bg := images.Get(assets.BackgroundImage); bg != nil {
		img.DrawImage(bg, nil)
	}

	op := &ebiten.DrawImageOptions{}
	for i, kind := range m.All() {
		info := kind.Info()
		if !info.Drawn {
			continue
		}
		x, y := m.IndexPos(i)
		if frame := images.Frame(assets.TilesImage, info.Sprite.Rect()); frame != nil {
			op.GeoM.Reset()
			op.GeoM.Translate(x, y)
			img.DrawImage(frame, op)
			continue
		}
		c := wallColor
		if info.Trigger == leveldata.TriggerExit {
			c = exitColor
		}
		vector.FillRect(img, float32(x), float32(y), float32(m.TileSize), float32(m.TileSize), c, false)
	}
	return img
}

// DrawPlatforms renders every moving platform at its current position.
func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	data := getSession(e)
	if data == nil || !isPlayView(data.Session) {
		return
	}
	lvl := data.Session.Level()
	size := float32(cfg.Platform.Size)
	for pos := range lvl.Platforms.Positions() {
		drawTileSprite(screen, cfg.PlatformCell, pos.X, pos.Y, size, platformColor)
	}
}

// DrawCoins renders every coin not yet collected.
func DrawCoins(e *ecs.ECS, screen *ebiten.Image) {
	data := getSession(e)
	if data == nil || !isPlayView(data.Session) {
		return
	}
	lvl := data.Session.Level()
	size := float32(lvl.Map.TileSize)
	for pos := range lvl.Coins.Positions() {
		drawTileSprite(screen, cfg.CoinCell, pos.X, pos.Y, size, coinColor)
	}
}

func drawTileSprite(screen *ebiten.Image, cell cfg.TileCell, x, y float64, size float32, fallback color.RGBA) {
	frame := images.Frame(assets.TilesImage, cell.Rect())
	if frame == nil {
		vector.FillRect(screen, float32(x), float32(y), size, size, fallback, false)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(math.Floor(x), math.Floor(y))
	screen.DrawImage(frame, drawOp)
}

// DrawPlayer renders the player's current animation frame.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	data := getSession(e)
	if data == nil || !isPlayView(data.Session) {
		return
	}
	p := data.Session.Player()

	frame := images.Frame(assets.PlayerImage, cfg.AnimationRect(p.Anim, p.Frame))
	if frame == nil {
		vector.FillRect(screen, float32(p.X), float32(p.Y),
			float32(cfg.Player.Width), float32(cfg.Player.Height), playerColor, false)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(math.Floor(p.X), math.Floor(p.Y))
	screen.DrawImage(frame, drawOp)
}
