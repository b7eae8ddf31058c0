package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the level space and the player body.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := gameEntry(e)
	if !ok || !components.Settings.Get(entry).Debug {
		return
	}
	data := getSession(e)
	if data == nil || !isPlayView(data.Session) {
		return
	}
	lvl := data.Session.Level()

	for _, obj := range lvl.Space.Objects() {
		if obj.HasTags(tags.ResolvPlayer) {
			continue
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlatform) {
			c = color.RGBA{0, 255, 0, 255}
		} else if obj.HasTags(tags.ResolvCoin) {
			c = color.RGBA{255, 255, 0, 255}
		}
		outline(screen, obj.X, obj.Y, obj.W, obj.H, c)
	}

	r := data.Session.Player().Rect()
	outline(screen, r.X, r.Y, r.W, r.H, color.RGBA{0, 0, 255, 255})

	p := data.Session.Player()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f %s coins left %d",
			p.X, p.Y, p.VelX, p.VelY, p.Jump, lvl.Coins.Remaining()),
		int(cfg.UI.HUDMargin), screen.Bounds().Dy()-20)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
