package systems

import (
	"github.com/automoto/tangent/assets"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// placeholderIcon is the lives icon size used when the icon image is missing.
const placeholderIcon = 8

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders lives in the top-left corner and score and coins in the
// top-right corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	data := getSession(e)
	if data == nil || !isPlayView(data.Session) {
		return
	}
	hud := data.Session.HUD()
	face := fonts.Small.Get()
	margin := cfg.UI.HUDMargin
	right := float64(screen.Bounds().Dx()) - cfg.UI.HUDRightInset

	drawText(screen, hud.LivesLabel, face, margin, margin)
	drawText(screen, hud.Score, face, right, margin)
	drawText(screen, hud.Coins, face, right, margin+cfg.UI.HUDLineHeight)

	drawLives(screen, hud.LivesIcons(), margin, margin+cfg.UI.HUDLineHeight)
}

// drawText places s with its top-left corner at x, y.
func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, int(x), int(y)+ascent, cfg.UI.TextColor)
}

func drawLives(screen *ebiten.Image, count int, x, y float64) {
	icon := images.Get(assets.LivesImage)
	w := float64(placeholderIcon)
	if icon != nil {
		w = float64(icon.Bounds().Dx())
	}

	for i := range count {
		ix := float64(i)*(w+cfg.UI.LivesIconGap) + x
		if icon == nil {
			vector.FillRect(screen, float32(ix), float32(y), placeholderIcon, placeholderIcon, playerColor, false)
			continue
		}
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Translate(ix, y)
		screen.DrawImage(icon, hudDrawOp)
	}
}
