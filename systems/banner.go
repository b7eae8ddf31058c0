package systems

import (
	"image/color"

	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanner fades the level title in from the moment the session shows it.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	data := getSession(e)
	if data == nil {
		return
	}
	banner := components.Banner.Get(entry)

	if !data.Session.ShowBanner() {
		banner.Active = false
		return
	}
	if !banner.Active || banner.Fade == nil {
		banner.Fade = gween.New(0, 1, float32(max(cfg.Level.BannerFadeMs, 1)), ease.Linear)
		banner.Active = true
	}
	banner.Alpha, _ = banner.Fade.Set(float32(data.Session.BannerElapsed()))
}

// DrawBanner renders the level title centered on a black screen.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	data := getSession(e)
	if data == nil || !data.Session.ShowBanner() {
		return
	}
	banner := components.Banner.Get(entry)

	screen.Fill(cfg.Black)
	drawCentered(screen, data.Session.BannerTitle(), fonts.Large, 0, fade(cfg.UI.BannerColor, banner.Alpha))
}

// drawCentered draws s centered on the screen, offset vertically by dy.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, dy int, clr color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (w-bounds.Dx())/2 - bounds.Min.X
	y := (h-bounds.Dy())/2 - bounds.Min.Y + dy
	text.Draw(screen, s, face, x, y, clr)
}

// fade scales a color by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
