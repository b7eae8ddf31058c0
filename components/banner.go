package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData fades the level title in while the session shows it.
type BannerData struct {
	Fade   *gween.Tween
	Alpha  float32
	Active bool
}

var Banner = donburi.NewComponentType[BannerData]()
