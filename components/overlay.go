package components

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi"
)

// OverlayData is the game over screen. Labels are kept so their text can
// change without rebuilding the widget tree.
type OverlayData struct {
	UI     *ebitenui.UI
	Score  *widget.Label
	Prompt *widget.Label
}

var Overlay = donburi.NewComponentType[OverlayData]()
