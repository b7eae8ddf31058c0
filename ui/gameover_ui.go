package ui

import (
	"bytes"

	"github.com/automoto/tangent/components"
	cfg "github.com/automoto/tangent/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI builds the game over screen: a title, the final score and the
// restart prompt on a black background.
type GameOverUI struct {
	titleFace  text.Face
	normalFace text.Face
}

// NewGameOverUI loads faces from ttf, falling back to Go Regular when ttf
// is empty or cannot be parsed.
func NewGameOverUI(ttf []byte) (*GameOverUI, error) {
	src, err := loadFaceSource(ttf)
	if err != nil {
		return nil, err
	}
	return &GameOverUI{
		titleFace:  &text.GoTextFace{Source: src, Size: 16},
		normalFace: &text.GoTextFace{Source: src, Size: 9},
	}, nil
}

func loadFaceSource(ttf []byte) (*text.GoTextFaceSource, error) {
	if len(ttf) > 0 {
		if src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf)); err == nil {
			return src, nil
		}
	}
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// Build returns the overlay with its labels exposed for updates.
func (g *GameOverUI) Build() components.OverlayData {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &g.titleFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	score := widget.NewLabel(
		widget.LabelOpts.Text("", &g.normalFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	prompt := widget.NewLabel(
		widget.LabelOpts.Text("", &g.normalFace, &widget.LabelColor{
			Idle: cfg.UI.BannerColor,
		}),
	)

	contentContainer.AddChild(title)
	contentContainer.AddChild(score)
	contentContainer.AddChild(prompt)
	rootContainer.AddChild(contentContainer)

	return components.OverlayData{
		UI:     &ebitenui.UI{Container: rootContainer},
		Score:  score,
		Prompt: prompt,
	}
}
