package scenes

import (
	"image/color"
	"io/fs"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/timer"
	"github.com/automoto/tangent/systems"
	"github.com/automoto/tangent/systems/factory"
	"github.com/automoto/tangent/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options configures the platformer scene.
type Options struct {
	Levels     fs.FS
	StartLevel int
	FontTTF    []byte
	Logger     *zap.Logger
	Saved      *systems.SavedSettings
}

type PlatformerScene struct {
	ecs *ecs.ECS
}

// NewPlatformerScene builds the world, registers systems and starts the
// session on the start level.
func NewPlatformerScene(opts Options) (*PlatformerScene, error) {
	ps := &PlatformerScene{}
	if err := ps.configure(opts); err != nil {
		return nil, err
	}
	return ps, nil
}

func (ps *PlatformerScene) Update() {
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure(opts Options) error {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	clock := timer.NewSystemClock()
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so cues queued last frame play now)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateBanner)
	e.AddSystem(systems.UpdateGameOver)
	e.AddSystem(systems.NewUpdateWindowTitle(clock))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlatforms)
	e.AddRenderer(cfg.Default, systems.DrawCoins)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawBanner)
	e.AddRenderer(cfg.Default, systems.DrawGameOver)

	if _, err := factory.CreateGame(e, factory.GameConfig{
		Levels:     opts.Levels,
		StartLevel: opts.StartLevel,
		Clock:      clock,
		Logger:     opts.Logger,
		Saved:      opts.Saved,
	}); err != nil {
		return err
	}

	overlayUI, err := ui.NewGameOverUI(opts.FontTTF)
	if err != nil {
		return err
	}
	factory.CreateOverlay(e, overlayUI.Build())

	ps.ecs = e
	return nil
}
