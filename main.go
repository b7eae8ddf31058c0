// tangent is a single-player tile platformer.
//
// Usage:
//
//	tangent                 - Play from level 1
//	tangent check           - Validate every level file and exit
//
// Global flags:
//
//	--assets <dir>       - Directory holding images/ and audio/ (default: .)
//	--levels <dir>       - Directory holding levels/ (default: --assets)
//	--config <file>      - YAML overrides for the built-in configuration
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--placeholders       - Draw placeholders for missing images and audio
package main

import (
	"fmt"
	"os"

	"github.com/automoto/tangent/assets"
	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/core"
	"github.com/automoto/tangent/fonts"
	"github.com/automoto/tangent/scenes"
	"github.com/automoto/tangent/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	flagAssets       string
	flagLevels       string
	flagConfig       string
	flagLogLevel     string
	flagLogFormat    string
	flagStartLevel   int
	flagPlaceholders bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tangent",
	Short: "Tangent - a tile platformer",
	Long: `Tangent is a single-player tile platformer. Walk and jump through
nine levels, collect coins for score and extra lives, ride moving
platforms and stand on the exit while holding down to move on.

Controls:
  arrows  - move, jump (up) and take the exit (down)
  Z       - skip to the next level (when debug.allowLevelSkip is set)
  M       - mute
  F1      - show colliders`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every level file",
	Long:  `Loads each numbered level the way the game would and prints what it contains.`,
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Directory holding images/ and audio/")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory holding levels/ (default: --assets)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML configuration overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format: console or json")
	rootCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start on")
	rootCmd.Flags().BoolVar(&flagPlaceholders, "placeholders", false, "Draw placeholders for missing assets instead of failing")

	rootCmd.AddCommand(checkCmd)
}

var logger *zap.Logger

func setup(cmd *cobra.Command, args []string) error {
	l, err := newLogger(flagLogLevel, flagLogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logger = l

	path, err := cfg.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("configuration overrides applied", zap.String("path", path))
	}
	if flagLevels == "" {
		flagLevels = flagAssets
	}
	return nil
}

func newLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func runGame(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	assetFS := os.DirFS(flagAssets)
	if err := assets.Verify(assetFS); err != nil {
		if !flagPlaceholders {
			return fmt.Errorf("load assets from %s: %w", flagAssets, err)
		}
		logger.Warn("assets missing, using placeholders", zap.Error(err))
	}
	systems.Setup(assetFS, logger)

	ttf, err := assets.ReadFont(assetFS)
	if err != nil {
		logger.Warn("game font unavailable, using Go Regular", zap.Error(err))
	}
	if err := fonts.LoadDefaults(ttf); err != nil {
		logger.Warn("game font unreadable, using Go Regular", zap.Error(err))
	}

	// Initialize persistence and load saved settings
	var saved *systems.SavedSettings
	if err := systems.InitPersistence(); err == nil {
		saved, _ = systems.LoadSettings()
	}

	scene, err := scenes.NewPlatformerScene(scenes.Options{
		Levels:     os.DirFS(flagLevels),
		StartLevel: flagStartLevel,
		FontTTF:    ttf,
		Logger:     logger,
		Saved:      saved,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.C.Width*cfg.C.Scale, cfg.C.Height*cfg.C.Scale)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(cfg.C.TPS)

	return ebiten.RunGame(&Game{scene: scene})
}

func runCheck(cmd *cobra.Command, args []string) error {
	reports := core.CheckLevels(os.DirFS(flagLevels))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  %-5s  %-24s  %5s  %9s  %s\n", "Level", "File", "Coins", "Platforms", "Status")
	for _, r := range reports {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(out, "  %-5d  %-24s  %5d  %9d  %s\n", r.Number, r.Path, r.Coins, r.Platforms, status)
	}

	if failed := core.Failed(reports); failed > 0 {
		return fmt.Errorf("%d of %d levels failed to load", failed, len(reports))
	}
	return nil
}
