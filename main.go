package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/scenes"
	"github.com/automoto/brawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps one screen pixel per world unit; the scene refits on resize.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	touch := flag.Bool("touch", false, "force on-screen touch controls")
	debug := flag.Bool("debug", false, "show the debug HUD")
	animDir := flag.String("anim-dir", "", "directory with an animations.yaml override, watched for changes")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logCfg := logger.DefaultConfig()
	logCfg.Level = *logLevel
	log, err := logger.Init(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := config.CheckAnimations(); err != nil {
		log.Fatal("invalid built-in animations", zap.Error(err))
	}
	if err := loadAnimationOverride(*animDir); err != nil {
		log.Fatal("invalid animation override", zap.String("dir", *animDir), zap.Error(err))
	}
	if err := fonts.LoadDefaultFonts(); err != nil {
		log.Fatal("load fonts", zap.Error(err))
	}

	if err := systems.InitPersistence("brawler"); err != nil {
		log.Warn("settings will not be saved", zap.Error(err))
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn("ignoring saved settings", zap.Error(err))
		saved = nil
	}

	ebiten.SetWindowTitle("brawler")
	ebiten.SetWindowSize(config.C.WindowWidth, config.C.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewStageScene(scenes.StageOptions{
		AnimationDir: *animDir,
		Saved:        saved,
		ForceTouch:   *touch,
		Debug:        *debug,
	})
	defer func() { _ = scene.Close() }()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}

// loadAnimationOverride replaces the built-in animations with dir's
// animations.yaml when present.
func loadAnimationOverride(dir string) error {
	if dir == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(dir, "animations.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	set, err := config.LoadAnimations(data)
	if err != nil {
		return err
	}
	config.Animations = set
	return nil
}
