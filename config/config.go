package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds the screen and world dimensions.
type Config struct {
	WorldWidth    int // fixed logical world width in world units
	WindowWidth   int // initial window size
	WindowHeight  int
	TPS           int // ticks per second of the host loop
	MinViewHeight int // resize events are clamped to at least this height
}

// BackgroundConfig describes how the background image is drawn.
type BackgroundConfig struct {
	Tint        float64 // uniform color multiplier (0x66/0xff)
	FadeSeconds float32 // redraw fade duration after a refit
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed               float64 // world units per second
	HeightFraction      float64 // sprite height as a fraction of the viewport
	ScaleMultiplier     float64
	LockWatchdogSeconds float64 // warn when a lock outlives its animation by this much
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothingX float64 // How fast camera follows player (0.0-1.0)
	FollowSmoothingY float64
	RoundPixels      bool
}

// TouchConfig lays out the on-screen controls inside the bottom strip.
type TouchConfig struct {
	ControlStripHeight float64 // reserved bottom strip, taps here never change animation
	ButtonSize         float64
	ButtonMargin       float64
	ButtonColor        color.RGBA
	ButtonActiveColor  color.RGBA
}

// DebugConfig toggles development aids.
type DebugConfig struct {
	HUD bool
}

// Global configuration instances
var C *Config
var Background BackgroundConfig
var Player PlayerConfig
var Camera CameraConfig
var Touch TouchConfig
var Debug DebugConfig

func init() {
	C = &Config{
		WorldWidth:    5036,
		WindowWidth:   1280,
		WindowHeight:  720,
		TPS:           60,
		MinViewHeight: 1,
	}

	Background = BackgroundConfig{
		Tint:        float64(0x66) / float64(0xff),
		FadeSeconds: 0.4,
	}

	Player = PlayerConfig{
		Speed:               300,
		HeightFraction:      0.30,
		ScaleMultiplier:     2,
		LockWatchdogSeconds: 1,
	}

	Camera = CameraConfig{
		FollowSmoothingX: 0.1,
		FollowSmoothingY: 0.1,
		RoundPixels:      true,
	}

	Touch = TouchConfig{
		ControlStripHeight: 150,
		ButtonSize:         110,
		ButtonMargin:       20,
		ButtonColor:        color.RGBA{255, 255, 255, 60},
		ButtonActiveColor:  color.RGBA{255, 255, 255, 140},
	}
}
