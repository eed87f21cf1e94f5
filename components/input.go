package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/automoto/brawler/input"
	"github.com/yohamta/donburi"
)

// InputData holds the session's input source and the last sample.
// Current/Previous track menu actions for edge detection.
type InputData struct {
	Source   input.Source
	Intent   controller.Intent
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}
