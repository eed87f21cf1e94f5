package systems

import (
	"os"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/systems/factory"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateReload applies edited animation definitions from the override
// directory. Invalid files are logged and the current definitions stay.
func UpdateReload(ecs *ecs.ECS) {
	entry, ok := components.Reload.First(ecs.World)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	if reload.Watcher == nil {
		return
	}

	log := logger.System("reload")
	if err := reload.Watcher.PollError(); err != nil {
		log.Warn("watch error", zap.Error(err))
	}

	var path string
	for {
		name, ok := reload.Watcher.Poll()
		if !ok {
			break
		}
		path = name
	}
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("could not read animation file", zap.String("path", path), zap.Error(err))
		return
	}
	if err := ReloadAnimations(ecs, data); err != nil {
		log.Warn("keeping current animations", zap.String("path", path), zap.Error(err))
		return
	}
	reload.Reloads++
	log.Info("animations reloaded", zap.String("path", path), zap.Int("reloads", reload.Reloads))
}

// ReloadAnimations validates data and swaps it in. Players are rebuilt on
// the new definitions and their controllers return to idle.
func ReloadAnimations(ecs *ecs.ECS, data []byte) error {
	set, err := cfg.LoadAnimations(data)
	if err != nil {
		return err
	}
	cfg.Animations = set

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		sheet := components.Animation.Get(e).Sheet
		assets.ForgetFrames(sheet)
		components.Animation.Set(e, factory.GenerateAnimations(set, sheet))
		if ctrl := components.Player.Get(e).Controller; ctrl != nil {
			ctrl.SetAnimations(set)
		}
	})

	// Frame size may have changed; refit on the next tick.
	if entry, ok := components.Viewport.First(ecs.World); ok {
		components.Viewport.Get(entry).Applied = 0
	}
	return nil
}
