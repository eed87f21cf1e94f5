package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateReload(ecs *ecs.ECS, dir string, watcher *assets.Watcher) *donburi.Entry {
	entry := archetypes.Reload.Spawn(ecs)
	components.Reload.SetValue(entry, components.ReloadData{Dir: dir, Watcher: watcher})
	return entry
}
