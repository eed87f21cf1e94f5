package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/automoto/brawler/input"
	"github.com/automoto/brawler/logger"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// menuKeys polls the menu bindings. Replaced in tests.
var menuKeys input.KeyReader = input.EbitenKeys{}

// UpdateInput samples the active source into the Input component and polls
// the menu bindings. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)

	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if menuKeys.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
	}

	if in.Source == nil {
		in.Intent = controller.Intent{}
		return
	}
	intent := in.Source.Sample()
	if !intent.Valid() {
		logger.System("input").Debug("dropping unknown direction",
			zap.String("source", in.Source.Name()),
			zap.Int("move", int(intent.Move)),
			zap.Error(input.ErrInputFault))
	}
	in.Intent = intent.Normalize()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(in *components.InputData, id cfg.ActionID) components.ActionState {
	if id < 0 || id >= cfg.ActionCount {
		return components.ActionState{}
	}
	curr := in.Current[id]
	prev := in.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
