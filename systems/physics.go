package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every body by its velocity, stopping at solids and,
// when CollideWorldBounds is set, at the stage edges.
func UpdatePhysics(ecs *ecs.ECS) {
	worldWidth := float64(cfg.C.WorldWidth)
	if entry, ok := components.Stage.First(ecs.World); ok {
		worldWidth = float64(components.Stage.Get(entry).Stage.WorldWidth)
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dx := gamemath.StepPerTick(physics.VelocityX, cfg.C.TPS)
		physics.Blocked = false
		dx = resolveHorizontalCollision(physics, obj.Object, dx)

		obj.X += dx
		if physics.CollideWorldBounds {
			clamped := gamemath.Clamp(obj.X, 0, worldWidth-obj.W)
			if clamped != obj.X {
				physics.Blocked = true
				obj.X = clamped
			}
		}
		obj.Update()
	})
}

// resolveHorizontalCollision shortens dx so the object stops in contact with
// the first solid in its path.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) float64 {
	if dx == 0 || object.Space == nil {
		return dx
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	// Cells are coarse; keep only solids level with the object and ahead of it.
	var nearest *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if solid.Y >= object.Y+object.H || solid.Y+solid.H <= object.Y {
			continue
		}
		if dx > 0 && solid.X < object.X+object.W {
			continue
		}
		if dx < 0 && solid.X+solid.W > object.X {
			continue
		}
		if nearest == nil || (dx > 0 && solid.X < nearest.X) || (dx < 0 && solid.X > nearest.X) {
			nearest = solid
		}
	}
	if nearest == nil {
		return dx
	}

	contact := nearest.X - (object.X + object.W)
	if dx < 0 {
		contact = nearest.X + nearest.W - object.X
	}
	if (dx > 0 && contact >= dx) || (dx < 0 && contact <= dx) {
		return dx
	}
	physics.Blocked = true
	return contact
}
