package factory

import (
	"github.com/automoto/cdwalk/archetypes"
	"github.com/automoto/cdwalk/assets"
	"github.com/automoto/cdwalk/components"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a static wall and registers its footprint in the space.
func CreateWall(ecs *ecs.ECS, arena *assets.Arena, box gamemath.Box3) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	components.Wall.SetValue(wall, components.WallData{Box: box})

	x, y, w, h := Footprint(arena, box)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// Footprint returns the map-pixel rectangle covered by box seen from above.
func Footprint(arena *assets.Arena, box gamemath.Box3) (x, y, w, h float64) {
	x, y = arena.ToMap(box.Min.X, box.Min.Z)
	size := box.Size()
	return x, y, size.X * arena.PixelsPerUnit, size.Z * arena.PixelsPerUnit
}
