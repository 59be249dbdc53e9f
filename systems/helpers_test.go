package systems

import (
	"testing"

	"github.com/automoto/cdwalk/components"
	"github.com/automoto/cdwalk/systems/factory"
	"github.com/automoto/cdwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	arena, err := factory.LoadArena()
	if err != nil {
		t.Fatalf("loading arena: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.Populate(e, arena)
	return e
}

func testPlayer(t *testing.T, e *ecs.ECS) *components.PlayerData {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return components.Player.Get(entry)
}

func testCD(t *testing.T, e *ecs.ECS) *components.CDData {
	t.Helper()
	entry, ok := tags.CD.First(e.World)
	if !ok {
		t.Fatal("no cd in world")
	}
	return components.CD.Get(entry)
}

// placePlayer teleports the player and its broad-phase body.
func placePlayer(t *testing.T, e *ecs.ECS, x, y, z float64) {
	t.Helper()
	entry, _ := tags.Player.First(e.World)
	player := components.Player.Get(entry)
	player.Position.X, player.Position.Y, player.Position.Z = x, y, z
	arenaEntry, _ := components.Arena.First(e.World)
	syncFootprint(components.Arena.Get(arenaEntry).Arena, components.Object.Get(entry).Object, player.Box())
}
