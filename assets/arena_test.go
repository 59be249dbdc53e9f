package assets

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/automoto/cdwalk/shared/gamemath"
)

func testOptions() ArenaOptions {
	return ArenaOptions{
		PixelsPerUnit: 16,
		WallHeight:    2,
		Spawn:         gamemath.Vec3{Y: 0.5},
		CD:            gamemath.Vec3{X: 1, Y: 1, Z: -10},
		Walls: []gamemath.Box3{
			gamemath.BoxAt(gamemath.Vec3{X: 3, Y: 1}, gamemath.Vec3{X: 1, Y: 2, Z: 30}),
		},
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearVec(a, b gamemath.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestLoadEmbeddedArena(t *testing.T) {
	a, err := NewArenaLoader(testOptions()).LoadArena("levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena failed: %v", err)
	}

	if a.Width != 20 || a.Depth != 40 {
		t.Errorf("expected 20x40 floor, got %vx%v", a.Width, a.Depth)
	}
	if len(a.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", a.Warnings)
	}
	if !nearVec(a.Spawn, gamemath.Vec3{X: 0, Y: 0.5, Z: 0}) {
		t.Errorf("unexpected spawn %+v", a.Spawn)
	}
	if !nearVec(a.CD, gamemath.Vec3{X: 1, Y: 1, Z: -10}) {
		t.Errorf("unexpected cd %+v", a.CD)
	}
	if len(a.Walls) != 6 {
		t.Fatalf("expected 6 walls, got %d", len(a.Walls))
	}

	east := a.Walls[0]
	if !nearVec(east.Center(), gamemath.Vec3{X: 3, Y: 1, Z: 0}) {
		t.Errorf("unexpected east wall center %+v", east.Center())
	}
	if !nearVec(east.Size(), gamemath.Vec3{X: 1, Y: 2, Z: 30}) {
		t.Errorf("unexpected east wall size %+v", east.Size())
	}
	west := a.Walls[1]
	if !near(west.Center().X, -3) {
		t.Errorf("unexpected west wall x %v", west.Center().X)
	}
}

func TestEmbeddedArenaKeepsPlayerOnFloor(t *testing.T) {
	a, err := NewArenaLoader(testOptions()).LoadArena("levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena failed: %v", err)
	}

	walls := gamemath.BoxList(a.Walls)
	pos := gamemath.Vec3{X: 8, Y: 0.5, Z: 0}
	for i := 0; i < 100; i++ {
		pos = gamemath.ResolveMove(walls, pos, gamemath.Vec3{X: 0.1}, 0.5)
	}

	floor := a.Floor()
	if pos.X+0.5 > floor.Max.X {
		t.Errorf("player left the floor at x=%v", pos.X)
	}
}

func TestArenaFallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="40" tilewidth="16" tileheight="16" infinite="0">
</map>`)},
	}

	a, err := NewArenaLoaderFS(fsys, testOptions()).LoadArena("empty.tmx")
	if err != nil {
		t.Fatalf("LoadArena failed: %v", err)
	}
	if len(a.Warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", a.Warnings)
	}
	if a.CD != testOptions().CD {
		t.Errorf("expected fallback cd, got %+v", a.CD)
	}
	if len(a.Walls) != 1 {
		t.Errorf("expected fallback wall, got %d", len(a.Walls))
	}
}

func TestLoadArenaMissing(t *testing.T) {
	if _, err := NewArenaLoader(testOptions()).LoadArena("levels/missing.tmx"); err == nil {
		t.Fatal("expected error for missing map")
	}
}

func TestMapRoundTrip(t *testing.T) {
	a := &Arena{Width: 20, Depth: 40, PixelsPerUnit: 16}
	px, py := a.ToMap(1, -10)
	if px != 176 || py != 160 {
		t.Errorf("expected (176,160), got (%v,%v)", px, py)
	}
	x, z := a.FromMap(px, py)
	if x != 1 || z != -10 {
		t.Errorf("expected (1,-10), got (%v,%v)", x, z)
	}
}
