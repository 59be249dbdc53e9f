package gamemath

import (
	"math"
	"testing"
)

var testMove = MoveParams{Speed: 0.1, RotationSpeed: 0.03, HalfExtent: 0.5}

func TestIntegrateIdleSticksDoNothing(t *testing.T) {
	pos := Vec3{1, 0.5, -2}
	sticks := []Stick{
		{},
		{X: 0, Y: 0, Active: true},
		{X: 0.8, Y: 0.3, Active: false},
	}

	for _, s := range sticks {
		res := Integrate(arenaWalls(), pos, 0.4, s, Stick{}, testMove)
		if res.Position != pos {
			t.Errorf("stick %+v: expected position %v, got %v", s, pos, res.Position)
		}
		if res.CameraAngle != 0.4 {
			t.Errorf("stick %+v: expected camera angle unchanged, got %f", s, res.CameraAngle)
		}
	}
}

func TestIntegrateForwardFollowsCamera(t *testing.T) {
	pos := Vec3{0, 0.5, 0}

	// Camera behind the player on +Z looks towards -Z.
	res := Integrate(BoxList{}, pos, 0, Stick{Y: 1, Active: true}, Stick{}, testMove)
	if !approxEqual(res.Position, Vec3{0, 0.5, -0.1}) {
		t.Errorf("expected to walk towards -Z, got %v", res.Position)
	}

	// Orbit a quarter turn: camera on +X looks towards -X.
	res = Integrate(BoxList{}, pos, math.Pi/2, Stick{Y: 1, Active: true}, Stick{}, testMove)
	if !approxEqual(res.Position, Vec3{-0.1, 0.5, 0}) {
		t.Errorf("expected to walk towards -X, got %v", res.Position)
	}
}

func TestIntegrateStrafeRight(t *testing.T) {
	pos := Vec3{0, 0.5, 0}
	res := Integrate(BoxList{}, pos, 0, Stick{X: 1, Active: true}, Stick{}, testMove)
	if !approxEqual(res.Position, Vec3{0.1, 0.5, 0}) {
		t.Errorf("expected to strafe towards +X, got %v", res.Position)
	}
}

func TestIntegrateRightStickOrbits(t *testing.T) {
	res := Integrate(BoxList{}, Vec3{}, 0, Stick{}, Stick{X: 0.5, Active: true}, testMove)
	want := 0.5 * 0.03 * 2
	if math.Abs(res.CameraAngle-want) > 1e-12 {
		t.Errorf("expected camera angle %f, got %f", want, res.CameraAngle)
	}
}

func TestIntegrateStopsAtWall(t *testing.T) {
	pos := Vec3{1.95, 0.5, 0}
	// Camera at +Z, stick right pushes towards +X into the east wall.
	res := Integrate(arenaWalls(), pos, 0, Stick{X: 1, Active: true}, Stick{}, testMove)
	if res.Position != pos {
		t.Errorf("expected the wall to stop the player at %v, got %v", pos, res.Position)
	}
}

func TestFacingYaw(t *testing.T) {
	if yaw := FacingYaw(Vec3{Z: 1}); yaw != 0 {
		t.Errorf("expected yaw 0 facing +Z, got %f", yaw)
	}
	if yaw := FacingYaw(Vec3{X: 1}); math.Abs(yaw-math.Pi/2) > 1e-12 {
		t.Errorf("expected yaw pi/2 facing +X, got %f", yaw)
	}
}
