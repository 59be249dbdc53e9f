package gamemath

import (
	"math"
	"testing"
)

func TestNormalizeStickClampsToUnitDisc(t *testing.T) {
	cases := []struct {
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{0, 0, 0, 0},
		{20, 0, 0.5, 0},
		{0, 20, 0, -0.5},
		{400, 0, 1, 0},
		{0, -400, 0, 1},
	}

	for _, tc := range cases {
		_, _, s := NormalizeStick(tc.dx, tc.dy, 40)
		if math.Abs(s.X-tc.wantX) > 1e-9 || math.Abs(s.Y-tc.wantY) > 1e-9 {
			t.Errorf("offset (%v,%v): expected (%v,%v), got (%v,%v)", tc.dx, tc.dy, tc.wantX, tc.wantY, s.X, s.Y)
		}
		if !s.Active {
			t.Errorf("offset (%v,%v): expected an active stick", tc.dx, tc.dy)
		}
	}

	_, _, s := NormalizeStick(300, 300, 40)
	if l := math.Hypot(s.X, s.Y); math.Abs(l-1) > 1e-9 {
		t.Errorf("expected diagonal overshoot to clamp to length 1, got %f", l)
	}
}

func TestJoystickOwnership(t *testing.T) {
	j := NewJoystick(0, 0, 120)

	if j.Press(7, 500, 500) {
		t.Fatal("expected a press outside the region to be ignored")
	}
	if !j.Press(7, 60, 20) {
		t.Fatal("expected a press inside the region to claim the stick")
	}
	if math.Abs(j.Stick.Y-1) > 1e-9 {
		t.Errorf("expected full up deflection, got %f", j.Stick.Y)
	}
	if j.Press(8, 60, 60) {
		t.Error("expected a second pointer not to steal the stick")
	}

	j.Move(8, 100, 60)
	if math.Abs(j.Stick.X) > 1e-9 {
		t.Errorf("expected moves from a foreign pointer to be ignored, got x=%f", j.Stick.X)
	}
	j.Move(7, 100, 60)
	if math.Abs(j.Stick.X-1) > 1e-9 {
		t.Errorf("expected full right deflection, got %f", j.Stick.X)
	}

	j.Release(8)
	if !j.Owned() {
		t.Error("expected a foreign release to be ignored")
	}
	j.Release(7)
	if j.Owned() || j.Stick != (Stick{}) {
		t.Errorf("expected the stick to reset, got %+v", j.Stick)
	}
}

func TestApplyDeadzone(t *testing.T) {
	if v := ApplyDeadzone(0.2, 0.25); v != 0 {
		t.Errorf("expected 0 inside deadzone, got %f", v)
	}
	if v := ApplyDeadzone(-0.6, 0.25); v != -0.6 {
		t.Errorf("expected -0.6 outside deadzone, got %f", v)
	}
}
