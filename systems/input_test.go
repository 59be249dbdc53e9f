package systems

import (
	"math"
	"testing"

	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
)

func testSticks() *components.SticksData {
	s := stickLayout(960, 540)
	return &s
}

func centre(j *gamemath.Joystick) (float64, float64) {
	return j.Left + j.Size/2, j.Top + j.Size/2
}

func TestPointerClaimsOneStick(t *testing.T) {
	sticks := testSticks()
	lx, ly := centre(&sticks.Left)

	handlePointer(sticks, pointerEvent{kind: pointerPress, id: 3, x: lx, y: ly})
	if sticks.Left.Pointer != 3 {
		t.Fatalf("expected touch 3 to own the left stick, got %d", sticks.Left.Pointer)
	}

	// The same pointer pressing again inside the right region is ignored.
	rx, ry := centre(&sticks.Right)
	handlePointer(sticks, pointerEvent{kind: pointerPress, id: 3, x: rx, y: ry})
	if sticks.Right.Owned() {
		t.Error("a pointer must not own both sticks")
	}

	handlePointer(sticks, pointerEvent{kind: pointerPress, id: mousePointer, x: rx, y: ry})
	if sticks.Right.Pointer != mousePointer {
		t.Errorf("expected the mouse to own the right stick, got %d", sticks.Right.Pointer)
	}
}

func TestPointerMoveAndRelease(t *testing.T) {
	sticks := testSticks()
	lx, ly := centre(&sticks.Left)
	maxDist := sticks.Left.MaxDistance()

	handlePointer(sticks, pointerEvent{kind: pointerPress, id: 1, x: lx, y: ly})
	handlePointer(sticks, pointerEvent{kind: pointerMove, id: 1, x: lx, y: ly - 2*maxDist})

	s := sticks.Left.Stick
	if !s.Active || math.Abs(s.X) > 1e-9 || math.Abs(s.Y-1) > 1e-9 {
		t.Errorf("expected dragging up past the rim to give (0, 1), got %+v", s)
	}

	// Moves of another pointer do not disturb the owner.
	handlePointer(sticks, pointerEvent{kind: pointerMove, id: 2, x: lx + maxDist, y: ly})
	if sticks.Left.Stick != s {
		t.Errorf("foreign pointer changed the stick to %+v", sticks.Left.Stick)
	}

	handlePointer(sticks, pointerEvent{kind: pointerRelease, id: 1})
	if sticks.Left.Owned() || sticks.Left.Stick != (gamemath.Stick{}) {
		t.Errorf("expected a released, centred stick, got %+v", sticks.Left)
	}
}

func TestPressOutsideRegions(t *testing.T) {
	sticks := testSticks()
	handlePointer(sticks, pointerEvent{kind: pointerPress, id: 0, x: 480, y: 10})
	if sticks.Left.Owned() || sticks.Right.Owned() {
		t.Error("a press outside both regions must not claim a stick")
	}
}

func TestKeyboardSticks(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveForward] = true
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionTurnLeft] = true

	left, right := keyboardSticks(input)
	want := 1 / math.Sqrt2
	if !left.Active || math.Abs(left.X-want) > 1e-9 || math.Abs(left.Y-want) > 1e-9 {
		t.Errorf("expected a normalised diagonal, got %+v", left)
	}
	if !right.Active || right.X != -1 || right.Y != 0 {
		t.Errorf("expected a full left turn, got %+v", right)
	}

	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveRight] = true
	left, _ = keyboardSticks(input)
	if left.Active {
		t.Errorf("opposing keys should cancel, got %+v", left)
	}
}

func TestEffectiveSticksPriority(t *testing.T) {
	sticks := testSticks()
	input := &components.InputData{}
	input.Current[cfg.ActionMoveForward] = true

	left, _ := effectiveSticks(sticks, input)
	if left.Y != 1 {
		t.Fatalf("expected keyboard input, got %+v", left)
	}

	input.PadLeft = gamemath.Stick{X: 0.5, Active: true}
	left, _ = effectiveSticks(sticks, input)
	if left.X != 0.5 || left.Y != 0 {
		t.Fatalf("expected gamepad to win over keyboard, got %+v", left)
	}

	lx, ly := centre(&sticks.Left)
	handlePointer(sticks, pointerEvent{kind: pointerPress, id: 7, x: lx, y: ly})
	left, _ = effectiveSticks(sticks, input)
	if !left.Active || left.X != 0 || left.Y != 0 {
		t.Fatalf("expected the held pointer at rest to win, got %+v", left)
	}
}

func TestPadStickDeadzone(t *testing.T) {
	if s := padStick(0.1, -0.2); s.Active {
		t.Errorf("expected a stick inside the dead zone to be inactive, got %+v", s)
	}
	if s := padStick(0, -1); !s.Active || s.Y <= 0 {
		t.Errorf("expected pushing the pad up to give positive Y, got %+v", s)
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionPause] = true
	if a := GetAction(input, cfg.ActionPause); !a.JustPressed || !a.Pressed {
		t.Errorf("expected just pressed, got %+v", a)
	}

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	if a := GetAction(input, cfg.ActionPause); !a.JustReleased || a.Pressed {
		t.Errorf("expected just released, got %+v", a)
	}
}
