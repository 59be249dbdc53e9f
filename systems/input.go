package systems

import (
	"math"
	"slices"

	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// mousePointer is the pointer id used for the mouse. Touch ids are never negative.
const mousePointer = -1

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
	newTouches []ebiten.TouchID
)

type pointerKind int

const (
	pointerPress pointerKind = iota
	pointerMove
	pointerRelease
)

type pointerEvent struct {
	kind pointerKind
	id   int
	x, y float64
}

// UpdateInput polls raw input into the Input and Sticks components.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.PadLeft, input.PadRight = readGamepadSticks(gamepadIDs)
	if input.PadLeft.Active || input.PadRight.Active {
		gamepadUsed = true
	}

	sticks := GetOrCreateSticks(ecs)
	events := pollPointers(sticks)
	for _, ev := range events {
		handlePointer(sticks, ev)
	}

	switch {
	case len(events) > 0:
		input.LastInputMethod = components.InputPointer
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollPointers turns this tick's mouse and touch state into pointer events.
func pollPointers(sticks *components.SticksData) []pointerEvent {
	var events []pointerEvent

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{kind: pointerPress, id: mousePointer, x: float64(mx), y: float64(my)})
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{kind: pointerMove, id: mousePointer, x: float64(mx), y: float64(my)})
	}

	newTouches = inpututil.AppendJustPressedTouchIDs(newTouches[:0])
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		kind := pointerMove
		if slices.Contains(newTouches, id) {
			kind = pointerPress
		}
		events = append(events, pointerEvent{kind: kind, id: int(id), x: float64(x), y: float64(y)})
	}

	// A pointer that owned a stick and is no longer down was released.
	for _, owner := range []int{sticks.Left.Pointer, sticks.Right.Pointer} {
		var down bool
		switch {
		case owner == gamemath.NoPointer:
			continue
		case owner == mousePointer:
			down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		default:
			down = slices.Contains(touchIDs, ebiten.TouchID(owner))
		}
		if !down {
			events = append(events, pointerEvent{kind: pointerRelease, id: owner})
		}
	}

	return events
}

// handlePointer routes one pointer event to the sticks. A pointer owns at most one stick.
func handlePointer(sticks *components.SticksData, ev pointerEvent) {
	switch ev.kind {
	case pointerPress:
		if sticks.Left.Pointer == ev.id || sticks.Right.Pointer == ev.id {
			return
		}
		if !sticks.Left.Press(ev.id, ev.x, ev.y) {
			sticks.Right.Press(ev.id, ev.x, ev.y)
		}
	case pointerMove:
		sticks.Left.Move(ev.id, ev.x, ev.y)
		sticks.Right.Move(ev.id, ev.x, ev.y)
	case pointerRelease:
		sticks.Left.Release(ev.id)
		sticks.Right.Release(ev.id)
	}
}

// readGamepadSticks returns the first connected gamepad's sticks after the dead zone.
func readGamepadSticks(gamepads []ebiten.GamepadID) (left, right gamemath.Stick) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		left = padStick(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		right = padStick(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		)
		if left.Active || right.Active {
			return left, right
		}
	}
	return gamemath.Stick{}, gamemath.Stick{}
}

// padStick applies the dead zone and flips the gamepad's downward Y axis.
func padStick(x, y float64) gamemath.Stick {
	x = gamemath.ApplyDeadzone(x, cfg.Joystick.Deadzone)
	y = gamemath.ApplyDeadzone(y, cfg.Joystick.Deadzone)
	if x == 0 && y == 0 {
		return gamemath.Stick{}
	}
	return gamemath.Stick{X: x, Y: -y, Active: true}
}

// keyboardSticks maps the movement and turn actions to stick values.
func keyboardSticks(input *components.InputData) (left, right gamemath.Stick) {
	axis := func(neg, pos cfg.ActionID) float64 {
		var v float64
		if input.Current[neg] {
			v--
		}
		if input.Current[pos] {
			v++
		}
		return v
	}

	lx := axis(cfg.ActionMoveLeft, cfg.ActionMoveRight)
	ly := axis(cfg.ActionMoveBack, cfg.ActionMoveForward)
	if lx != 0 || ly != 0 {
		n := math.Hypot(lx, ly)
		left = gamemath.Stick{X: lx / n, Y: ly / n, Active: true}
	}

	if rx := axis(cfg.ActionTurnLeft, cfg.ActionTurnRight); rx != 0 {
		right = gamemath.Stick{X: rx, Active: true}
	}
	return left, right
}

// effectiveSticks picks, per stick, a pointer that owns it, then the gamepad, then the keyboard.
func effectiveSticks(sticks *components.SticksData, input *components.InputData) (left, right gamemath.Stick) {
	keyLeft, keyRight := keyboardSticks(input)

	pick := func(j *gamemath.Joystick, pad, key gamemath.Stick) gamemath.Stick {
		switch {
		case j.Owned():
			return j.Stick
		case pad.Active:
			return pad
		default:
			return key
		}
	}
	return pick(&sticks.Left, input.PadLeft, keyLeft), pick(&sticks.Right, input.PadRight, keyRight)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetOrCreateSticks returns the singleton Sticks component, laid out in the bottom corners.
func GetOrCreateSticks(ecs *ecs.ECS) *components.SticksData {
	entry, ok := components.Sticks.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Sticks))
		components.Sticks.SetValue(entry, stickLayout(float64(cfg.C.Width), float64(cfg.C.Height)))
	}
	return components.Sticks.Get(entry)
}

func stickLayout(width, height float64) components.SticksData {
	size, margin := cfg.Joystick.Size, cfg.Joystick.Margin
	top := height - margin - size
	return components.SticksData{
		Left:  gamemath.NewJoystick(margin, top, size),
		Right: gamemath.NewJoystick(width-margin-size, top, size),
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
