package gamemath

import "math"

// NoPointer marks a joystick that no pointer currently owns.
const NoPointer = math.MinInt

// Joystick is an on-screen analog stick: a square region with a centred thumb.
// Pointers are mouse (any fixed id) or touches.
type Joystick struct {
	Left, Top, Size float64 // screen region in pixels

	Stick   Stick
	ThumbX  float64 // thumb offset from the centre in pixels
	ThumbY  float64
	Pointer int
}

// NewJoystick returns a released joystick covering the given square.
func NewJoystick(left, top, size float64) Joystick {
	return Joystick{Left: left, Top: top, Size: size, Pointer: NoPointer}
}

// Contains reports whether a screen point lies inside the joystick region.
func (j *Joystick) Contains(x, y float64) bool {
	return x >= j.Left && x <= j.Left+j.Size && y >= j.Top && y <= j.Top+j.Size
}

// Owned reports whether a pointer currently drives the joystick.
func (j *Joystick) Owned() bool {
	return j.Pointer != NoPointer
}

// Press claims the joystick for pointer if it is free and the press is inside it.
func (j *Joystick) Press(pointer int, x, y float64) bool {
	if j.Owned() || !j.Contains(x, y) {
		return false
	}
	j.Pointer = pointer
	j.track(x, y)
	return true
}

// Move updates the stick if pointer owns it.
func (j *Joystick) Move(pointer int, x, y float64) {
	if j.Pointer != pointer {
		return
	}
	j.track(x, y)
}

// Release frees the joystick if pointer owns it.
func (j *Joystick) Release(pointer int) {
	if j.Pointer != pointer {
		return
	}
	j.Reset()
}

// Reset returns the stick to rest.
func (j *Joystick) Reset() {
	j.Pointer = NoPointer
	j.Stick = Stick{}
	j.ThumbX, j.ThumbY = 0, 0
}

// MaxDistance is how far the thumb may travel from the centre.
func (j *Joystick) MaxDistance() float64 {
	return j.Size / 3
}

func (j *Joystick) track(x, y float64) {
	j.ThumbX, j.ThumbY, j.Stick = NormalizeStick(x-j.Left-j.Size/2, y-j.Top-j.Size/2, j.MaxDistance())
}

// NormalizeStick clamps a thumb offset to maxDist and converts it to stick axes.
// Screen Y grows downwards, stick Y grows upwards.
func NormalizeStick(dx, dy, maxDist float64) (thumbX, thumbY float64, s Stick) {
	if maxDist <= 0 {
		return 0, 0, Stick{Active: true}
	}
	dist := math.Min(math.Hypot(dx, dy), maxDist)
	angle := math.Atan2(dy, dx)

	thumbX = dist * math.Cos(angle)
	thumbY = dist * math.Sin(angle)

	return thumbX, thumbY, Stick{
		X:      thumbX / maxDist,
		Y:      -thumbY / maxDist,
		Active: true,
	}
}

// ApplyDeadzone zeroes an axis value whose magnitude is under deadzone.
func ApplyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}
