package gamemath

import "math"

// Stick is the normalised state of one virtual analog stick.
type Stick struct {
	X, Y   float64 // each in [-1, 1], Y up
	Active bool
}

// MoveParams holds the tunables of the movement integrator.
type MoveParams struct {
	Speed         float64 // world units per tick at full deflection
	RotationSpeed float64 // radians per tick, doubled for the orbit stick
	HalfExtent    float64 // player box half size
}

// MoveResult is the outcome of a single integration step.
type MoveResult struct {
	Position    Vec3
	CameraAngle float64
	Move        Vec3 // requested move before collision
}

// CameraForward returns the horizontal direction an orbit camera at angle looks in.
// The camera sits at (sin a, cos a) around its target, so it looks back along that.
func CameraForward(angle float64) Vec3 {
	return Vec3{X: -math.Sin(angle), Z: -math.Cos(angle)}
}

// StickMove maps the movement stick onto the camera's horizontal basis.
func StickMove(stick Stick, cameraAngle, speed float64) Vec3 {
	if !stick.Active {
		return Vec3{}
	}
	forward := CameraForward(cameraAngle)
	left := Up.Cross(forward).Normalize()

	move := forward.Scale(stick.Y * speed)
	return move.Add(left.Scale(-stick.X * speed))
}

// Integrate advances the player by one tick: the left stick moves the player relative to
// the camera, the right stick orbits the camera, and walls resolve the move.
func Integrate(obstacles Obstacles, pos Vec3, cameraAngle float64, left, right Stick, p MoveParams) MoveResult {
	move := StickMove(left, cameraAngle, p.Speed)

	if right.Active {
		cameraAngle += right.X * p.RotationSpeed * 2
	}

	next := pos
	if !move.IsZero() {
		next = ResolveMove(obstacles, pos, move, p.HalfExtent)
	}

	return MoveResult{
		Position:    next,
		CameraAngle: cameraAngle,
		Move:        move,
	}
}

// FacingYaw returns the yaw that points a model along a horizontal direction.
func FacingYaw(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}
