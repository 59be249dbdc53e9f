package gamemath

// Obstacles is a source of static wall boxes.
type Obstacles interface {
	// Overlapping returns every wall box that overlaps box.
	Overlapping(box Box3) []Box3
}

// BoxList checks every box on each query.
type BoxList []Box3

func (l BoxList) Overlapping(box Box3) []Box3 {
	var hits []Box3
	for _, b := range l {
		if box.Overlaps(b) {
			hits = append(hits, b)
		}
	}
	return hits
}

// Contact is the result of testing a player box at a position.
type Contact struct {
	Hit   bool
	Slide Vec3 // unit direction towards the walls hit, or zero
}

// CheckCollision tests a cube of halfExtent centred on pos against the obstacles.
// Each wall contributes the normalised direction to its centre with the weaker horizontal
// axis zeroed. Height is kept, so opposing walls can cancel out horizontally and leave
// Slide pointing straight up or down, which gives no tangent.
func CheckCollision(obstacles Obstacles, pos Vec3, halfExtent float64) Contact {
	hits := obstacles.Overlapping(CubeAt(pos, halfExtent))
	if len(hits) == 0 {
		return Contact{}
	}

	var slide Vec3
	for _, wall := range hits {
		toWall := wall.Center().Sub(pos)
		if abs(toWall.X) > abs(toWall.Z) {
			toWall.Z = 0
		} else {
			toWall.X = 0
		}
		slide = slide.Add(toWall.Normalize())
	}

	return Contact{Hit: true, Slide: slide.Normalize()}
}

// ResolveMove returns where a player at pos ends up after attempting move.
//
// A free move is taken as is. A blocked move is retried along X alone and then Z alone.
// When both single-axis moves are blocked the move is projected onto the wall tangent
// and taken if that position is free. Otherwise the player stays put.
func ResolveMove(obstacles Obstacles, pos, move Vec3, halfExtent float64) Vec3 {
	target := pos.Add(move)
	contact := CheckCollision(obstacles, target, halfExtent)
	if !contact.Hit {
		return target
	}

	result := pos
	blockedX, blockedZ := true, true

	tryX := result
	tryX.X = target.X
	if !CheckCollision(obstacles, tryX, halfExtent).Hit {
		result = tryX
		blockedX = false
	}

	tryZ := result
	tryZ.Z = target.Z
	if !CheckCollision(obstacles, tryZ, halfExtent).Hit {
		result = tryZ
		blockedZ = false
	}

	if !blockedX || !blockedZ || move.Length() == 0 {
		return result
	}

	tangent := contact.Slide.Cross(Up).Normalize()
	if tangent.IsZero() {
		return result
	}

	slid := result.Add(tangent.Scale(move.Dot(tangent)))
	if !CheckCollision(obstacles, slid, halfExtent).Hit {
		return slid
	}
	return result
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
