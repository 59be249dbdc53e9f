package systems

import (
	"github.com/automoto/cdwalk/assets"
	"github.com/automoto/cdwalk/components"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/systems/factory"
	"github.com/automoto/cdwalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// broadPhasePad widens the query box by a pixel on every side. resolv trims the last pixel
// of a body when it picks cells, which would hide sub-pixel overlaps at cell borders.
const broadPhasePad = 1.0

// spaceObstacles answers overlap queries with a resolv cell lookup followed by the
// exact box test.
type spaceObstacles struct {
	arena *assets.Arena
	query *resolv.Object
}

func newSpaceObstacles(arena *assets.Arena, query *resolv.Object) *spaceObstacles {
	return &spaceObstacles{arena: arena, query: query}
}

func (s *spaceObstacles) Overlapping(box gamemath.Box3) []gamemath.Box3 {
	x, y, w, h := factory.Footprint(s.arena, box)
	s.query.X = x - broadPhasePad
	s.query.Y = y - broadPhasePad
	s.query.W = w + 2*broadPhasePad
	s.query.H = h + 2*broadPhasePad
	s.query.Update()

	check := s.query.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var hits []gamemath.Box3
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		wall, ok := obj.Data.(*donburi.Entry)
		if !ok || !wall.HasComponent(components.Wall) {
			continue
		}
		if b := components.Wall.Get(wall).Box; b.Overlaps(box) {
			hits = append(hits, b)
		}
	}
	return hits
}

// syncFootprint moves a body to the footprint of box.
func syncFootprint(arena *assets.Arena, obj *resolv.Object, box gamemath.Box3) {
	obj.X, obj.Y, obj.W, obj.H = factory.Footprint(arena, box)
	obj.Update()
}
