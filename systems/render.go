package systems

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/automoto/cdwalk/components"
	cfg "github.com/automoto/cdwalk/config"
	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/automoto/cdwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridStep     = 2.0
	cdSegments   = 24
	walkBob      = 0.08
	noseLength   = 0.8
	wallLineSize = 1.5
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// whitePixel is the source for solid triangles.
	whitePixel = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}()

	// Reused between frames to avoid allocations
	drawables []drawable
	polygon   []gamemath.ScreenPoint
	vertices  []ebiten.Vertex
	indices   []uint16
)

// drawable is one depth-sorted item of the 3D scene.
type drawable struct {
	depth float64
	draw  func(screen *ebiten.Image, p gamemath.Projector)
}

// frameProjector builds the projection for the current camera and screen size.
func frameProjector(e *ecs.ECS, screen *ebiten.Image) (gamemath.Projector, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Projector{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return gamemath.NewProjector(camera.Eye, camera.Target, camera.FOV, camera.Near, w, h), true
}

// DrawWorld renders the sky, floor and every solid in the arena, far to near.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.SkyColor)

	proj, ok := frameProjector(e, screen)
	if !ok {
		return
	}

	if arenaEntry, ok := components.Arena.First(e.World); ok {
		floor := components.Arena.Get(arenaEntry).Arena.Floor()
		drawFloor(screen, proj, floor)
	}

	drawables = drawables[:0]
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		box := components.Wall.Get(entry).Box
		drawables = append(drawables, drawable{
			depth: proj.Depth(box.Center()),
			draw: func(screen *ebiten.Image, p gamemath.Projector) {
				strokeBox(screen, p, box, cfg.Arena.WallColor)
			},
		})
	})
	tags.CD.Each(e.World, func(entry *donburi.Entry) {
		cd := components.CD.Get(entry)
		pos, yaw := cd.Current(), cd.Trigger.Pose.Yaw
		drawables = append(drawables, drawable{
			depth: proj.Depth(pos),
			draw: func(screen *ebiten.Image, p gamemath.Projector) {
				drawCD(screen, p, pos, yaw, cd.Radius)
			},
		})
	})
	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		drawables = append(drawables, drawable{
			depth: proj.Depth(player.Position),
			draw: func(screen *ebiten.Image, p gamemath.Projector) {
				drawPlayer(screen, p, player)
			},
		})
	}

	slices.SortFunc(drawables, func(a, b drawable) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for _, d := range drawables {
		d.draw(screen, proj)
	}
}

func drawFloor(screen *ebiten.Image, p gamemath.Projector, floor gamemath.Box3) {
	y := floor.Max.Y
	fillPolygon(screen, p, []gamemath.Vec3{
		{X: floor.Min.X, Y: y, Z: floor.Min.Z},
		{X: floor.Max.X, Y: y, Z: floor.Min.Z},
		{X: floor.Max.X, Y: y, Z: floor.Max.Z},
		{X: floor.Min.X, Y: y, Z: floor.Max.Z},
	}, cfg.Arena.FloorColor)

	for x := floor.Min.X; x <= floor.Max.X; x += gridStep {
		strokeSegment(screen, p, gamemath.Vec3{X: x, Y: y, Z: floor.Min.Z}, gamemath.Vec3{X: x, Y: y, Z: floor.Max.Z}, 1, cfg.Arena.GridColor)
	}
	for z := floor.Min.Z; z <= floor.Max.Z; z += gridStep {
		strokeSegment(screen, p, gamemath.Vec3{X: floor.Min.X, Y: y, Z: z}, gamemath.Vec3{X: floor.Max.X, Y: y, Z: z}, 1, cfg.Arena.GridColor)
	}
}

func drawPlayer(screen *ebiten.Image, p gamemath.Projector, player *components.PlayerData) {
	pos := player.Position
	if player.Anim == components.AnimWalk {
		pos.Y += math.Abs(math.Sin(player.Walk.Phase()*2*math.Pi)) * walkBob
	}

	if player.Model != nil && drawBillboard(screen, p, player.Model, pos, player.HalfExtent*2) {
		return
	}

	fillBox(screen, p, gamemath.CubeAt(pos, player.HalfExtent), cfg.Player.Color)

	// Facing marker on the top face.
	top := pos.Add(gamemath.Vec3{Y: player.HalfExtent})
	nose := top.Add(gamemath.Vec3{X: math.Sin(player.Yaw), Z: math.Cos(player.Yaw)}.Scale(noseLength))
	strokeSegment(screen, p, top, nose, 2, cfg.White)
}

// drawBillboard draws img centred on pos, size world units tall. It reports false
// when pos is behind the camera.
func drawBillboard(screen *ebiten.Image, p gamemath.Projector, img *ebiten.Image, pos gamemath.Vec3, size float64) bool {
	x, y, ok := p.Project(pos)
	if !ok {
		return false
	}
	h := float64(img.Bounds().Dy())
	if h == 0 {
		return false
	}
	scale := p.Scale(pos) * size / h

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-float64(img.Bounds().Dx())/2, -h/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
	return true
}

func drawCD(screen *ebiten.Image, p gamemath.Projector, pos gamemath.Vec3, yaw, radius float64) {
	ring := make([]gamemath.Vec3, cdSegments)
	axis := gamemath.Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}
	for i := range ring {
		t := float64(i) / cdSegments * 2 * math.Pi
		ring[i] = pos.Add(axis.Scale(math.Cos(t) * radius)).Add(gamemath.Vec3{Y: math.Sin(t) * radius})
	}
	fillPolygon(screen, p, ring, cfg.CD.Color)
	for i := range ring {
		strokeSegment(screen, p, ring[i], ring[(i+1)%len(ring)], 1.5, cfg.White)
	}
}

// boxFaces indexes Corners() into the six quads of a box.
var boxFaces = [6][4]int{
	{0, 1, 2, 3}, // bottom
	{4, 5, 6, 7}, // top
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

func fillBox(screen *ebiten.Image, p gamemath.Projector, box gamemath.Box3, clr color.RGBA) {
	corners := box.Corners()
	order := []int{0, 1, 2, 3, 4, 5}
	faceDepth := func(f int) float64 {
		var c gamemath.Vec3
		for _, i := range boxFaces[f] {
			c = c.Add(corners[i])
		}
		return p.Depth(c.Scale(0.25))
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(faceDepth(b), faceDepth(a))
	})

	for _, f := range order {
		shade := clr
		if f != 1 {
			shade = darken(clr, 0.7+0.05*float64(f))
		}
		quad := boxFaces[f]
		fillPolygon(screen, p, []gamemath.Vec3{
			corners[quad[0]], corners[quad[1]], corners[quad[2]], corners[quad[3]],
		}, shade)
	}
}

func strokeBox(screen *ebiten.Image, p gamemath.Projector, box gamemath.Box3, clr color.Color) {
	corners := box.Corners()
	for _, edge := range gamemath.BoxEdges {
		strokeSegment(screen, p, corners[edge[0]], corners[edge[1]], wallLineSize, clr)
	}
}

func strokeSegment(screen *ebiten.Image, p gamemath.Projector, a, b gamemath.Vec3, width float32, clr color.Color) {
	x0, y0, x1, y1, ok := p.ProjectSegment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// fillPolygon fills a convex world-space polygon after clipping it to the near plane.
func fillPolygon(screen *ebiten.Image, p gamemath.Projector, pts []gamemath.Vec3, clr color.RGBA) {
	polygon = p.ProjectPolygon(polygon[:0], pts)
	if len(polygon) < 3 {
		return
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	vertices = vertices[:0]
	for _, pt := range polygon {
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	indices = indices[:0]
	for i := 1; i+1 < len(vertices); i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{})
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
