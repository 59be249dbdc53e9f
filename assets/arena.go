package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/cdwalk/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// Object group names read from the arena map.
const (
	GroupWalls       = "Walls"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupCD          = "CD"
)

// ArenaOptions maps the flat Tiled map into world space.
type ArenaOptions struct {
	PixelsPerUnit float64
	WallHeight    float64 // used when a wall has no "height" property

	// Fallbacks for missing objects
	Spawn gamemath.Vec3
	CD    gamemath.Vec3
	Walls []gamemath.Box3
}

// Arena is the static layout of a session. Map X is world X, map Y is world Z,
// and the map origin sits at the floor's min corner.
type Arena struct {
	Name          string
	Width, Depth  float64 // floor size in world units
	PixelsPerUnit float64
	Walls         []gamemath.Box3
	Spawn         gamemath.Vec3
	CD            gamemath.Vec3

	// MapWidth and MapHeight are the map size in pixels, used to size the broad phase.
	MapWidth, MapHeight int

	// Warnings lists the objects that fell back to defaults.
	Warnings []string
}

type ArenaLoader struct {
	fsys fs.FS
	opts ArenaOptions
}

// NewArenaLoader reads maps from the embedded levels directory.
func NewArenaLoader(opts ArenaOptions) *ArenaLoader {
	return &ArenaLoader{fsys: assetFS, opts: opts}
}

// NewArenaLoaderFS reads maps from fsys.
func NewArenaLoaderFS(fsys fs.FS, opts ArenaOptions) *ArenaLoader {
	return &ArenaLoader{fsys: fsys, opts: opts}
}

func (l *ArenaLoader) LoadArena(path string) (*Arena, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("loading arena %s: %w", path, err)
	}
	a := BuildArena(m, l.opts)
	a.Name = path
	return a, nil
}

// BuildArena converts a parsed map into world space.
func BuildArena(m *tiled.Map, opts ArenaOptions) *Arena {
	ppu := opts.PixelsPerUnit
	a := &Arena{
		Width:         float64(m.Width*m.TileWidth) / ppu,
		Depth:         float64(m.Height*m.TileHeight) / ppu,
		PixelsPerUnit: ppu,
		MapWidth:      m.Width * m.TileWidth,
		MapHeight:     m.Height * m.TileHeight,
	}

	var haveSpawn, haveCD bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				height := o.Properties.GetFloat("height")
				if height == 0 {
					height = opts.WallHeight
				}
				base := o.Properties.GetFloat("y")
				minX, minZ := a.FromMap(o.X, o.Y)
				maxX, maxZ := a.FromMap(o.X+o.Width, o.Y+o.Height)
				a.Walls = append(a.Walls, gamemath.Box3{
					Min: gamemath.Vec3{X: minX, Y: base, Z: minZ},
					Max: gamemath.Vec3{X: maxX, Y: base + height, Z: maxZ},
				})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, z := a.FromMap(o.X, o.Y)
			a.Spawn = gamemath.Vec3{X: x, Y: o.Properties.GetFloat("y"), Z: z}
			haveSpawn = true
		case GroupCD:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, z := a.FromMap(o.X, o.Y)
			a.CD = gamemath.Vec3{X: x, Y: o.Properties.GetFloat("y"), Z: z}
			haveCD = true
		}
	}

	if !haveSpawn {
		a.Spawn = opts.Spawn
		a.Warnings = append(a.Warnings, "no player spawn in map")
	}
	if !haveCD {
		a.CD = opts.CD
		a.Warnings = append(a.Warnings, "no cd in map")
	}
	if len(a.Walls) == 0 && len(opts.Walls) > 0 {
		a.Walls = append(a.Walls, opts.Walls...)
		a.Warnings = append(a.Warnings, "no walls in map")
	}
	return a
}

// FromMap converts map pixels to world X and Z.
func (a *Arena) FromMap(px, py float64) (x, z float64) {
	return px/a.PixelsPerUnit - a.Width/2, py/a.PixelsPerUnit - a.Depth/2
}

// ToMap converts world X and Z to map pixels.
func (a *Arena) ToMap(x, z float64) (px, py float64) {
	return (x + a.Width/2) * a.PixelsPerUnit, (z + a.Depth/2) * a.PixelsPerUnit
}

// Floor returns the floor rectangle as a flat box at y=0.
func (a *Arena) Floor() gamemath.Box3 {
	return gamemath.Box3{
		Min: gamemath.Vec3{X: -a.Width / 2, Z: -a.Depth / 2},
		Max: gamemath.Vec3{X: a.Width / 2, Z: a.Depth / 2},
	}
}
