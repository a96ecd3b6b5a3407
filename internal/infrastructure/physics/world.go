// Package physics is the Chipmunk2D backend of the hero core.
//
// The world owns a cp.Space built from the stage tiles and a single dynamic
// body for the hero. The hero core never integrates position itself: it
// hands a velocity to World.SetVelocity, the body's velocity function
// applies it during the next Step and the solver corrects it against
// contacts before positions are integrated. World coordinates are pixels with Y pointing up; stage tiles
// are stored top-down, so rows are flipped when shapes are built.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/herocore/internal/domain/entity"
	"github.com/younwookim/herocore/internal/domain/motion"
)

// Collision categories used by shape filters
const (
	LayerGround uint = 1 << iota
	LayerWall
	LayerHero
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHero
)

// BodySize is the hero collision box in pixels
type BodySize struct {
	Width  float64
	Height float64
}

// World owns the Chipmunk space and static collision shapes
type World struct {
	stage *entity.Stage
	space *cp.Space
	size  BodySize

	hero      *cp.Body
	heroShape *cp.Shape
	intent    cp.Vector
}

// NewWorld creates a physics world for a stage and places the hero at spawn
func NewWorld(stage *entity.Stage, size BodySize) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	// Gravity is owned by the hero core, not the space.
	space.SetGravity(cp.Vector{})

	w := &World{stage: stage, space: space, size: size}
	w.buildStaticShapes()
	w.buildBounds()
	w.attachHero()
	return w
}

// Space returns the underlying Chipmunk space
func (w *World) Space() *cp.Space {
	return w.space
}

// HeroBody returns the hero's dynamic body
func (w *World) HeroBody() *cp.Body {
	return w.hero
}

// SetVelocity sets the hero velocity applied by the next step (entity.Body)
func (w *World) SetVelocity(v motion.Velocity) {
	w.intent = cp.Vector{X: v.X, Y: v.Y}
}

// updateHeroVelocity replaces cp's gravity integration with the intent.
// Contact impulses solved after it keep the hero out of solid shapes.
func (w *World) updateHeroVelocity(body *cp.Body, _ cp.Vector, _, _ float64) {
	body.SetVelocityVector(w.intent)
}

// Step advances the space by dt seconds
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// HeroPosition returns the hero center in world pixels (Y up)
func (w *World) HeroPosition() (x, y float64) {
	p := w.hero.Position()
	return p.X, p.Y
}

// HeroSize returns the hero collision box
func (w *World) HeroSize() BodySize {
	return w.size
}

// HeroBounds returns the hero box in world pixels
func (w *World) HeroBounds() cp.BB {
	return cp.NewBBForExtents(w.hero.Position(), w.size.Width/2, w.size.Height/2)
}

// Respawn moves the hero back to the stage spawn point at rest
func (w *World) Respawn() {
	w.intent = cp.Vector{}
	w.hero.SetPosition(w.spawnPoint())
	w.hero.SetVelocityVector(cp.Vector{})
}

// ToScreen converts a world point to stage pixel coordinates (Y down)
func (w *World) ToScreen(x, y float64) (float64, float64) {
	return x, float64(w.stage.PixelHeight()) - y
}

func (w *World) spawnPoint() cp.Vector {
	x, y := w.ToScreen(float64(w.stage.SpawnX), float64(w.stage.SpawnY))
	return cp.Vector{X: x, Y: y}
}

// layerFor maps a tile type to its collision category
func layerFor(t entity.TileType) uint {
	if t == entity.TileWall {
		return LayerWall
	}
	return LayerGround
}

func solidFilter(layer uint) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, layer, cp.ALL_CATEGORIES)
}

// buildStaticShapes merges contiguous solid tiles of the same type into
// rectangles so the space holds few static boxes instead of one per tile.
func (w *World) buildStaticShapes() {
	st := w.stage
	if st.Width == 0 || st.Height == 0 {
		return
	}

	ts := float64(st.TileSize)
	top := float64(st.PixelHeight())
	processed := make([]bool, st.Width*st.Height)

	mergeable := func(x, y int, kind entity.TileType) bool {
		tile := st.GetTile(x, y)
		return !processed[y*st.Width+x] && tile.Solid && tile.Type == kind
	}

	for y := 0; y < st.Height; y++ {
		for x := 0; x < st.Width; x++ {
			tile := st.GetTile(x, y)
			if processed[y*st.Width+x] || !tile.Solid {
				processed[y*st.Width+x] = true
				continue
			}

			w2 := 1
			for x+w2 < st.Width && mergeable(x+w2, y, tile.Type) {
				w2++
			}

			h := 1
		heightLoop:
			for y+h < st.Height {
				for xi := x; xi < x+w2; xi++ {
					if !mergeable(xi, y+h, tile.Type) {
						break heightLoop
					}
				}
				h++
			}

			bb := cp.BB{
				L: float64(x) * ts,
				R: float64(x+w2) * ts,
				T: top - float64(y)*ts,
				B: top - float64(y+h)*ts,
			}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0)
			shape.SetCollisionType(collisionTypeSolid)
			shape.SetFilter(solidFilter(layerFor(tile.Type)))
			w.space.AddShape(shape)

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w2; xx++ {
					processed[yy*st.Width+xx] = true
				}
			}
		}
	}
}

// buildBounds closes the stage: ground below, walls on the other sides
func (w *World) buildBounds() {
	worldW := float64(w.stage.PixelWidth())
	worldH := float64(w.stage.PixelHeight())
	if worldW <= 0 || worldH <= 0 {
		return
	}

	origin := cp.Vector{X: 0, Y: 0}
	bottomRight := cp.Vector{X: worldW, Y: 0}
	topLeft := cp.Vector{X: 0, Y: worldH}
	topRight := cp.Vector{X: worldW, Y: worldH}

	segments := []struct {
		a, b  cp.Vector
		layer uint
	}{
		{a: origin, b: bottomRight, layer: LayerGround},
		{a: topLeft, b: topRight, layer: LayerWall},
		{a: origin, b: topLeft, layer: LayerWall},
		{a: bottomRight, b: topRight, layer: LayerWall},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(solidFilter(seg.layer))
		w.space.AddShape(shape)
	}
}

func (w *World) attachHero() {
	// Infinite moment keeps the box upright.
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(w.spawnPoint())
	body.SetVelocityUpdateFunc(w.updateHeroVelocity)

	shape := cp.NewBox(body, w.size.Width, w.size.Height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeHero)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, LayerHero, cp.ALL_CATEGORIES))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	w.hero = body
	w.heroShape = shape
}
