package physics

import (
	"fmt"
	"math"

	"github.com/younwookim/herocore/internal/domain/entity"
)

// Locator reports the hero center in world pixels (Y up)
type Locator interface {
	HeroPosition() (x, y float64)
}

// TileSensor answers contact queries by sampling the stage grid along each
// ray. It needs no physics space, which keeps it usable for headless runs
// and for stages small enough not to warrant one.
type TileSensor struct {
	stage  *entity.Stage
	locate Locator
	rays   Rays
}

var _ entity.Sensors = (*TileSensor)(nil)

// NewTileSensor creates a grid-sampling sensor set
func NewTileSensor(stage *entity.Stage, locate Locator, rays Rays) (*TileSensor, error) {
	if stage == nil {
		return nil, fmt.Errorf("failed to create tile sensor: nil stage")
	}
	if locate == nil {
		return nil, fmt.Errorf("failed to create tile sensor: nil locator")
	}
	if err := rays.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create tile sensor: %w", err)
	}
	return &TileSensor{stage: stage, locate: locate, rays: rays}, nil
}

// DetectGroundNearBy samples below the ground anchors
func (s *TileSensor) DetectGroundNearBy() bool {
	return s.cast(s.rays.Ground, 0, -1)
}

// DetectWallNearByLeft samples left of the left anchors
func (s *TileSensor) DetectWallNearByLeft() bool {
	return s.cast(s.rays.Left, -1, 0)
}

// DetectWallNearByRight samples right of the right anchors
func (s *TileSensor) DetectWallNearByRight() bool {
	return s.cast(s.rays.Right, 1, 0)
}

func (s *TileSensor) cast(anchors []Anchor, dx, dy float64) bool {
	x, y := s.locate.HeroPosition()
	for _, a := range anchors {
		sx, sy := x+a.X, y+a.Y
		// One sample per pixel, end point included.
		steps := int(math.Ceil(s.rays.Length))
		for i := 0; i <= steps; i++ {
			d := math.Min(float64(i), s.rays.Length)
			if s.solidAt(sx+dx*d, sy+dy*d) {
				return true
			}
		}
	}
	return false
}

// solidAt tests a world point against ground and wall tiles
func (s *TileSensor) solidAt(wx, wy float64) bool {
	px := int(math.Floor(wx))
	py := int(math.Floor(float64(s.stage.PixelHeight()) - wy))
	tile := s.stage.GetTileAtPixel(px, py)
	return tile.Solid && (tile.Type == entity.TileGround || tile.Type == entity.TileWall)
}
