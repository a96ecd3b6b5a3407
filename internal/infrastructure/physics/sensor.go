package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/herocore/internal/domain/entity"
)

// ErrNoAnchors is returned when a sensor side has no ray anchor
var ErrNoAnchors = errors.New("sensor has no anchors")

// Anchor is a ray origin relative to the hero center (world pixels, Y up)
type Anchor struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Rays configures the proximity sensors.
// Each side casts one segment per anchor, Length pixels outward; the side
// reports contact when any of its segments hits a solid surface.
type Rays struct {
	Ground []Anchor
	Left   []Anchor
	Right  []Anchor
	Length float64
}

// Validate checks that every side has a ray to cast
func (p Rays) Validate() error {
	if len(p.Ground) == 0 {
		return fmt.Errorf("%w: ground", ErrNoAnchors)
	}
	if len(p.Left) == 0 {
		return fmt.Errorf("%w: wall left", ErrNoAnchors)
	}
	if len(p.Right) == 0 {
		return fmt.Errorf("%w: wall right", ErrNoAnchors)
	}
	if p.Length <= 0 {
		return fmt.Errorf("ray length must be positive, got %v", p.Length)
	}
	return nil
}

// DefaultRays places two anchors per side, inset from the box corners.
// Anchors sit inside the box so a ray reaches the surface the box rests on.
func DefaultRays(size BodySize) Rays {
	hw, hh := size.Width/2, size.Height/2
	const inset = 1.0
	return Rays{
		Ground: []Anchor{
			{X: -hw + inset, Y: -hh + inset},
			{X: hw - inset, Y: -hh + inset},
		},
		Left: []Anchor{
			{X: -hw + inset, Y: -hh + inset*2},
			{X: -hw + inset, Y: hh - inset},
		},
		Right: []Anchor{
			{X: hw - inset, Y: -hh + inset*2},
			{X: hw - inset, Y: hh - inset},
		},
		Length: 2 * inset,
	}
}

var (
	dirDown  = cp.Vector{X: 0, Y: -1}
	dirLeft  = cp.Vector{X: -1, Y: 0}
	dirRight = cp.Vector{X: 1, Y: 0}
)

// SpaceSensor answers contact queries with segment casts into a cp.Space.
// The hero's own shape is excluded by category.
type SpaceSensor struct {
	space  *cp.Space
	body   *cp.Body
	rays   Rays
	filter cp.ShapeFilter
}

var _ entity.Sensors = (*SpaceSensor)(nil)

// NewSpaceSensor creates a sensor set following the world's hero body
func NewSpaceSensor(w *World, rays Rays) (*SpaceSensor, error) {
	if err := rays.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create space sensor: %w", err)
	}
	return &SpaceSensor{
		space:  w.Space(),
		body:   w.HeroBody(),
		rays:   rays,
		filter: cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, LayerGround|LayerWall),
	}, nil
}

// DetectGroundNearBy casts the ground rays downward
func (s *SpaceSensor) DetectGroundNearBy() bool {
	return s.cast(s.rays.Ground, dirDown)
}

// DetectWallNearByLeft casts the left rays
func (s *SpaceSensor) DetectWallNearByLeft() bool {
	return s.cast(s.rays.Left, dirLeft)
}

// DetectWallNearByRight casts the right rays
func (s *SpaceSensor) DetectWallNearByRight() bool {
	return s.cast(s.rays.Right, dirRight)
}

func (s *SpaceSensor) cast(anchors []Anchor, dir cp.Vector) bool {
	pos := s.body.Position()
	for _, a := range anchors {
		start := pos.Add(cp.Vector{X: a.X, Y: a.Y})
		end := start.Add(dir.Mult(s.rays.Length))
		if hit := s.space.SegmentQueryFirst(start, end, 0, s.filter); hit.Shape != nil {
			return true
		}
	}
	return false
}
