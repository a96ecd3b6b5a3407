package entity

// TileType represents the surface classification of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGround
	TileWall
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage represents the current stage's tile data.
// Tile rows are stored top-down; pixel coordinates grow downward.
type Stage struct {
	Width    int // in tiles
	Height   int // in tiles
	TileSize int // in pixels
	Tiles    [][]Tile
	SpawnX   int // pixels
	SpawnY   int // pixels
}

// GetTile returns the tile at the given tile coordinates.
// Out-of-bounds tiles are solid walls so the hero never leaves the stage.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// GetTileAtPixel returns the tile at the given pixel coordinates
func (s *Stage) GetTileAtPixel(px, py int) Tile {
	return s.GetTile(floorDiv(px, s.TileSize), floorDiv(py, s.TileSize))
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py int) bool {
	return s.GetTileAtPixel(px, py).Solid
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() int {
	return s.Width * s.TileSize
}

// PixelHeight returns the stage height in pixels
func (s *Stage) PixelHeight() int {
	return s.Height * s.TileSize
}

// floorDiv rounds toward negative infinity so pixels left of the stage map
// to negative tiles instead of tile 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
