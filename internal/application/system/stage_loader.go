package system

import (
	"github.com/younwookim/herocore/internal/domain/entity"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range []rune(row) {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			tiles[y][x] = tileFor(mapping)
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}

// tileFor maps a tile mapping to a surface; only ground and wall can be solid
func tileFor(m config.TileMappingConfig) entity.Tile {
	switch m.Type {
	case "ground":
		return entity.Tile{Type: entity.TileGround, Solid: m.Solid}
	case "wall":
		return entity.Tile{Type: entity.TileWall, Solid: m.Solid}
	default:
		return entity.Tile{Type: entity.TileEmpty}
	}
}
