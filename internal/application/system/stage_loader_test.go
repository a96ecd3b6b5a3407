package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herocore/internal/domain/entity"
	"github.com/younwookim/herocore/internal/infrastructure/config"
)

// stageConfig builds a one-tile-per-rune stage with 16px tiles
func stageConfig(rows []string, mapping map[string]config.TileMappingConfig) *config.StageConfig {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return &config.StageConfig{
		ID:          "test",
		Size:        config.StageSizeConfig{Width: width * 16, Height: len(rows) * 16, TileSize: 16},
		PlayerSpawn: config.PositionConfig{X: 8, Y: 8},
		Layers:      config.LayersConfig{Collision: rows},
		TileMapping: mapping,
	}
}

func TestLoadStage_Dimensions(t *testing.T) {
	stage := LoadStage(stageConfig([]string{"###", "#.#", "###"}, nil))

	require.NotNil(t, stage)
	assert.Equal(t, 3, stage.Width)
	assert.Equal(t, 3, stage.Height)
	assert.Equal(t, 16, stage.TileSize)
	assert.Equal(t, 8, stage.SpawnX)
	assert.Equal(t, 8, stage.SpawnY)
}

func TestLoadStage_TileMapping(t *testing.T) {
	mapping := map[string]config.TileMappingConfig{
		"=": {Type: "ground", Solid: true},
		"-": {Type: "ground", Solid: false},
		"#": {Type: "wall", Solid: true},
		"^": {Type: "spike", Solid: true},
		".": {Type: "empty"},
	}
	stage := LoadStage(stageConfig([]string{"=-#^.?"}, mapping))

	tests := []struct {
		name  string
		x     int
		want  entity.TileType
		solid bool
	}{
		{"solid ground", 0, entity.TileGround, true},
		{"pass-through ground", 1, entity.TileGround, false},
		{"wall", 2, entity.TileWall, true},
		{"unknown type is empty", 3, entity.TileEmpty, false},
		{"empty", 4, entity.TileEmpty, false},
		{"unmapped rune is empty", 5, entity.TileEmpty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.x, 0)
			assert.Equal(t, tt.want, tile.Type)
			assert.Equal(t, tt.solid, tile.Solid)
		})
	}
}

func TestLoadStage_RowLongerThanWidth(t *testing.T) {
	cfg := stageConfig([]string{"####"}, map[string]config.TileMappingConfig{
		"#": {Type: "wall", Solid: true},
	})
	cfg.Size.Width = 32

	stage := LoadStage(cfg)

	assert.Equal(t, 2, stage.Width)
	assert.Equal(t, 1, stage.Height)
}

func TestLoadStage_Demo(t *testing.T) {
	cfg, err := config.NewLoader("../../../configs").LoadStage("demo")
	require.NoError(t, err)

	stage := LoadStage(cfg)

	assert.Equal(t, 20, stage.Width)
	assert.Equal(t, 15, stage.Height)
	assert.Equal(t, entity.TileGround, stage.GetTile(5, 14).Type)
	assert.Equal(t, entity.TileWall, stage.GetTile(0, 3).Type)
	assert.Equal(t, entity.TileWall, stage.GetTile(12, 12).Type)
	assert.False(t, stage.IsSolidAt(stage.SpawnX, stage.SpawnY))
}
