package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	// 3x3 stage: walls on the sides of the top row, ground along the bottom
	tiles := [][]Tile{
		{{Type: TileWall, Solid: true}, {Type: TileEmpty}, {Type: TileWall, Solid: true}},
		{{Type: TileEmpty}, {Type: TileEmpty}, {Type: TileEmpty}},
		{{Type: TileGround, Solid: true}, {Type: TileGround, Solid: true}, {Type: TileGround, Solid: true}},
	}

	return &Stage{
		Width:    3,
		Height:   3,
		TileSize: 16,
		Tiles:    tiles,
		SpawnX:   24,
		SpawnY:   24,
	}
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name      string
		tx, ty    int
		wantType  TileType
		wantSolid bool
	}{
		{"top-left wall", 0, 0, TileWall, true},
		{"top-center empty", 1, 0, TileEmpty, false},
		{"center empty", 1, 1, TileEmpty, false},
		{"bottom-center ground", 1, 2, TileGround, true},
		{"out of bounds left", -1, 1, TileWall, true},
		{"out of bounds below", 1, 3, TileWall, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := stage.GetTile(tt.tx, tt.ty)
			assert.Equal(t, tt.wantType, tile.Type)
			assert.Equal(t, tt.wantSolid, tile.Solid)
		})
	}
}

func TestStage_IsSolidAt(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.IsSolidAt(5, 5), "inside top-left wall")
	assert.False(t, stage.IsSolidAt(24, 24), "center")
	assert.True(t, stage.IsSolidAt(24, 40), "bottom ground")
	assert.True(t, stage.IsSolidAt(-1, 24), "just left of the stage")
	assert.Equal(t, 48, stage.PixelWidth())
	assert.Equal(t, 48, stage.PixelHeight())
}

func TestTileType_String(t *testing.T) {
	assert.Equal(t, "ground", TileGround.String())
	assert.Equal(t, "wall", TileWall.String())
	assert.Equal(t, "unknown", TileType(42).String())
}
