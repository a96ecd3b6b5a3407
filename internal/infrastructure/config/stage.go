package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	Background  BackgroundConfig             `json:"background"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tileSize"`
}

type BackgroundConfig struct {
	Color string `json:"color"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LayersConfig holds the tile rows, top row first, one rune per tile
type LayersConfig struct {
	Collision []string `json:"collision"`
}

// TileMappingConfig maps a rune of the collision layer to a surface.
// Type is "ground" or "wall"; anything else is empty space.
type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
}
