package replay

import "github.com/younwookim/herocore/internal/infrastructure/config"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single presentation frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	JP bool `json:"jp,omitempty"` // JumpPressed
	DP bool `json:"dp,omitempty"` // DashPressed
}

// TuningReload is a tuning swap applied before frame F was played
type TuningReload struct {
	F      int                 `json:"f"`
	Tuning config.TuningConfig `json:"tuning"`
}

// ReplayData contains all data needed to replay a session.
// Framerate and TickRate fix how many simulation ticks each frame runs.
// TuningConfig, when present, is the tuning the session started with and
// takes precedence over the Tuning file name.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Tuning    string       `json:"tuning"`
	Framerate int          `json:"framerate"`
	TickRate  int          `json:"tickRate"`
	Sensor    string       `json:"sensor,omitempty"` // empty means the tuning file's kind
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`

	TuningConfig *config.TuningConfig `json:"tuningConfig,omitempty"`
	Reloads      []TuningReload       `json:"reloads,omitempty"`

	Final string `json:"final,omitempty"` // snapshot after the last frame
}
