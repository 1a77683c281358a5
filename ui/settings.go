package ui

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// InterfaceSettings controls the look of every window. It is passed
// explicitly to everything that builds or draws windows.
type InterfaceSettings struct {
	// Scaling multiplies every pixel size below.
	Scaling     float32 `json:"scaling"`
	BorderSize  float32 `json:"border_size"`
	GapSize     float32 `json:"gap_size"`
	TitleHeight float32 `json:"title_height"`
	// DragDeadZone is how far, in pixels, the pointer must travel before a
	// title bar press turns into a window move.
	DragDeadZone float32 `json:"drag_dead_zone"`

	BackgroundColor color.RGBA `json:"background_color"`
	TitleColor      color.RGBA `json:"title_color"`
	ForegroundColor color.RGBA `json:"foreground_color"`
	HoverColor      color.RGBA `json:"hover_color"`
	TrackColor      color.RGBA `json:"track_color"`
	KnobColor       color.RGBA `json:"knob_color"`
}

// DefaultInterfaceSettings returns the built-in theme.
func DefaultInterfaceSettings() *InterfaceSettings {
	return &InterfaceSettings{
		Scaling:         1,
		BorderSize:      4,
		GapSize:         3,
		TitleHeight:     16,
		DragDeadZone:    4,
		BackgroundColor: color.RGBA{R: 30, G: 30, B: 40, A: 230},
		TitleColor:      color.RGBA{R: 60, G: 70, B: 100, A: 255},
		ForegroundColor: color.RGBA{R: 230, G: 230, B: 230, A: 255},
		HoverColor:      color.RGBA{R: 120, G: 160, B: 255, A: 255},
		TrackColor:      color.RGBA{R: 70, G: 70, B: 80, A: 255},
		KnobColor:       color.RGBA{R: 200, G: 200, B: 210, A: 255},
	}
}

// scaled multiplies v by the scaling factor.
func (s *InterfaceSettings) scaled(v float32) float32 {
	if s.Scaling <= 0 {
		return v
	}
	return v * s.Scaling
}

// LoadInterfaceSettings reads settings from a JSON file. Fields missing from
// the file keep their default values.
func LoadInterfaceSettings(path string) (*InterfaceSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load interface settings: %w", err)
	}
	s := DefaultInterfaceSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("load interface settings: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to a JSON file.
func (s *InterfaceSettings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("save interface settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save interface settings: %w", err)
	}
	return nil
}
