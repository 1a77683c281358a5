package lantern

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the frame rate in the top-left corner.
	ShowFPS bool
	// Debug prints per-frame diagnostics to stderr.
	Debug bool
	// ShadowSize is the edge length of a shadow map face. Zero uses
	// DefaultShadowSize.
	ShadowSize int
}

// Run opens a resizable window and runs v until the window is closed.
func Run(v *Viewer, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	SetDebugMode(cfg.Debug)
	v.SetShowFPS(cfg.ShowFPS)
	v.SetShadowSize(cfg.ShadowSize)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("lantern: run: %w", err)
	}
	return nil
}
