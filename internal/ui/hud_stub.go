//go:build !ebiten

package ui

import (
	"plague/internal/core"
	"plague/internal/render"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*render.Board, core.ParameterSnapshot, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// MinHeight is zero in the headless build.
func (h *HUD) MinHeight() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
