//go:build !ebiten

package ui

import "mad-terrain/internal/worldgen"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// SetWorld is a no-op in headless builds.
func (o *Overlay) SetWorld(*worldgen.World) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
