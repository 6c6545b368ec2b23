//go:build !ebiten

package ui

import "popnum/internal/popnum"

// StatusBar is a no-op placeholder for headless builds.
type StatusBar struct{}

// NewStatusBar returns nil in the headless build.
func NewStatusBar() *StatusBar { return nil }

// Draw is a no-op in the headless build.
func (s *StatusBar) Draw(any, popnum.Scene) {}
