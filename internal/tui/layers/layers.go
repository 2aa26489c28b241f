// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// Z order of the board's layers, bottom to top.
const (
	ZBoard        = 0
	ZCards        = 1
	ZDock         = 2
	ZGhost        = 3
	ZModal        = 4
	ZNotification = 5
	ZConfetti     = 6
)

// ModalWidth returns a dialog width of half the screen within [min, max].
func ModalWidth(screenWidth, minWidth, maxWidth int) int {
	return max(min(screenWidth/2, maxWidth), min(minWidth, screenWidth))
}

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZModal)
}

// At places content at an absolute cell position.
func At(content string, x, y, z int) *lipgloss.Layer {
	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0)).Z(z)
}
