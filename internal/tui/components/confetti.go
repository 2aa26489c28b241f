package components

import (
	"math"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/effects"
)

// ConfettiLayers turns live particles into single-cell canvas layers above
// everything else. Particles outside the screen are skipped.
func ConfettiLayers(particles []effects.Particle, width, height, z int) []*lipgloss.Layer {
	layers := make([]*lipgloss.Layer, 0, len(particles))
	for _, p := range particles {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(string(p.Glyph))
		layers = append(layers, lipgloss.NewLayer(glyph).X(x).Y(y).Z(z))
	}
	return layers
}
