package tui

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

const themeGradient = colors.PresetGradient

// themeState holds the active palette. User overrides from the config file
// survive preset switches.
type themeState struct {
	overrides colors.ColorScheme
	scheme    colors.ColorScheme
	styles    components.Styles
	tod       colors.TimeOfDay
}

func newThemeState(configured colors.ColorScheme, stored string, now time.Time) *themeState {
	t := &themeState{overrides: configured.Overrides(now)}
	preset := configured.Preset
	if colors.Valid(stored) {
		preset = stored
	}
	t.apply(preset, now)
	return t
}

func (t *themeState) apply(preset string, now time.Time) {
	base := t.overrides
	base.Preset = preset
	t.scheme = base.Resolve(now)
	t.styles = components.NewStyles(t.scheme)
	t.tod = colors.TimeOfDayAt(now)
}

// Preset returns the active preset name.
func (t *themeState) Preset() string {
	return t.scheme.Preset
}

// Next cycles dark → light → gradient and returns the new preset.
func (t *themeState) Next(now time.Time) string {
	next := colors.Presets[0]
	for i, p := range colors.Presets {
		if p == t.scheme.Preset {
			next = colors.Presets[(i+1)%len(colors.Presets)]
		}
	}
	t.apply(next, now)
	return next
}

// Refresh re-resolves the gradient palette when the time of day changed.
// It reports whether anything changed.
func (t *themeState) Refresh(now time.Time) bool {
	if t.scheme.Preset != themeGradient || colors.TimeOfDayAt(now) == t.tod {
		return false
	}
	t.apply(themeGradient, now)
	return true
}

// Label is shown in the header.
func (t *themeState) Label() string {
	if t.scheme.Preset == themeGradient {
		return "gradient · " + string(t.tod)
	}
	return t.scheme.Preset
}
