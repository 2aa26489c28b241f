package colors

import "time"

// Preset names.
const (
	PresetDark     = "dark"
	PresetLight    = "light"
	PresetGradient = "gradient"
)

// Presets lists the selectable themes in switcher order.
var Presets = []string{PresetDark, PresetLight, PresetGradient}

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("dark", "light", "gradient")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Background colors
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`
	SidebarBg        string `yaml:"sidebar_bg"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // edit dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	ColumnHover    string `yaml:"column_hover"` // drop target under the pointer
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DragBorder     string `yaml:"drag_border"`
	Progress       string `yaml:"progress"`

	// Priority badges
	PriorityHigh   string `yaml:"priority_high"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityLow    string `yaml:"priority_low"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`

	// IsDark tells renderers (glamour) which style family to use.
	IsDark bool `yaml:"-"`
}

// fields lists every colour slot, in declaration order.
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Background, &c.ColumnBackground, &c.SidebarBg,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.ColumnHover, &c.TaskBorder, &c.TaskBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.DragBorder, &c.Progress,
		&c.PriorityHigh, &c.PriorityMedium, &c.PriorityLow,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// Valid reports whether name is a known preset.
func Valid(name string) bool {
	for _, p := range Presets {
		if p == name {
			return true
		}
	}
	return false
}

// GetPreset returns a preset color scheme by name. The gradient preset
// depends on the time of day at now.
func GetPreset(name string, now time.Time) *ColorScheme {
	switch name {
	case PresetLight:
		return Light()
	case PresetGradient:
		return Gradient(TimeOfDayAt(now))
	default:
		return Dark()
	}
}

// Resolve returns a copy of c with the preset for c.Preset as the base and
// c's own non-empty values layered on top.
func (c ColorScheme) Resolve(now time.Time) ColorScheme {
	out := *GetPreset(c.Preset, now)
	src := c.fields()
	for i, dst := range out.fields() {
		if *src[i] != "" {
			*dst = *src[i]
		}
	}
	return out
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	if !Valid(c.Preset) {
		c.Preset = PresetDark
	}
	preset := GetPreset(c.Preset, time.Now())
	base := preset.fields()
	for i, dst := range c.fields() {
		if *dst == "" {
			*dst = *base[i]
		}
	}
	c.IsDark = preset.IsDark
}

// MergeFrom overlays the non-empty values of other onto c.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, dst := range c.fields() {
		if *src[i] != "" {
			*dst = *src[i]
		}
	}
}

// Overrides returns only the values that differ from the preset, so a theme
// switch can keep user customisations while swapping the base.
func (c ColorScheme) Overrides(now time.Time) ColorScheme {
	preset := GetPreset(c.Preset, now)
	out := ColorScheme{Preset: c.Preset}
	base := preset.fields()
	dst := out.fields()
	for i, v := range c.fields() {
		if *v != *base[i] {
			*dst[i] = *v
		}
	}
	return out
}
