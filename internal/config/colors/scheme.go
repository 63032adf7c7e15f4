package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (title bar, selection border)
	Accent string `yaml:"accent"`

	Background string `yaml:"background"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Card selection
	SelectedBorder string `yaml:"selected_border"`

	// Toast (foreground/background pair)
	InfoFg string `yaml:"info_fg"`
	InfoBg string `yaml:"info_bg"`

	// Status bar
	StatusBarFg string `yaml:"status_bar_fg"`
	StatusBarBg string `yaml:"status_bar_bg"`
}

// GetPreset returns a preset color scheme by name, Default for unknown names
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.StatusBarFg, preset.StatusBarFg)
	fill(&c.StatusBarBg, preset.StatusBarBg)
}

// MergeFrom overrides values with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.StatusBarFg, other.StatusBarFg)
	merge(&c.StatusBarBg, other.StatusBarBg)
}
