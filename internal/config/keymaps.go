package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Actions
	AddColor   string `yaml:"add_color"`
	SyncColors string `yaml:"sync_colors"`
	Refresh    string `yaml:"refresh"`

	// Navigation
	PrevCard string `yaml:"prev_card"`
	NextCard string `yaml:"next_card"`
	UpRow    string `yaml:"up_row"`
	DownRow  string `yaml:"down_row"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddColor:   "a",
		SyncColors: "s",
		Refresh:    "r",

		PrevCard: "h",
		NextCard: "l",
		UpRow:    "k",
		DownRow:  "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in any missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.AddColor, defaults.AddColor)
	fill(&k.SyncColors, defaults.SyncColors)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.UpRow, defaults.UpRow)
	fill(&k.DownRow, defaults.DownRow)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
