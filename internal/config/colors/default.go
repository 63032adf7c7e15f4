package colors

// Default returns the default color scheme (indigo title bar)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent:     "#5658A5",
		Background: "#1C1C1C",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		SelectedBorder: "#D75FD7",

		InfoFg: "#FFFFFF",
		InfoBg: "#625B71",

		StatusBarFg: "#D0D0D0",
		StatusBarBg: "#262626",
	}
}
