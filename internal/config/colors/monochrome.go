package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#121212",

		Title:  "#000000",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		SelectedBorder: "#FFFFFF",

		InfoFg: "#FFFFFF",
		InfoBg: "#3A3A3A",

		StatusBarFg: "#D0D0D0",
		StatusBarBg: "#1C1C1C",
	}
}
