package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",
		Done:   "#5FD75F",

		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",

		Title:  "#D75FD7",
		Subtle: "#767676",
		Normal: "#D0D0D0",

		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
