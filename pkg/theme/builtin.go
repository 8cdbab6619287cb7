package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thPaperTheme(),
		thGruvboxTheme(),
		thNordTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme returns the dark neutral theme with purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		DisplayBorder: "#3e3e3e",
		DisplayExpr:   "#9c9c9c",
		DisplayValue:  "#ffffff",

		KeyText:      "#d4d4d4",
		KeyDigitBg:   "#2d2d2d",
		KeyOperator:  "#5b21b6",
		KeyEqualsBg:  "#7C3AED",
		KeyControlBg: "#3e3e3e",

		ErrorText:    "#e06c75",
		SuccessPulse: "#2f2447",

		TapeExpr:   "#6b6b6b",
		TapeResult: "#d4d4d4",
		HelpKey:    "#7C3AED",
		HelpDesc:   "#6b6b6b",
	}
}

// thPaperTheme returns a light theme for terminals with a bright
// background; it is the autodetect fallback when the background is light.
func thPaperTheme() Theme {
	return Theme{
		Name:       "paper",
		Background: "#f5f0e8",
		Foreground: "#3b3b3b",
		Dim:        "#8a8a8a",
		Accent:     "#6d28d9",

		DisplayBorder: "#c9c2b6",
		DisplayExpr:   "#7a7468",
		DisplayValue:  "#1a1a1a",

		KeyText:      "#3b3b3b",
		KeyDigitBg:   "#e8e1d5",
		KeyOperator:  "#ddd2f0",
		KeyEqualsBg:  "#6d28d9",
		KeyControlBg: "#d6cfc2",

		ErrorText:    "#b3261e",
		SuccessPulse: "#e6dcf7",

		TapeExpr:   "#8a8a8a",
		TapeResult: "#3b3b3b",
		HelpKey:    "#6d28d9",
		HelpDesc:   "#8a8a8a",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		DisplayBorder: "#504945",
		DisplayExpr:   "#a89984",
		DisplayValue:  "#fbf1c7",

		KeyText:      "#ebdbb2",
		KeyDigitBg:   "#3c3836",
		KeyOperator:  "#af3a03",
		KeyEqualsBg:  "#fe8019",
		KeyControlBg: "#504945",

		ErrorText:    "#fb4934",
		SuccessPulse: "#4a3a28",

		TapeExpr:   "#928374",
		TapeResult: "#ebdbb2",
		HelpKey:    "#fe8019",
		HelpDesc:   "#928374",
	}
}

// thNordTheme returns the cool blue Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#d8dee9",
		Dim:        "#616e88",
		Accent:     "#88c0d0",

		DisplayBorder: "#434c5e",
		DisplayExpr:   "#81a1c1",
		DisplayValue:  "#eceff4",

		KeyText:      "#d8dee9",
		KeyDigitBg:   "#3b4252",
		KeyOperator:  "#5e81ac",
		KeyEqualsBg:  "#88c0d0",
		KeyControlBg: "#434c5e",

		ErrorText:    "#bf616a",
		SuccessPulse: "#3b4a5a",

		TapeExpr:   "#616e88",
		TapeResult: "#d8dee9",
		HelpKey:    "#88c0d0",
		HelpDesc:   "#616e88",
	}
}
