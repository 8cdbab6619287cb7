package theme

import "github.com/muesli/termenv"

// Autodetect picks a default theme name from the terminal background:
// "default" on dark backgrounds, "paper" on light ones.
func Autodetect() string {
	if termenv.HasDarkBackground() {
		return "default"
	}
	return "paper"
}
