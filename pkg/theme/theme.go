// Package theme defines the color palettes for the deskcalc UI and a
// registry of builtin and user-provided themes.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is the complete color palette for the calculator.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1e1e1e"
	Foreground string
	Dim        string // dimmed text
	Accent     string // highlights, display border on pulse

	// Display panel
	DisplayBorder string
	DisplayExpr   string // committed history line
	DisplayValue  string // current value

	// Keypad
	KeyText      string
	KeyDigitBg   string
	KeyOperator  string // + - × ÷ button background
	KeyEqualsBg  string
	KeyControlBg string // C, backspace, %

	// Transient states
	ErrorText    string // "Err" flash
	SuccessPulse string // display background during the equals pulse

	// Tape and help bar
	TapeExpr   string
	TapeResult string
	HelpKey    string
	HelpDesc   string
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Has reports whether a theme with the given name is registered.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
