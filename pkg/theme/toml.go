package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name    string        `toml:"name"`
	Base    thTOMLBase    `toml:"base"`
	Display thTOMLDisplay `toml:"display"`
	Keypad  thTOMLKeypad  `toml:"keypad"`
	State   thTOMLState   `toml:"state"`
	Tape    thTOMLTape    `toml:"tape"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLDisplay struct {
	Border string `toml:"border"`
	Expr   string `toml:"expr"`
	Value  string `toml:"value"`
}

type thTOMLKeypad struct {
	Text      string `toml:"text"`
	DigitBg   string `toml:"digit_bg"`
	Operator  string `toml:"operator_bg"`
	EqualsBg  string `toml:"equals_bg"`
	ControlBg string `toml:"control_bg"`
}

type thTOMLState struct {
	ErrorText    string `toml:"error_text"`
	SuccessPulse string `toml:"success_pulse"`
}

type thTOMLTape struct {
	Expr     string `toml:"expr"`
	Result   string `toml:"result"`
	HelpKey  string `toml:"help_key"`
	HelpDesc string `toml:"help_desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		DisplayBorder: tt.Display.Border,
		DisplayExpr:   tt.Display.Expr,
		DisplayValue:  tt.Display.Value,

		KeyText:      tt.Keypad.Text,
		KeyDigitBg:   tt.Keypad.DigitBg,
		KeyOperator:  tt.Keypad.Operator,
		KeyEqualsBg:  tt.Keypad.EqualsBg,
		KeyControlBg: tt.Keypad.ControlBg,

		ErrorText:    tt.State.ErrorText,
		SuccessPulse: tt.State.SuccessPulse,

		TapeExpr:   tt.Tape.Expr,
		TapeResult: tt.Tape.Result,
		HelpKey:    tt.Tape.HelpKey,
		HelpDesc:   tt.Tape.HelpDesc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadDir registers every *.toml theme found in dir. Files that fail to
// parse are skipped and reported in the returned error list; a missing
// directory is not an error.
func LoadDir(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{err}
	}

	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: read %s: %w", path, err))
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: %s: %w", path, err))
			continue
		}
		thRegister(t)
	}
	return errs
}

// thValidateTheme checks that all color fields are present and valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := map[string]string{
		"base.background":     t.Background,
		"base.foreground":     t.Foreground,
		"base.dim":            t.Dim,
		"base.accent":         t.Accent,
		"display.border":      t.DisplayBorder,
		"display.expr":        t.DisplayExpr,
		"display.value":       t.DisplayValue,
		"keypad.text":         t.KeyText,
		"keypad.digit_bg":     t.KeyDigitBg,
		"keypad.operator_bg":  t.KeyOperator,
		"keypad.equals_bg":    t.KeyEqualsBg,
		"keypad.control_bg":   t.KeyControlBg,
		"state.error_text":    t.ErrorText,
		"state.success_pulse": t.SuccessPulse,
		"tape.expr":           t.TapeExpr,
		"tape.result":         t.TapeResult,
		"tape.help_key":       t.HelpKey,
		"tape.help_desc":      t.HelpDesc,
	}

	for field, value := range colorFields {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}

	return nil
}
