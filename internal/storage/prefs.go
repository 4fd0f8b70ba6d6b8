package storage

import (
	"fmt"

	"github.com/hushbook/hushbook/internal/locale"
)

// Theme values as persisted under KeyTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Prefs reads and writes the UI preferences. Both values are independent
// scalar keys; writes are small and unconditional.
type Prefs struct {
	db *DB
}

// NewPrefs creates a preference store.
func NewPrefs(db *DB) *Prefs {
	return &Prefs{db: db}
}

// Language returns the persisted language code, falling back to the
// device-inferred language when unset. A stored code outside the supported
// set is passed through; the localization layer falls back on lookup.
func (p *Prefs) Language() (string, error) {
	code, found, err := p.db.GetString(KeyLanguage)
	if err != nil {
		return "", err
	}
	if !found || code == "" {
		return locale.Detect(), nil
	}
	return code, nil
}

// SetLanguage persists the language code. The code must be supported.
func (p *Prefs) SetLanguage(code string) error {
	if !locale.Supported(code) {
		return fmt.Errorf("unsupported language %q", code)
	}
	return p.db.SetString(KeyLanguage, code)
}

// DarkTheme reports whether the dark theme is selected. Defaults to light.
func (p *Prefs) DarkTheme() (bool, error) {
	value, found, err := p.db.GetString(KeyTheme)
	if err != nil {
		return false, err
	}
	return found && value == ThemeDark, nil
}

// SetDarkTheme persists the theme selection.
func (p *Prefs) SetDarkTheme(dark bool) error {
	value := ThemeLight
	if dark {
		value = ThemeDark
	}
	return p.db.SetString(KeyTheme, value)
}
