package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds process-local user preferences. They configure the
// display and persistence collaborators only; projection math never reads
// them.
type Preferences struct {
	Display  DisplayPrefs  `toml:"display"`
	Files    FilePrefs     `toml:"files"`
	Autosave AutosavePrefs `toml:"autosave"`
}

// DisplayPrefs holds currency and date rendering settings.
type DisplayPrefs struct {
	Currency   string `toml:"currency"`
	DateFormat string `toml:"date_format"`
}

// FilePrefs holds file location settings.
type FilePrefs struct {
	DefaultPlan string `toml:"default_plan,omitempty"`
}

// AutosavePrefs holds autosave settings for plan edits.
type AutosavePrefs struct {
	Enabled        bool `toml:"enabled"`
	DebounceMillis int  `toml:"debounce_millis"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Display: DisplayPrefs{
			Currency:   "EUR",
			DateFormat: "02/01/2006",
		},
		Autosave: AutosavePrefs{
			Enabled:        true,
			DebounceMillis: 750,
		},
	}
}

// PrefsDir returns the XDG-compliant config directory.
func PrefsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "firecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "firecalc")
}

// PrefsPath returns the full path to the preferences file.
func PrefsPath() string {
	return filepath.Join(PrefsDir(), "preferences.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it
// doesn't exist.
func LoadPreferences() (Preferences, error) {
	return loadPreferencesFrom(PrefsPath())
}

func loadPreferencesFrom(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	return savePreferencesTo(PrefsPath(), prefs)
}

func savePreferencesTo(path string, prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening preferences file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(prefs); err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return nil
}
