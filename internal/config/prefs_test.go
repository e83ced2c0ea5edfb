package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreferencesMissingFileReturnsDefaults(t *testing.T) {
	prefs, err := loadPreferencesFrom(filepath.Join(t.TempDir(), "preferences.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestPreferencesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.toml")

	prefs := DefaultPreferences()
	prefs.Display.Currency = "GBP"
	prefs.Files.DefaultPlan = "/plans/main.yaml"
	prefs.Autosave.DebounceMillis = 250

	require.NoError(t, savePreferencesTo(path, prefs))

	loaded, err := loadPreferencesFrom(path)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferencesBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("display = not toml"), 0600))

	_, err := loadPreferencesFrom(path)
	require.Error(t, err)
}

func TestLoadPreferencesPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\ncurrency = \"USD\"\n"), 0600))

	prefs, err := loadPreferencesFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", prefs.Display.Currency)
	// Unset sections fall back to defaults.
	assert.Equal(t, DefaultPreferences().Autosave, prefs.Autosave)
}
