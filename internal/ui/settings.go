package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the application UI settings
type Settings struct {
	// NotesDir overrides the default notes directory (~/.notemark)
	NotesDir string `json:"notesDir,omitempty"`

	// Theme selects the color theme: "dark" (default) or "light"
	Theme string `json:"theme,omitempty"`

	// ScrollStep is the number of lines the preview scrolls per keypress
	ScrollStep int `json:"scrollStep,omitempty"`
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		Theme:      "dark",
		ScrollStep: 5,
	}
}

// LoadSettings loads the settings from the config directory
func LoadSettings(configDir string) (*Settings, error) {
	settingsPath := filepath.Join(configDir, "settings.json")

	// Return default settings if file doesn't exist
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.ScrollStep <= 0 {
		settings.ScrollStep = 5
	}
	if settings.Theme == "" {
		settings.Theme = "dark"
	}

	return settings, nil
}

// SaveSettings saves the settings to the config directory
func SaveSettings(configDir string, settings *Settings) error {
	settingsPath := filepath.Join(configDir, "settings.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	// Marshal settings with indentation for readability
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(settingsPath, data, 0644)
}
