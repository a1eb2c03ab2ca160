// Package appsettings loads and saves the minimize-to-tray settings.
//
// Settings live in a JSON file under the user config directory. Keys absent
// from the file keep their defaults, matching how the host application treats
// missing addon configuration.
package appsettings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the recognized configuration options.
type Settings struct {
	// ShowDue renders the due-count badge on the tray icon.
	ShowDue bool `json:"show_due"`
	// DueFontSize is the badge text height in pixels.
	DueFontSize int `json:"due_font_size"`
	// HideOnStartup hides all windows right after startup.
	HideOnStartup bool `json:"hide_on_startup"`
	// EnableNotifications sends a desktop notification when cards
	// become due.
	EnableNotifications bool `json:"enable_notifications"`
	// EnableAudioCues plays a short beep alongside the notification.
	EnableAudioCues bool `json:"enable_audio_cues"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		ShowDue:             true,
		DueFontSize:         16,
		EnableNotifications: true,
	}
}

// Manager handles loading and saving settings to disk.
type Manager struct {
	appName string
}

// NewManager creates a settings manager for the given application name.
func NewManager(appName string) *Manager {
	return &Manager{appName: appName}
}

// Path returns the path to the settings file.
func (m *Manager) Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(configDir, m.appName, "settings.json"), nil
}

// Load reads settings from disk. A missing file is not an error: the
// defaults are returned as-is, and keys absent from the file keep their
// default values.
func (m *Manager) Load() (Settings, error) {
	settings := Defaults()

	path, err := m.Path()
	if err != nil {
		return settings, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("parse settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to disk, creating the config directory if needed.
func (m *Manager) Save(settings Settings) error {
	path, err := m.Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
