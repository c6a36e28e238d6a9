package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// ReadSettings loads settings.yaml, falling back to defaults when the
// file is missing or unparseable.
func ReadSettings() *models.Settings {
	settings := models.DefaultSettings()
	data, err := os.ReadFile(filepath.Join(TagdeckDir, SettingsFile))
	if err != nil {
		return settings
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return models.DefaultSettings()
	}
	if settings.StrengthDisplay != models.StrengthDisplayDiscrete {
		settings.StrengthDisplay = models.StrengthDisplayContinuous
	}
	return settings
}

// WriteSettings persists settings.yaml atomically.
func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return writeFileAtomic(filepath.Join(TagdeckDir, SettingsFile), data)
}
