package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

const (
	TagdeckDir    = ".tagdeck"
	LibraryFile   = "library.json"
	FavoritesFile = "favorites.json"
	QualityFile   = "quality.json"
	SettingsFile  = "settings.yaml"
)

// InitProjectStructure creates the .tagdeck directory and seeds the
// blobs that do not exist yet.
func InitProjectStructure() error {
	if err := os.MkdirAll(TagdeckDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", TagdeckDir, err)
	}

	seeds := map[string][]byte{
		LibraryFile:   []byte(`{"folders":[],"words":[],"templates":[],"cards":[]}`),
		FavoritesFile: []byte(`[]`),
		QualityFile:   []byte(`{"templates":[],"selected":{}}`),
	}
	for name, content := range seeds {
		path := filepath.Join(TagdeckDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}

	if _, err := os.Stat(filepath.Join(TagdeckDir, SettingsFile)); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether the current directory has a .tagdeck
// store.
func ProjectExists() bool {
	info, err := os.Stat(TagdeckDir)
	return err == nil && info.IsDir()
}

// ReadDocument loads the primary document blob. A missing or malformed
// blob degrades to an empty (but valid) document; read never fails the
// caller.
func ReadDocument() models.DataStore {
	data, err := os.ReadFile(filepath.Join(TagdeckDir, LibraryFile))
	if err != nil {
		return normalize.Document(models.DataStore{})
	}
	return normalize.ParseDocument(data)
}

// WriteDocument persists the primary document blob atomically.
func WriteDocument(d models.DataStore) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return writeFileAtomic(filepath.Join(TagdeckDir, LibraryFile), data)
}

// ReadFavorites loads the favorites blob, tolerating the legacy split
// shape.
func ReadFavorites() []models.PromptFavorite {
	data, err := os.ReadFile(filepath.Join(TagdeckDir, FavoritesFile))
	if err != nil {
		return []models.PromptFavorite{}
	}
	return normalize.ParseFavorites(data)
}

// WriteFavorites persists the favorites blob atomically.
func WriteFavorites(favs []models.PromptFavorite) error {
	data, err := json.MarshalIndent(favs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	return writeFileAtomic(filepath.Join(TagdeckDir, FavoritesFile), data)
}

// QualityBlob is the persisted shape of the quality-template
// collection plus its per-type selection pointer.
type QualityBlob struct {
	Templates []models.PromptFavorite `json:"templates"`
	Selected  models.QualitySelection `json:"selected"`
}

// ReadQuality loads the quality-template blob.
func ReadQuality() QualityBlob {
	blob := QualityBlob{Templates: []models.PromptFavorite{}}
	data, err := os.ReadFile(filepath.Join(TagdeckDir, QualityFile))
	if err != nil {
		return blob
	}
	var raw struct {
		Templates json.RawMessage         `json:"templates"`
		Selected  models.QualitySelection `json:"selected"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return blob
	}
	blob.Templates = normalize.ParseFavorites(raw.Templates)
	blob.Selected = raw.Selected
	return blob
}

// WriteQuality persists the quality-template blob atomically.
func WriteQuality(blob QualityBlob) error {
	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal quality templates: %w", err)
	}
	return writeFileAtomic(filepath.Join(TagdeckDir, QualityFile), data)
}

// writeFileAtomic writes via a temp file and rename so a crashed write
// never leaves a truncated blob behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
