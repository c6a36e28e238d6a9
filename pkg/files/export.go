package files

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// ExportDocument writes the full document, cards included, to a
// user-chosen JSON file.
func ExportDocument(path string, d models.DataStore) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return nil
}

// ImportDocument reads and validates a user-supplied export file.
// Unlike the tolerant blob loader, an import must look like a document
// before it is allowed to replace the current one: folders and words
// must both be present and array-typed.
func ImportDocument(path string) (models.DataStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.DataStore{}, fmt.Errorf("failed to read import file: %w", err)
	}

	var raw struct {
		Folders json.RawMessage `json:"folders"`
		Words   json.RawMessage `json:"words"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.DataStore{}, fmt.Errorf("not a valid JSON file: %w", err)
	}
	var folders, words []json.RawMessage
	if raw.Folders == nil || json.Unmarshal(raw.Folders, &folders) != nil {
		return models.DataStore{}, fmt.Errorf("import file has no folders array")
	}
	if raw.Words == nil || json.Unmarshal(raw.Words, &words) != nil {
		return models.DataStore{}, fmt.Errorf("import file has no words array")
	}

	return normalize.ParseDocument(data), nil
}
