package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// AddWord creates a word in a folder. The label must be unique
// (case-insensitive) within that folder.
func (s *Store) AddWord(word models.Word) (models.Word, error) {
	word.LabelJP = strings.TrimSpace(word.LabelJP)
	word.ValueEN = strings.TrimSpace(word.ValueEN)
	if word.LabelJP == "" {
		return models.Word{}, fmt.Errorf("word label cannot be empty")
	}
	if word.ID == "" {
		word.ID = uuid.NewString()
	}
	word.FolderID = parentKey(word.FolderID)

	err := s.mutate(func(d *models.DataStore) error {
		if word.FolderID != models.RootFolderID && findFolder(d, word.FolderID) == nil {
			return fmt.Errorf("folder %s does not exist", word.FolderID)
		}
		if labelTaken(d, word.FolderID, word.LabelJP, "") {
			return fmt.Errorf("a word labeled %q already exists in this folder", word.LabelJP)
		}
		d.Words = append(d.Words, word.Clone())
		return nil
	})
	if err != nil {
		return models.Word{}, err
	}
	return word, nil
}

// UpdateWord replaces a stored word wholesale, re-validating the label
// against its (possibly new) folder.
func (s *Store) UpdateWord(word models.Word) error {
	word.LabelJP = strings.TrimSpace(word.LabelJP)
	if word.LabelJP == "" {
		return fmt.Errorf("word label cannot be empty")
	}
	word.FolderID = parentKey(word.FolderID)

	return s.mutate(func(d *models.DataStore) error {
		idx := -1
		for i := range d.Words {
			if d.Words[i].ID == word.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("word %s does not exist", word.ID)
		}
		if word.FolderID != models.RootFolderID && findFolder(d, word.FolderID) == nil {
			return fmt.Errorf("folder %s does not exist", word.FolderID)
		}
		if labelTaken(d, word.FolderID, word.LabelJP, word.ID) {
			return fmt.Errorf("a word labeled %q already exists in this folder", word.LabelJP)
		}
		d.Words[idx] = word.Clone()
		return nil
	})
}

// DeleteWord removes a word by id. Card refs pointing at it survive
// through their denormalized label/value snapshot.
func (s *Store) DeleteWord(id string) error {
	return s.mutate(func(d *models.DataStore) error {
		for i := range d.Words {
			if d.Words[i].ID == id {
				d.Words = append(d.Words[:i:i], d.Words[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("word %s does not exist", id)
	})
}

func labelTaken(d *models.DataStore, folderID, label, excludeID string) bool {
	key := normalize.FolderName(label)
	for _, w := range d.Words {
		if w.ID == excludeID {
			continue
		}
		if parentKey(w.FolderID) == folderID && normalize.FolderName(w.LabelJP) == key {
			return true
		}
	}
	return false
}
