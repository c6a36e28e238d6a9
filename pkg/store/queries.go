package store

import (
	"sort"
	"strings"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// Folder returns a folder by id.
func (s *Store) Folder(id string) (models.Folder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := findFolder(&s.data, id); f != nil {
		return *f, true
	}
	return models.Folder{}, false
}

// Word returns a word by id.
func (s *Store) Word(id string) (models.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.data.Words {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return models.Word{}, false
}

// Template returns a template by id.
func (s *Store) Template(id string) (models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.data.Templates {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.Template{}, false
}

// Card returns a card by id.
func (s *Store) Card(id string) (models.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.data.Cards {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Card{}, false
}

// ChildFolders lists the direct children of a folder, sorted by name.
func (s *Store) ChildFolders(parentID string) []models.Folder {
	parentID = parentKey(parentID)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Folder
	for _, f := range s.data.Folders {
		if parentKey(f.ParentID) == parentID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// WordsInFolder lists the words directly in a folder, optionally
// including every descendant folder's words.
func (s *Store) WordsInFolder(folderID string, includeDescendants bool) []models.Word {
	folderID = parentKey(folderID)
	s.mu.Lock()
	defer s.mu.Unlock()

	in := map[string]bool{folderID: true}
	if includeDescendants {
		for id := range descendants(&s.data, folderID) {
			in[id] = true
		}
	}

	var out []models.Word
	for _, w := range s.data.Words {
		if in[parentKey(w.FolderID)] {
			out = append(out, w.Clone())
		}
	}
	return out
}

// FolderPath renders a folder's ancestry as "a / b / c". showRoot
// prepends the root segment.
func (s *Store) FolderPath(id string, showRoot bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var parts []string
	for cur := id; cur != "" && cur != models.RootFolderID; {
		f := findFolder(&s.data, cur)
		if f == nil {
			break
		}
		parts = append([]string{f.Name}, parts...)
		cur = parentKey(f.ParentID)
	}
	if showRoot {
		parts = append([]string{"root"}, parts...)
	}
	return strings.Join(parts, " / ")
}

// Lookup returns a word-resolution function bound to the store, for
// card application and marker resolution.
func (s *Store) Lookup() func(id string) (models.Word, bool) {
	return func(id string) (models.Word, bool) {
		return s.Word(id)
	}
}

// Words returns a deep copy of the word collection.
func (s *Store) Words() []models.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Word, len(s.data.Words))
	for i, w := range s.data.Words {
		out[i] = w.Clone()
	}
	return out
}
