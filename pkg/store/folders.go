package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// parentKey collapses the two spellings of "attached to root".
func parentKey(parentID string) string {
	if parentID == "" {
		return models.RootFolderID
	}
	return parentID
}

// AddFolder creates a folder under the given parent. The name must be
// non-empty and unique (case-insensitive, trimmed) among its siblings.
func (s *Store) AddFolder(name, parentID string, nsfw bool) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, fmt.Errorf("folder name cannot be empty")
	}

	folder := models.Folder{
		ID:       uuid.NewString(),
		Name:     name,
		ParentID: parentKey(parentID),
		NSFW:     nsfw,
	}

	err := s.mutate(func(d *models.DataStore) error {
		if folder.ParentID != models.RootFolderID && findFolder(d, folder.ParentID) == nil {
			return fmt.Errorf("parent folder %s does not exist", folder.ParentID)
		}
		if siblingNameTaken(d, folder.ParentID, name, "") {
			return fmt.Errorf("a folder named %q already exists here", name)
		}
		d.Folders = append(d.Folders, folder)
		return nil
	})
	if err != nil {
		return models.Folder{}, err
	}
	return folder, nil
}

// RenameFolder changes a folder's name, keeping sibling uniqueness.
func (s *Store) RenameFolder(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	return s.mutate(func(d *models.DataStore) error {
		f := findFolder(d, id)
		if f == nil {
			return fmt.Errorf("folder %s does not exist", id)
		}
		if siblingNameTaken(d, parentKey(f.ParentID), name, id) {
			return fmt.Errorf("a folder named %q already exists here", name)
		}
		f.Name = name
		return nil
	})
}

// SetFolderNSFW flips a folder's nsfw flag.
func (s *Store) SetFolderNSFW(id string, nsfw bool) error {
	return s.mutate(func(d *models.DataStore) error {
		f := findFolder(d, id)
		if f == nil {
			return fmt.Errorf("folder %s does not exist", id)
		}
		f.NSFW = nsfw
		return nil
	})
}

// MoveFolder re-parents a folder. The target may not be the folder
// itself or any of its descendants (that would detach a cycle from the
// tree), and must not already contain a same-named sibling.
func (s *Store) MoveFolder(id, newParentID string) error {
	newParentID = parentKey(newParentID)
	return s.mutate(func(d *models.DataStore) error {
		f := findFolder(d, id)
		if f == nil {
			return fmt.Errorf("folder %s does not exist", id)
		}
		if newParentID != models.RootFolderID && findFolder(d, newParentID) == nil {
			return fmt.Errorf("target folder %s does not exist", newParentID)
		}
		if newParentID == id {
			return fmt.Errorf("cannot move a folder into itself")
		}
		if descendants(d, id)[newParentID] {
			return fmt.Errorf("cannot move a folder into its own subtree")
		}
		if siblingNameTaken(d, newParentID, f.Name, id) {
			return fmt.Errorf("a folder named %q already exists in the target", f.Name)
		}
		f.ParentID = newParentID
		return nil
	})
}

// DeleteFolder removes a folder, every descendant folder, and every
// word living in any of them.
func (s *Store) DeleteFolder(id string) error {
	return s.mutate(func(d *models.DataStore) error {
		if findFolder(d, id) == nil {
			return fmt.Errorf("folder %s does not exist", id)
		}
		doomed := descendants(d, id)
		doomed[id] = true

		folders := d.Folders[:0]
		for _, f := range d.Folders {
			if !doomed[f.ID] {
				folders = append(folders, f)
			}
		}
		d.Folders = folders

		words := d.Words[:0]
		for _, w := range d.Words {
			if !doomed[w.FolderID] {
				words = append(words, w)
			}
		}
		d.Words = words
		return nil
	})
}

func findFolder(d *models.DataStore, id string) *models.Folder {
	for i := range d.Folders {
		if d.Folders[i].ID == id {
			return &d.Folders[i]
		}
	}
	return nil
}

// descendants computes the transitive child set of a folder by
// breadth-first traversal of parent links.
func descendants(d *models.DataStore, id string) map[string]bool {
	children := make(map[string][]string, len(d.Folders))
	for _, f := range d.Folders {
		p := parentKey(f.ParentID)
		children[p] = append(children[p], f.ID)
	}

	out := make(map[string]bool)
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children[cur] {
			if out[child] {
				continue
			}
			out[child] = true
			queue = append(queue, child)
		}
	}
	return out
}

func siblingNameTaken(d *models.DataStore, parentID, name, excludeID string) bool {
	key := normalize.FolderName(name)
	for _, f := range d.Folders {
		if f.ID == excludeID {
			continue
		}
		if parentKey(f.ParentID) == parentID && normalize.FolderName(f.Name) == key {
			return true
		}
	}
	return false
}
