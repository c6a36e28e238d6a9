package library

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// QualityStore manages quality templates and the per-type pointer to
// the currently active one. The active template's text is prepended to
// copy output (see prompt.WithQuality).
type QualityStore struct {
	mu        sync.Mutex
	templates []models.PromptFavorite
	selected  models.QualitySelection
	write     func(files.QualityBlob) error
	logger    *zap.Logger
}

// OpenQuality loads the quality blob from the .tagdeck directory.
func OpenQuality(logger *zap.Logger) *QualityStore {
	blob := files.ReadQuality()
	return NewQuality(blob, files.WriteQuality, logger)
}

// NewQuality builds a store around an initial blob and a write
// function.
func NewQuality(blob files.QualityBlob, write func(files.QualityBlob) error, logger *zap.Logger) *QualityStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	qs := &QualityStore{
		templates: normalize.Favorites(blob.Templates),
		selected:  blob.Selected,
		write:     write,
		logger:    logger,
	}
	// A pointer to a template that no longer exists is cleared on
	// load rather than left dangling.
	if _, ok := qs.get(qs.selected.Positive); !ok {
		qs.selected.Positive = ""
	}
	if _, ok := qs.get(qs.selected.Negative); !ok {
		qs.selected.Negative = ""
	}
	return qs
}

// List returns a copy of the collection, most recent first.
func (qs *QualityStore) List() []models.PromptFavorite {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	out := make([]models.PromptFavorite, len(qs.templates))
	for i, t := range qs.templates {
		out[i] = t.Clone()
	}
	return out
}

// Get returns a quality template by id.
func (qs *QualityStore) Get(id string) (models.PromptFavorite, bool) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	t, ok := qs.get(id)
	if !ok {
		return models.PromptFavorite{}, false
	}
	return t.Clone(), true
}

func (qs *QualityStore) get(id string) (models.PromptFavorite, bool) {
	if id == "" {
		return models.PromptFavorite{}, false
	}
	for _, t := range qs.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.PromptFavorite{}, false
}

// Add snapshots a selection list as a new quality template.
func (qs *QualityStore) Add(name, listType string, words []models.SelectedWord) (models.PromptFavorite, error) {
	if name == "" {
		return models.PromptFavorite{}, fmt.Errorf("quality template name cannot be empty")
	}
	if !models.ValidType(listType) {
		return models.PromptFavorite{}, fmt.Errorf("quality template type must be positive or negative")
	}
	t := models.PromptFavorite{
		ID:    newID(),
		Name:  name,
		Type:  listType,
		Words: models.CloneSelection(words),
		NSFW:  normalize.SelectionNSFW(words),
	}
	qs.mu.Lock()
	qs.templates = append([]models.PromptFavorite{t}, qs.templates...)
	qs.mu.Unlock()
	qs.persist()
	return t, nil
}

// Remove deletes a quality template; if it was the active one for its
// type, the pointer is cleared.
func (qs *QualityStore) Remove(id string) {
	qs.mu.Lock()
	for i, t := range qs.templates {
		if t.ID == id {
			qs.templates = append(qs.templates[:i:i], qs.templates[i+1:]...)
			break
		}
	}
	if qs.selected.Positive == id {
		qs.selected.Positive = ""
	}
	if qs.selected.Negative == id {
		qs.selected.Negative = ""
	}
	qs.mu.Unlock()
	qs.persist()
}

// Rename changes a template's name in place. The name is trimmed; an
// empty result is a no-op.
func (qs *QualityStore) Rename(id, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	qs.mu.Lock()
	for i := range qs.templates {
		if qs.templates[i].ID == id {
			qs.templates[i].Name = name
			break
		}
	}
	qs.mu.Unlock()
	qs.persist()
}

// Select sets (or clears, with an empty id) the active template for a
// list type. Selecting an unknown id clears the pointer.
func (qs *QualityStore) Select(listType, id string) {
	qs.mu.Lock()
	if _, ok := qs.get(id); !ok {
		id = ""
	}
	if listType == models.TypeNegative {
		qs.selected.Negative = id
	} else {
		qs.selected.Positive = id
	}
	qs.mu.Unlock()
	qs.persist()
}

// Selected returns the active template for a list type, if any.
func (qs *QualityStore) Selected(listType string) (models.PromptFavorite, bool) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	id := qs.selected.Positive
	if listType == models.TypeNegative {
		id = qs.selected.Negative
	}
	t, ok := qs.get(id)
	if !ok {
		return models.PromptFavorite{}, false
	}
	return t.Clone(), true
}

// Selection returns the current pointer pair.
func (qs *QualityStore) Selection() models.QualitySelection {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.selected
}

func (qs *QualityStore) persist() {
	qs.mu.Lock()
	blob := files.QualityBlob{
		Templates: make([]models.PromptFavorite, len(qs.templates)),
		Selected:  qs.selected,
	}
	copy(blob.Templates, qs.templates)
	qs.mu.Unlock()
	if err := qs.write(blob); err != nil {
		qs.logger.Warn("quality templates write failed", zap.Error(err))
	}
}
