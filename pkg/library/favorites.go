// Package library holds the two persisted bundle collections:
// favorites (whole-list snapshots, applied destructively) and quality
// templates (prefix snapshots with an active-per-type pointer).
package library

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// newID stamps a time-based id with a random suffix so two snapshots
// taken in the same millisecond still get distinct ids.
func newID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// FavoritesStore manages the favorites collection, most recent first.
type FavoritesStore struct {
	mu     sync.Mutex
	favs   []models.PromptFavorite
	write  func([]models.PromptFavorite) error
	logger *zap.Logger
}

// OpenFavorites loads the favorites blob from the .tagdeck directory.
func OpenFavorites(logger *zap.Logger) *FavoritesStore {
	return NewFavorites(files.ReadFavorites(), files.WriteFavorites, logger)
}

// NewFavorites builds a store around an initial collection and a
// write function.
func NewFavorites(initial []models.PromptFavorite, write func([]models.PromptFavorite) error, logger *zap.Logger) *FavoritesStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoritesStore{
		favs:   normalize.Favorites(initial),
		write:  write,
		logger: logger,
	}
}

// List returns a copy of the collection, most recent first.
func (fs *FavoritesStore) List() []models.PromptFavorite {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]models.PromptFavorite, len(fs.favs))
	for i, f := range fs.favs {
		out[i] = f.Clone()
	}
	return out
}

// Get returns a favorite by id.
func (fs *FavoritesStore) Get(id string) (models.PromptFavorite, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, f := range fs.favs {
		if f.ID == id {
			return f.Clone(), true
		}
	}
	return models.PromptFavorite{}, false
}

// Add snapshots a selection list as a new favorite and prepends it.
// The words are deep-copied; the favorite never references live
// selection entries.
func (fs *FavoritesStore) Add(name, listType string, words []models.SelectedWord) (models.PromptFavorite, error) {
	if name == "" {
		return models.PromptFavorite{}, fmt.Errorf("favorite name cannot be empty")
	}
	if !models.ValidType(listType) {
		return models.PromptFavorite{}, fmt.Errorf("favorite type must be positive or negative")
	}
	fav := models.PromptFavorite{
		ID:    newID(),
		Name:  name,
		Type:  listType,
		Words: models.CloneSelection(words),
		NSFW:  normalize.SelectionNSFW(words),
	}

	fs.mu.Lock()
	fs.favs = append([]models.PromptFavorite{fav}, fs.favs...)
	fs.mu.Unlock()
	fs.persist()
	return fav, nil
}

// Remove deletes a favorite by id.
func (fs *FavoritesStore) Remove(id string) {
	fs.mu.Lock()
	for i, f := range fs.favs {
		if f.ID == id {
			fs.favs = append(fs.favs[:i:i], fs.favs[i+1:]...)
			break
		}
	}
	fs.mu.Unlock()
	fs.persist()
}

// persist writes the collection through. Failures are logged, not
// raised: in-memory state stays authoritative.
func (fs *FavoritesStore) persist() {
	fs.mu.Lock()
	snapshot := make([]models.PromptFavorite, len(fs.favs))
	copy(snapshot, fs.favs)
	fs.mu.Unlock()
	if err := fs.write(snapshot); err != nil {
		fs.logger.Warn("favorites write failed", zap.Error(err))
	}
}
