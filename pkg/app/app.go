// Package app wires the document store, selection engine, bundle
// stores, and settings into one explicitly-constructed state owner.
// Consumers (CLI commands, TUI) hold a handle to an App instead of
// reaching for globals.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/library"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/prompt"
	"github.com/tagdeck/tagdeck-cli/pkg/selection"
	"github.com/tagdeck/tagdeck-cli/pkg/store"
)

// App owns all mutable state for one tagdeck session.
type App struct {
	Store     *store.Store
	Favorites *library.FavoritesStore
	Quality   *library.QualityStore
	Engine    *selection.Engine

	settings *models.Settings
	logger   *zap.Logger
}

// New loads every persisted blob from the .tagdeck directory and
// reconciles the selection engine against the loaded policy.
func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		Store:     store.Open(logger),
		Favorites: library.OpenFavorites(logger),
		Quality:   library.OpenQuality(logger),
		settings:  files.ReadSettings(),
		logger:    logger,
	}
	a.Engine = selection.New(func() models.Word {
		return selection.ResolveMarker(a.Store.Words())
	})
	a.reconcile()
	return a
}

// Settings returns a copy of the current settings.
func (a *App) Settings() models.Settings {
	return *a.settings
}

// UpdateSettings applies fn to the settings and re-runs the auto-NSFW
// reconciliation so the marker invariant holds after every policy
// flip. The in-memory settings stay authoritative: reconciliation runs
// even when persisting them fails.
func (a *App) UpdateSettings(fn func(*models.Settings)) error {
	fn(a.settings)
	a.reconcile()
	return files.WriteSettings(a.settings)
}

func (a *App) reconcile() {
	a.Engine.Reconcile(a.settings.NSFWEnabled, a.settings.AutoNSFW)
}

// CopyText renders the copy output for one list: the active quality
// template's text (when visible under the NSFW policy) prepended to
// the list's own text.
func (a *App) CopyText(listType string) string {
	base := prompt.Format(a.Engine.List(listType))
	quality := ""
	if t, ok := a.Quality.Selected(listType); ok {
		if a.settings.NSFWEnabled || !t.NSFW {
			quality = prompt.Format(t.Words)
		}
	}
	return prompt.WithQuality(quality, base)
}

// CombinedCopyText renders both lists with their literal prefixes.
func (a *App) CombinedCopyText() string {
	return prompt.Combined(a.CopyText(models.TypePositive), a.CopyText(models.TypeNegative))
}

// ApplyFavorite replaces a selection list with a stored favorite.
func (a *App) ApplyFavorite(id, listType string) error {
	fav, ok := a.Favorites.Get(id)
	if !ok {
		return fmt.Errorf("favorite %s does not exist", id)
	}
	a.Engine.ApplyFavorite(fav, listType)
	return nil
}

// ApplyCard merges a stored card into a selection list.
func (a *App) ApplyCard(id, listType string) error {
	card, ok := a.Store.Card(id)
	if !ok {
		return fmt.Errorf("card %s does not exist", id)
	}
	a.Engine.ApplyCard(card, listType, a.Store.Lookup())
	return nil
}

// SaveFavorite snapshots a selection list as a favorite.
func (a *App) SaveFavorite(name, listType string) (models.PromptFavorite, error) {
	return a.Favorites.Add(name, listType, a.Engine.List(listType))
}

// SaveQuality snapshots a selection list as a quality template.
func (a *App) SaveQuality(name, listType string) (models.PromptFavorite, error) {
	return a.Quality.Add(name, listType, a.Engine.List(listType))
}

// Import replaces the whole document through the store choke-point;
// normalization and the undo snapshot both apply.
func (a *App) Import(d models.DataStore) {
	a.Store.SetData(d)
	a.reconcile()
}

// Close flushes the document store.
func (a *App) Close() error {
	return a.Store.Close()
}
