// Package selection owns the two transient prompt lists. The engine
// is in-memory only: lists are built up during a session and rendered
// through pkg/prompt; nothing here is persisted except via favorites.
package selection

import (
	"fmt"
	"strings"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// markerKey is the case-insensitive key that identifies the NSFW
// marker word in the word set (by id, label, or value).
const markerKey = "nsfw"

// MarkerResolver finds the NSFW marker word in the current word set.
type MarkerResolver func() models.Word

// Engine holds the positive and negative selection lists and enforces
// the auto-NSFW marker invariant.
type Engine struct {
	positive []models.SelectedWord
	negative []models.SelectedWord

	resolve MarkerResolver

	// autoActive is true while (global NSFW enabled AND auto policy
	// on); markerID identifies the engine-managed marker entry.
	autoActive bool
	markerID   string
}

// New returns an empty engine. A nil resolver falls back to the
// synthetic sentinel marker.
func New(resolve MarkerResolver) *Engine {
	if resolve == nil {
		resolve = func() models.Word { return ResolveMarker(nil) }
	}
	return &Engine{
		positive: []models.SelectedWord{},
		negative: []models.SelectedWord{},
		resolve:  resolve,
	}
}

// List returns the selection list for the given type. The returned
// slice is the live list; callers must not mutate it.
func (e *Engine) List(listType string) []models.SelectedWord {
	if listType == models.TypeNegative {
		return e.negative
	}
	return e.positive
}

func (e *Engine) setList(listType string, list []models.SelectedWord) {
	if listType == models.TypeNegative {
		e.negative = list
	} else {
		e.positive = list
	}
}

// Add appends a word to a list. Adding an id already present in that
// list is a no-op, so repeated adds are idempotent and ordering stays
// insertion order until an explicit reorder.
func (e *Engine) Add(word models.Word, listType string, strength float64) {
	list := e.List(listType)
	for _, w := range list {
		if w.ID == word.ID {
			return
		}
	}
	e.setList(listType, append(list, models.SelectedWord{
		Word:     word.Clone(),
		Strength: normalize.Strength(strength),
		Type:     listType,
	}))
}

// Remove deletes an entry by id. The auto-NSFW marker cannot be
// removed from the positive list while the policy is active; it is
// engine-managed state, not a user selection.
func (e *Engine) Remove(id, listType string) error {
	if e.autoActive && listType == models.TypePositive && id == e.markerID {
		return fmt.Errorf("the NSFW marker is managed automatically while auto-NSFW is on")
	}
	list := e.List(listType)
	for i, w := range list {
		if w.ID == id {
			e.setList(listType, append(list[:i:i], list[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("word %s is not selected", id)
}

// UpdateStrength replaces an entry's strength in place, clamped to the
// valid range.
func (e *Engine) UpdateStrength(id, listType string, strength float64) {
	list := e.List(listType)
	for i := range list {
		if list[i].ID == id {
			list[i].Strength = normalize.Strength(strength)
			return
		}
	}
}

// Patch is a partial in-place update of a selected entry.
type Patch struct {
	Strength *float64
	Repeat   *int
}

// Update applies a partial patch to an entry by id.
func (e *Engine) Update(id, listType string, patch Patch) {
	list := e.List(listType)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if patch.Strength != nil {
			list[i].Strength = normalize.Strength(*patch.Strength)
		}
		if patch.Repeat != nil {
			r := *patch.Repeat
			if r <= 1 {
				r = 0
			}
			list[i].Repeat = r
		}
		return
	}
}

// Reorder replaces a list with a caller-supplied permutation of the
// same entries. Used by drag-reordering; the entries themselves are
// preserved, only their positions change.
func (e *Engine) Reorder(listType string, ordered []models.SelectedWord) error {
	current := e.List(listType)
	if len(ordered) != len(current) {
		return fmt.Errorf("reorder changed list length: %d != %d", len(ordered), len(current))
	}
	ids := make(map[string]bool, len(current))
	for _, w := range current {
		ids[w.ID] = true
	}
	for _, w := range ordered {
		if !ids[w.ID] {
			return fmt.Errorf("reorder introduced unknown word %s", w.ID)
		}
	}
	e.setList(listType, ordered)
	return nil
}

// Clear empties a list. While the auto policy is active, clearing
// positive re-seeds the marker instead of leaving the list truly
// empty.
func (e *Engine) Clear(listType string) {
	e.setList(listType, []models.SelectedWord{})
	if listType == models.TypePositive {
		e.reseedMarker()
	}
}

// ClearAll empties both lists, re-seeding the positive marker when the
// auto policy is active.
func (e *Engine) ClearAll() {
	e.positive = []models.SelectedWord{}
	e.negative = []models.SelectedWord{}
	e.reseedMarker()
}

// ResolveMarker searches words case-insensitively for id, label, or
// value equal to "nsfw", falling back to a synthetic sentinel word.
func ResolveMarker(words []models.Word) models.Word {
	for _, w := range words {
		if strings.EqualFold(w.ID, markerKey) ||
			strings.EqualFold(w.LabelJP, markerKey) ||
			strings.EqualFold(w.ValueEN, markerKey) {
			return w
		}
	}
	return models.Word{
		ID:      markerKey,
		LabelJP: "NSFW",
		ValueEN: markerKey,
		NSFW:    true,
	}
}

// Reconcile enforces the auto-NSFW invariant as a pure function of the
// current policy state: positive contains exactly one marker entry iff
// (nsfwEnabled AND autoOn), never a duplicate. Call it after every
// policy flip and after operations that rebuild the positive list.
func (e *Engine) Reconcile(nsfwEnabled, autoOn bool) {
	active := nsfwEnabled && autoOn
	if !active {
		e.dropMarker()
		e.autoActive = false
		e.markerID = ""
		return
	}

	marker := e.resolve()
	// Marker identity may have changed (a real "nsfw" word added or
	// removed since the last reconcile); drop the stale entry first.
	if e.markerID != "" && e.markerID != marker.ID {
		e.dropMarker()
	}
	e.autoActive = true
	e.markerID = marker.ID
	e.seedMarker(marker)
}

func (e *Engine) reseedMarker() {
	if !e.autoActive {
		return
	}
	e.seedMarker(e.resolve())
}

// seedMarker guarantees exactly one marker entry in positive.
func (e *Engine) seedMarker(marker models.Word) {
	found := false
	kept := e.positive[:0]
	for _, w := range e.positive {
		if w.ID == marker.ID {
			if found {
				continue
			}
			found = true
		}
		kept = append(kept, w)
	}
	e.positive = kept
	if !found {
		e.positive = append(e.positive, models.SelectedWord{
			Word:     marker.Clone(),
			Strength: 1.0,
			Type:     models.TypePositive,
		})
	}
}

func (e *Engine) dropMarker() {
	if e.markerID == "" {
		return
	}
	kept := e.positive[:0]
	for _, w := range e.positive {
		if w.ID == e.markerID {
			continue
		}
		kept = append(kept, w)
	}
	e.positive = kept
}
