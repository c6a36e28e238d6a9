package selection

import (
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// WordLookup resolves a word id against the document's word set.
type WordLookup func(id string) (models.Word, bool)

// ApplyFavorite replaces the target list with the favorite's words,
// retagged to the target type. Favorites are whole-prompt snapshots,
// so application is destructive, unlike cards.
func (e *Engine) ApplyFavorite(fav models.PromptFavorite, listType string) {
	words := models.CloneSelection(fav.Words)
	for i := range words {
		words[i].Type = listType
	}
	e.setList(listType, words)
	if listType == models.TypePositive {
		e.reseedMarker()
	}
}

// ApplyCard merges a card's word refs into the target list. Cards are
// compositional building blocks, so application is additive: a ref
// whose word is already selected raises that entry's repeat to the max
// of the two counts instead of duplicating it.
//
// Refs resolve through lookup first; a deleted word falls back to a
// synthetic word rebuilt from the ref's denormalized fields, and a ref
// with neither is skipped.
func (e *Engine) ApplyCard(card models.Card, listType string, lookup WordLookup) {
	list := e.List(listType)
	for _, ref := range card.Words {
		word, ok := resolveRef(ref, lookup)
		if !ok {
			continue
		}

		incoming := ref.Repeat
		if incoming < 1 {
			incoming = 1
		}

		merged := false
		for i := range list {
			if list[i].ID != word.ID {
				continue
			}
			existing := list[i].Repeat
			if existing < 1 {
				existing = 1
			}
			if incoming > existing {
				list[i].Repeat = incoming
			}
			merged = true
			break
		}
		if merged {
			continue
		}

		sel := models.SelectedWord{
			Word:     word.Clone(),
			Strength: normalize.Strength(ref.Strength),
			Type:     listType,
		}
		if ref.Repeat > 1 {
			sel.Repeat = ref.Repeat
		}
		list = append(list, sel)
	}
	e.setList(listType, list)
}

func resolveRef(ref models.CardWordRef, lookup WordLookup) (models.Word, bool) {
	if lookup != nil {
		if w, ok := lookup(ref.WordID); ok {
			return w, true
		}
	}
	if ref.ValueEN == "" && ref.LabelJP == "" {
		return models.Word{}, false
	}
	return models.Word{
		ID:      ref.WordID,
		LabelJP: ref.LabelJP,
		ValueEN: ref.ValueEN,
		NSFW:    ref.NSFW,
		Note:    ref.Note,
	}, true
}
