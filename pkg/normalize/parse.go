package normalize

import (
	"encoding/json"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// ParseDocument decodes a persisted document blob, tolerating missing
// or mistyped collections and malformed entries. The result always
// satisfies the document invariants; it is never an error.
func ParseDocument(data []byte) models.DataStore {
	var raw struct {
		Folders   json.RawMessage `json:"folders"`
		Words     json.RawMessage `json:"words"`
		Templates json.RawMessage `json:"templates"`
		Cards     json.RawMessage `json:"cards"`
	}
	// A completely unparseable blob degrades to an empty document.
	_ = json.Unmarshal(data, &raw)

	d := models.DataStore{
		Folders:   decodeEach[models.Folder](raw.Folders),
		Words:     decodeEach[models.Word](raw.Words),
		Templates: decodeEach[models.Template](raw.Templates),
		Cards:     parseCards(raw.Cards),
	}
	return Document(d)
}

// decodeEach decodes a JSON array element by element so one malformed
// entry drops without taking the rest of the collection with it.
func decodeEach[T any](data json.RawMessage) []T {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return []T{}
	}
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// rawCard mirrors models.Card but keeps nsfw loose: legacy exports
// stored it as a string or omitted it, in which case it is recomputed
// from the refs.
type rawCard struct {
	models.Card
	NSFW  json.RawMessage `json:"nsfw"`
	Words []rawCardRef    `json:"words"`
}

// rawCardRef keeps repeat loose: legacy blobs stored fractional
// counts, which must coerce instead of taking the whole card down.
type rawCardRef struct {
	models.CardWordRef
	Repeat json.RawMessage `json:"repeat"`
}

func parseCards(data json.RawMessage) []models.Card {
	raws := decodeEach[rawCard](data)
	out := make([]models.Card, 0, len(raws))
	for _, rc := range raws {
		c := rc.Card
		c.Words = repairCardRefs(looseCardRefs(rc.Words))
		var b bool
		if err := json.Unmarshal(rc.NSFW, &b); err == nil {
			c.NSFW = b
		} else {
			c.NSFW = CardNSFW(c.Words)
		}
		out = append(out, c)
	}
	return out
}

func looseCardRefs(raws []rawCardRef) []models.CardWordRef {
	out := make([]models.CardWordRef, 0, len(raws))
	for _, r := range raws {
		ref := r.CardWordRef
		ref.Repeat = looseRepeat(r.Repeat)
		out = append(out, ref)
	}
	return out
}

// looseRepeat coerces a repeat of any JSON type to an integer count;
// non-numeric values clear it.
func looseRepeat(data json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return 0
	}
	if n := Repeat(f); n > 1 {
		return n
	}
	return 0
}

// rawFavorite accepts both the current {type, words} shape and the
// legacy split shape {positive, negative}.
type rawFavorite struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Words    []rawSelectedWord `json:"words"`
	NSFW     json.RawMessage   `json:"nsfw"`
	Positive []rawSelectedWord `json:"positive"`
	Negative []rawSelectedWord `json:"negative"`
}

// rawSelectedWord keeps repeat loose for the same reason rawCardRef
// does.
type rawSelectedWord struct {
	models.SelectedWord
	Repeat json.RawMessage `json:"repeat"`
}

func looseSelection(raws []rawSelectedWord) []models.SelectedWord {
	if raws == nil {
		return nil
	}
	out := make([]models.SelectedWord, 0, len(raws))
	for _, r := range raws {
		w := r.SelectedWord
		w.Repeat = looseRepeat(r.Repeat)
		out = append(out, w)
	}
	return out
}

// ParseFavorites decodes a favorites (or quality templates) blob.
// Legacy split-shape records are migrated into up to two entries,
// "<id>_pos" and "<id>_neg", with the list type suffixed into the
// display name.
func ParseFavorites(data []byte) []models.PromptFavorite {
	raws := decodeEach[rawFavorite](data)
	out := make([]models.PromptFavorite, 0, len(raws))
	for _, rf := range raws {
		if models.ValidType(rf.Type) {
			out = append(out, typedFavorite(rf))
			continue
		}
		// Legacy split shape: one record per non-empty side.
		if len(rf.Positive) > 0 {
			words := looseSelection(rf.Positive)
			out = append(out, models.PromptFavorite{
				ID:    rf.ID + "_pos",
				Name:  rf.Name + " (positive)",
				Type:  models.TypePositive,
				Words: words,
				NSFW:  SelectionNSFW(words),
			})
		}
		if len(rf.Negative) > 0 {
			words := looseSelection(rf.Negative)
			out = append(out, models.PromptFavorite{
				ID:    rf.ID + "_neg",
				Name:  rf.Name + " (negative)",
				Type:  models.TypeNegative,
				Words: words,
				NSFW:  SelectionNSFW(words),
			})
		}
	}
	return Favorites(out)
}

func typedFavorite(rf rawFavorite) models.PromptFavorite {
	f := models.PromptFavorite{
		ID:    rf.ID,
		Name:  rf.Name,
		Type:  rf.Type,
		Words: looseSelection(rf.Words),
	}
	var b bool
	if err := json.Unmarshal(rf.NSFW, &b); err == nil {
		f.NSFW = b
	} else {
		f.NSFW = SelectionNSFW(f.Words)
	}
	return f
}
