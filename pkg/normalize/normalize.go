// Package normalize repairs a loaded data bundle before it enters the
// document store. Loading never fails wholesale: malformed collections
// fall back to empty, malformed entries are dropped, and dangling
// references introduced by duplicate folder ids are re-pointed. The
// trade-off is deliberate: keep the app usable over surfacing
// fine-grained load errors.
package normalize

import (
	"fmt"
	"math"
	"strings"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// Document validates and repairs a document in place, returning the
// repaired copy. It never fails.
func Document(d models.DataStore) models.DataStore {
	out := d.Clone()
	if out.Folders == nil {
		out.Folders = []models.Folder{}
	}
	if out.Words == nil {
		out.Words = []models.Word{}
	}
	if out.Templates == nil {
		out.Templates = []models.Template{}
	}
	if out.Cards == nil {
		out.Cards = []models.Card{}
	}

	dedupeFolderIDs(&out)

	for i := range out.Words {
		foldLegacyTemplateID(&out.Words[i])
	}

	for i := range out.Cards {
		out.Cards[i].Words = repairCardRefs(out.Cards[i].Words)
		if !models.ValidType(out.Cards[i].Type) {
			out.Cards[i].Type = models.TypePositive
		}
	}

	return out
}

// dedupeFolderIDs walks folders in order; the first occurrence of an
// id keeps it, later occurrences get the first unused "_N" suffix.
// Every parentId/folderId that referenced the original base id is
// re-pointed to the first-assigned unique id, so no reference dangles
// after a repair.
func dedupeFolderIDs(d *models.DataStore) {
	seen := make(map[string]bool, len(d.Folders))
	firstAssigned := make(map[string]string, len(d.Folders))

	for i := range d.Folders {
		base := d.Folders[i].ID
		id := base
		for n := 1; seen[id]; n++ {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		seen[id] = true
		d.Folders[i].ID = id
		if _, ok := firstAssigned[base]; !ok {
			firstAssigned[base] = id
		}
	}

	remap := func(ref string) string {
		if ref == "" || ref == models.RootFolderID {
			return ref
		}
		if to, ok := firstAssigned[ref]; ok {
			return to
		}
		return ref
	}
	for i := range d.Folders {
		d.Folders[i].ParentID = remap(d.Folders[i].ParentID)
	}
	for i := range d.Words {
		d.Words[i].FolderID = remap(d.Words[i].FolderID)
	}
	for i := range d.Cards {
		d.Cards[i].FolderID = remap(d.Cards[i].FolderID)
	}
}

func foldLegacyTemplateID(w *models.Word) {
	if w.TemplateID == "" {
		return
	}
	found := false
	for _, id := range w.TemplateIDs {
		if id == w.TemplateID {
			found = true
			break
		}
	}
	if !found {
		w.TemplateIDs = append(w.TemplateIDs, w.TemplateID)
	}
	w.TemplateID = ""
}

// repairCardRefs drops refs without a word id and coerces repeat to an
// integer > 1 or clears it.
func repairCardRefs(refs []models.CardWordRef) []models.CardWordRef {
	out := make([]models.CardWordRef, 0, len(refs))
	for _, r := range refs {
		if r.WordID == "" {
			continue
		}
		if r.Repeat <= 1 {
			r.Repeat = 0
		}
		out = append(out, r)
	}
	return out
}

// CardNSFW recomputes a card's nsfw flag from its refs, used when the
// loaded value was not an explicit boolean.
func CardNSFW(refs []models.CardWordRef) bool {
	for _, r := range refs {
		if r.NSFW {
			return true
		}
	}
	return false
}

// Favorites repairs a favorites (or quality templates) collection:
// entries without an id, a name, a valid type, or a words array are
// dropped; words themselves are repaired individually.
func Favorites(favs []models.PromptFavorite) []models.PromptFavorite {
	out := make([]models.PromptFavorite, 0, len(favs))
	for _, f := range favs {
		if f.ID == "" || f.Name == "" || !models.ValidType(f.Type) || f.Words == nil {
			continue
		}
		f.Words = repairSelection(f.Words, f.Type)
		out = append(out, f)
	}
	return out
}

// SelectionNSFW reports whether any word in the snapshot is nsfw, used
// to backfill a favorite's missing nsfw flag.
func SelectionNSFW(words []models.SelectedWord) bool {
	for _, w := range words {
		if w.NSFW {
			return true
		}
	}
	return false
}

func repairSelection(words []models.SelectedWord, listType string) []models.SelectedWord {
	out := make([]models.SelectedWord, 0, len(words))
	for _, w := range words {
		if w.ID == "" {
			continue
		}
		w.Type = listType
		w.Strength = Strength(w.Strength)
		if w.Repeat <= 1 {
			w.Repeat = 0
		}
		out = append(out, w)
	}
	return out
}

// Strength clamps a strength value to [0.5, 1.5] and rounds it to one
// decimal. Zero and non-finite inputs fall back to 1.0.
func Strength(s float64) float64 {
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1.0
	}
	if s < 0.5 {
		s = 0.5
	}
	if s > 1.5 {
		s = 1.5
	}
	return math.Round(s*10) / 10
}

// Repeat coerces a repeat count to a positive integer. Anything not
// finite and >= 1 collapses to 1.
func Repeat(r float64) int {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}
	n := int(math.Round(r))
	if n < 1 {
		return 1
	}
	return n
}

// FolderName canonicalizes a name for sibling-collision checks:
// trimmed and lowercased.
func FolderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
