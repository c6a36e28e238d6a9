package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func TestDocumentDefaultsEmptyCollections(t *testing.T) {
	d := Document(models.DataStore{})
	if d.Folders == nil || d.Words == nil || d.Templates == nil || d.Cards == nil {
		t.Error("normalized document should have no nil collections")
	}
}

func TestFolderIDDeduplication(t *testing.T) {
	d := Document(models.DataStore{
		Folders: []models.Folder{
			{ID: "a", Name: "first"},
			{ID: "a", Name: "second"},
			{ID: "a", Name: "third"},
			{ID: "b", Name: "child", ParentID: "a"},
		},
		Words: []models.Word{
			{ID: "w1", FolderID: "a", LabelJP: "word", ValueEN: "word"},
		},
	})

	seen := map[string]bool{}
	for _, f := range d.Folders {
		if seen[f.ID] {
			t.Errorf("duplicate folder id survived normalization: %s", f.ID)
		}
		seen[f.ID] = true
	}

	want := []string{"a", "a_1", "a_2", "b"}
	var got []string
	for _, f := range d.Folders {
		got = append(got, f.ID)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("folder ids mismatch (-want +got):\n%s", diff)
	}

	// Every reference must point at the first-assigned id and stay
	// resolvable.
	if d.Words[0].FolderID != "a" {
		t.Errorf("word folderId = %s, want a", d.Words[0].FolderID)
	}
	for _, f := range d.Folders {
		if f.ParentID == "" || f.ParentID == models.RootFolderID {
			continue
		}
		if !seen[f.ParentID] {
			t.Errorf("dangling parentId after dedup: %s", f.ParentID)
		}
	}
}

func TestFolderIDDeduplicationSuffixCollision(t *testing.T) {
	// "a_1" is already taken, so the duplicate "a" must skip to "a_2".
	d := Document(models.DataStore{
		Folders: []models.Folder{
			{ID: "a", Name: "first"},
			{ID: "a_1", Name: "taken"},
			{ID: "a", Name: "second"},
		},
	})
	if d.Folders[2].ID != "a_2" {
		t.Errorf("duplicate id = %s, want a_2", d.Folders[2].ID)
	}
}

func TestCardRefRepair(t *testing.T) {
	d := Document(models.DataStore{
		Cards: []models.Card{{
			ID:   "c1",
			Name: "card",
			Type: "positive",
			Words: []models.CardWordRef{
				{WordID: "w1", Repeat: 3},
				{WordID: "", ValueEN: "orphan"},
				{WordID: "w2", Repeat: -2},
				{WordID: "w3", Repeat: 1},
			},
		}},
	})

	refs := d.Cards[0].Words
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3 (missing wordId dropped)", len(refs))
	}
	if refs[0].Repeat != 3 {
		t.Errorf("valid repeat mangled: %d", refs[0].Repeat)
	}
	if refs[1].Repeat != 0 || refs[2].Repeat != 0 {
		t.Errorf("repeat <= 1 should be cleared, got %d and %d", refs[1].Repeat, refs[2].Repeat)
	}
}

func TestLegacyTemplateIDFolded(t *testing.T) {
	d := Document(models.DataStore{
		Words: []models.Word{
			{ID: "w1", LabelJP: "a", TemplateID: "t1"},
			{ID: "w2", LabelJP: "b", TemplateID: "t1", TemplateIDs: []string{"t1", "t2"}},
		},
	})
	if diff := cmp.Diff([]string{"t1"}, d.Words[0].TemplateIDs); diff != "" {
		t.Errorf("legacy templateId not folded (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"t1", "t2"}, d.Words[1].TemplateIDs); diff != "" {
		t.Errorf("templateIds should not gain duplicates (-want +got):\n%s", diff)
	}
	if d.Words[0].TemplateID != "" || d.Words[1].TemplateID != "" {
		t.Error("legacy templateId field should be cleared")
	}
}

func TestFavoritesRepair(t *testing.T) {
	favs := Favorites([]models.PromptFavorite{
		{ID: "f1", Name: "good", Type: "positive", Words: []models.SelectedWord{}},
		{ID: "", Name: "no id", Type: "positive", Words: []models.SelectedWord{}},
		{ID: "f2", Name: "", Type: "positive", Words: []models.SelectedWord{}},
		{ID: "f3", Name: "bad type", Type: "both", Words: []models.SelectedWord{}},
		{ID: "f4", Name: "nil words", Type: "negative"},
	})
	if len(favs) != 1 || favs[0].ID != "f1" {
		t.Errorf("got %d favorites, want only f1", len(favs))
	}
}

func TestFavoriteWordRepair(t *testing.T) {
	favs := Favorites([]models.PromptFavorite{{
		ID:   "f1",
		Name: "fav",
		Type: "negative",
		Words: []models.SelectedWord{
			{Word: models.Word{ID: "w1", ValueEN: "cat"}, Strength: 9.9, Type: "positive", Repeat: -3},
			{Word: models.Word{ID: ""}, Strength: 1.0},
		},
	}})
	if len(favs[0].Words) != 1 {
		t.Fatalf("got %d words, want 1", len(favs[0].Words))
	}
	w := favs[0].Words[0]
	if w.Type != "negative" {
		t.Errorf("word type = %s, want retagged to negative", w.Type)
	}
	if w.Strength != 1.5 {
		t.Errorf("strength = %v, want clamped to 1.5", w.Strength)
	}
	if w.Repeat != 0 {
		t.Errorf("repeat = %d, want cleared", w.Repeat)
	}
}

func TestStrengthCoercion(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 1.0},
		{1.0, 1.0},
		{1.25, 1.3},
		{0.2, 0.5},
		{2.0, 1.5},
		{1.2, 1.2},
	}
	for _, tt := range tests {
		if got := Strength(tt.in); got != tt.want {
			t.Errorf("Strength(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRepeatCoercion(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{2.6, 3},
		{3, 3},
	}
	for _, tt := range tests {
		if got := Repeat(tt.in); got != tt.want {
			t.Errorf("Repeat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
