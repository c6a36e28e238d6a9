package store

import (
	"testing"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func TestDeriveWord(t *testing.T) {
	word := models.Word{ID: "w1", LabelJP: "髪", ValueEN: "hair"}

	tmpl := models.Template{
		ID:   "t1",
		Name: "color",
		Options: []models.TemplateOption{
			{ID: "o1", Label: "赤", Value: "red"},
			{ID: "o2", Label: "青", Value: "blue"},
		},
		SpaceEnabled: true,
	}

	derived, err := DeriveWord(word, tmpl, "o1", "")
	if err != nil {
		t.Fatalf("DeriveWord failed: %v", err)
	}
	if derived.ValueEN != "red hair" {
		t.Errorf("value = %q, want %q", derived.ValueEN, "red hair")
	}
	if derived.ID == word.ID {
		t.Error("derived word must get a synthesized id")
	}

	// The stored word is untouched.
	if word.ValueEN != "hair" {
		t.Error("DeriveWord must not mutate its input")
	}
}

func TestDeriveWordSuffix(t *testing.T) {
	word := models.Word{ID: "w1", LabelJP: "目", ValueEN: "eyes"}
	tmpl := models.Template{
		ID:       "t1",
		Name:     "state",
		Options:  []models.TemplateOption{{ID: "o1", Label: "閉じた", Value: "closed"}},
		Position: "after",
	}

	derived, err := DeriveWord(word, tmpl, "o1", "")
	if err != nil {
		t.Fatal(err)
	}
	if derived.ValueEN != "eyesclosed" {
		t.Errorf("value = %q, want suffix without space when spaceEnabled is off", derived.ValueEN)
	}
}

func TestDeriveWordFreeText(t *testing.T) {
	word := models.Word{ID: "w1", ValueEN: "dress"}
	tmpl := models.Template{ID: "t1", Name: "free", AllowFree: true, SpaceEnabled: true}

	derived, err := DeriveWord(word, tmpl, "", "sparkling")
	if err != nil {
		t.Fatal(err)
	}
	if derived.ValueEN != "sparkling dress" {
		t.Errorf("value = %q, want %q", derived.ValueEN, "sparkling dress")
	}

	if _, err := DeriveWord(word, tmpl, "", "   "); err == nil {
		t.Error("blank free text should be rejected")
	}
	if _, err := DeriveWord(word, tmpl, "nope", ""); err == nil {
		t.Error("unknown option id should be rejected")
	}
}

func TestDeriveWordDefaultOption(t *testing.T) {
	word := models.Word{ID: "w1", ValueEN: "hair"}
	tmpl := models.Template{
		ID:              "t1",
		Name:            "color",
		Options:         []models.TemplateOption{{ID: "o1", Value: "silver"}},
		DefaultOptionID: "o1",
		SpaceEnabled:    true,
	}
	derived, err := DeriveWord(word, tmpl, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if derived.ValueEN != "silver hair" {
		t.Errorf("value = %q, want default option applied", derived.ValueEN)
	}
}

func TestDeleteTemplateStripsReferences(t *testing.T) {
	s, _ := newTestStore(t, models.DataStore{})
	tmpl, _ := s.AddTemplate(models.Template{Name: "color"})
	keep, _ := s.AddTemplate(models.Template{Name: "style"})

	w, _ := s.AddWord(models.Word{FolderID: "root", LabelJP: "髪", ValueEN: "hair",
		TemplateIDs: []string{tmpl.ID, keep.ID}})

	if err := s.DeleteTemplate(tmpl.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Word(w.ID)
	if len(got.TemplateIDs) != 1 || got.TemplateIDs[0] != keep.ID {
		t.Errorf("templateIds = %v, want only %s", got.TemplateIDs, keep.ID)
	}
}
