package store

import (
	"testing"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func TestSnapshotCard(t *testing.T) {
	selection := []models.SelectedWord{
		{Word: models.Word{ID: "w1", LabelJP: "猫", ValueEN: "cat", NSFW: true}, Strength: 1.2, Repeat: 3},
		{Word: models.Word{ID: "w2", LabelJP: "犬", ValueEN: "dog"}, Strength: 1.0},
		{Word: models.Word{ID: "card:x", CardID: "x", CardName: "nested"}, Strength: 1.0},
	}

	card := SnapshotCard("pets", "", models.TypePositive, selection)

	if len(card.Words) != 2 {
		t.Fatalf("got %d refs, want 2 (card tokens do not nest)", len(card.Words))
	}
	ref := card.Words[0]
	if ref.WordID != "w1" || ref.ValueEN != "cat" || ref.LabelJP != "猫" {
		t.Errorf("ref not denormalized: %+v", ref)
	}
	if ref.Strength != 1.2 || ref.Repeat != 3 {
		t.Errorf("ref overrides = {%v %d}, want {1.2 3}", ref.Strength, ref.Repeat)
	}
	if card.Words[1].Repeat != 0 {
		t.Error("repeat of 1 should be omitted from the ref")
	}
	if !card.NSFW {
		t.Error("card nsfw should be computed from its refs")
	}
	if card.FolderID != models.RootFolderID {
		t.Errorf("empty folder should attach to root, got %s", card.FolderID)
	}
}

func TestCardToken(t *testing.T) {
	card := models.Card{
		ID:   "c1",
		Name: "scenery",
		Type: models.TypePositive,
		Words: []models.CardWordRef{
			{WordID: "w1", ValueEN: "mountain", Repeat: 2},
			{WordID: "w2", ValueEN: "stale"},
			{WordID: "gone"},
		},
	}
	lookup := func(id string) (models.Word, bool) {
		if id == "w2" {
			return models.Word{ID: "w2", ValueEN: "lake"}, true
		}
		return models.Word{}, false
	}

	token := CardToken(card, lookup)
	if token.CardID != "c1" || token.CardName != "scenery" {
		t.Errorf("token identity = {%s %s}", token.CardID, token.CardName)
	}
	// Live words win over the denormalized snapshot; refs with neither
	// are skipped.
	if token.CardPrompt != "mountain, mountain, lake" {
		t.Errorf("prompt = %q, want %q", token.CardPrompt, "mountain, mountain, lake")
	}
}

func TestCardCRUD(t *testing.T) {
	s, _ := newTestStore(t, models.DataStore{})

	c1, err := s.AddCard(models.Card{Name: "a", Type: models.TypePositive,
		Words: []models.CardWordRef{{WordID: "w1", ValueEN: "x"}}})
	if err != nil {
		t.Fatal(err)
	}
	c2, _ := s.AddCard(models.Card{Name: "a", Type: models.TypePositive})
	if c2.ID == c1.ID {
		t.Error("cards always append; same-named cards coexist with distinct ids")
	}
	if c1.CreatedAt == 0 {
		t.Error("createdAt should be stamped")
	}

	c1.Name = "renamed"
	if err := s.UpdateCard(c1); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Card(c1.ID)
	if got.Name != "renamed" {
		t.Errorf("name = %s", got.Name)
	}

	if err := s.DeleteCard(c1.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Card(c1.ID); ok {
		t.Error("card should be gone")
	}
	if err := s.DeleteCard(c1.ID); err == nil {
		t.Error("deleting a missing card should error")
	}
}

func TestAddCardValidation(t *testing.T) {
	s, _ := newTestStore(t, models.DataStore{})
	if _, err := s.AddCard(models.Card{Name: "", Type: models.TypePositive}); err == nil {
		t.Error("empty name should be rejected")
	}
	if _, err := s.AddCard(models.Card{Name: "x", Type: "both"}); err == nil {
		t.Error("invalid type should be rejected")
	}
}
