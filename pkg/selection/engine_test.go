package selection

import (
	"testing"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func testWord(id string) models.Word {
	return models.Word{ID: id, FolderID: "root", LabelJP: id, ValueEN: id}
}

func newTestEngine(words ...models.Word) *Engine {
	return New(func() models.Word {
		return ResolveMarker(words)
	})
}

func ids(list []models.SelectedWord) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = w.ID
	}
	return out
}

func TestAddIsIdempotent(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.Add(testWord("w1"), models.TypePositive, 1.4)
	e.Add(testWord("w2"), models.TypePositive, 1.0)

	list := e.List(models.TypePositive)
	if len(list) != 2 {
		t.Fatalf("got %d entries, want 2", len(list))
	}
	if list[0].Strength != 1.0 {
		t.Error("second add of the same id must be a no-op, not a strength update")
	}
	if list[0].ID != "w1" || list[1].ID != "w2" {
		t.Error("entries must keep insertion order")
	}
}

func TestListsAreIndependent(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.Add(testWord("w1"), models.TypeNegative, 1.0)

	if len(e.List(models.TypePositive)) != 1 || len(e.List(models.TypeNegative)) != 1 {
		t.Error("the same word may sit in both lists at once")
	}
}

func TestRemove(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.Add(testWord("w2"), models.TypePositive, 1.0)

	if err := e.Remove("w1", models.TypePositive); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := ids(e.List(models.TypePositive)); len(got) != 1 || got[0] != "w2" {
		t.Errorf("list after remove = %v, want [w2]", got)
	}
	if err := e.Remove("missing", models.TypePositive); err == nil {
		t.Error("removing an unselected id should error")
	}
}

func TestUpdateStrengthClamps(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.UpdateStrength("w1", models.TypePositive, 7.0)
	if got := e.List(models.TypePositive)[0].Strength; got != 1.5 {
		t.Errorf("strength = %v, want clamped to 1.5", got)
	}
	e.UpdateStrength("w1", models.TypePositive, 0.1)
	if got := e.List(models.TypePositive)[0].Strength; got != 0.5 {
		t.Errorf("strength = %v, want clamped to 0.5", got)
	}
}

func TestUpdatePatch(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)

	strength := 1.2
	repeat := 3
	e.Update("w1", models.TypePositive, Patch{Strength: &strength, Repeat: &repeat})

	got := e.List(models.TypePositive)[0]
	if got.Strength != 1.2 || got.Repeat != 3 {
		t.Errorf("patched entry = {%v %d}, want {1.2 3}", got.Strength, got.Repeat)
	}

	one := 1
	e.Update("w1", models.TypePositive, Patch{Repeat: &one})
	if got := e.List(models.TypePositive)[0].Repeat; got != 0 {
		t.Errorf("repeat of 1 should clear the field, got %d", got)
	}
}

func TestReorder(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.Add(testWord("w2"), models.TypePositive, 1.0)
	e.Add(testWord("w3"), models.TypePositive, 1.0)

	list := e.List(models.TypePositive)
	reordered := []models.SelectedWord{list[2], list[0], list[1]}
	if err := e.Reorder(models.TypePositive, reordered); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	if got := ids(e.List(models.TypePositive)); got[0] != "w3" || got[1] != "w1" || got[2] != "w2" {
		t.Errorf("order after reorder = %v", got)
	}

	if err := e.Reorder(models.TypePositive, reordered[:2]); err == nil {
		t.Error("reorder that drops entries should be rejected")
	}
	bogus := append([]models.SelectedWord{}, reordered...)
	bogus[0].ID = "intruder"
	if err := e.Reorder(models.TypePositive, bogus); err == nil {
		t.Error("reorder that introduces entries should be rejected")
	}
}

func TestAutoNSFWReconcileAllCombinations(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)

	combos := []struct {
		nsfw, auto bool
	}{
		{false, false}, {true, false}, {false, true}, {true, true},
		{true, false}, {true, true}, {false, false}, {true, true},
	}
	for _, c := range combos {
		e.Reconcile(c.nsfw, c.auto)
		count := 0
		for _, w := range e.List(models.TypePositive) {
			if w.ID == "nsfw" {
				count++
			}
		}
		wantPresent := c.nsfw && c.auto
		if wantPresent && count != 1 {
			t.Errorf("nsfw=%v auto=%v: marker count = %d, want 1", c.nsfw, c.auto, count)
		}
		if !wantPresent && count != 0 {
			t.Errorf("nsfw=%v auto=%v: marker count = %d, want 0", c.nsfw, c.auto, count)
		}
	}

	// The manual selection must survive all the flips.
	found := false
	for _, w := range e.List(models.TypePositive) {
		if w.ID == "w1" {
			found = true
		}
	}
	if !found {
		t.Error("policy flips must not disturb manual selections")
	}
}

func TestAutoNSFWMarkerResolvesRealWord(t *testing.T) {
	real := models.Word{ID: "w9", LabelJP: "NSFW", ValueEN: "nsfw content"}
	e := newTestEngine(testWord("w1"), real)
	e.Reconcile(true, true)

	list := e.List(models.TypePositive)
	if len(list) != 1 || list[0].ID != "w9" {
		t.Errorf("marker should resolve to the real word w9, got %v", ids(list))
	}
}

func TestAutoNSFWMarkerNotRemovable(t *testing.T) {
	e := newTestEngine()
	e.Reconcile(true, true)

	if err := e.Remove("nsfw", models.TypePositive); err == nil {
		t.Error("marker removal must be refused while the policy is active")
	}

	e.Reconcile(false, true)
	if len(e.List(models.TypePositive)) != 0 {
		t.Error("marker must disappear when the policy deactivates")
	}
}

func TestClearReseedsMarker(t *testing.T) {
	e := newTestEngine()
	e.Reconcile(true, true)
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.Add(testWord("w2"), models.TypeNegative, 1.0)

	e.Clear(models.TypePositive)
	if got := ids(e.List(models.TypePositive)); len(got) != 1 || got[0] != "nsfw" {
		t.Errorf("positive after clear = %v, want just the marker", got)
	}

	e.ClearAll()
	if got := ids(e.List(models.TypePositive)); len(got) != 1 || got[0] != "nsfw" {
		t.Errorf("positive after clearAll = %v, want just the marker", got)
	}
	if len(e.List(models.TypeNegative)) != 0 {
		t.Error("negative must be truly empty after clearAll")
	}
}

func TestClearWithoutPolicyIsEmpty(t *testing.T) {
	e := newTestEngine()
	e.Add(testWord("w1"), models.TypePositive, 1.0)
	e.Clear(models.TypePositive)
	if len(e.List(models.TypePositive)) != 0 {
		t.Error("clear without the auto policy should leave an empty list")
	}
}
