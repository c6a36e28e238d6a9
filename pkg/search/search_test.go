package search

import (
	"testing"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func TestWords(t *testing.T) {
	words := []models.Word{
		{ID: "w1", LabelJP: "猫", ValueEN: "cat", Tags: []string{"animal"}},
		{ID: "w2", LabelJP: "長い髪", ValueEN: "long hair"},
		{ID: "w3", LabelJP: "犬", ValueEN: "dog"},
	}

	got := Words("cat", words)
	if len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("Words(cat) = %v", got)
	}

	got = Words("animal", words)
	if len(got) != 1 || got[0].ID != "w1" {
		t.Error("tags should be searchable")
	}

	if got := Words("", words); len(got) != len(words) {
		t.Error("empty query returns everything")
	}

	if got := Words("zzzzz", words); len(got) != 0 {
		t.Errorf("no-match query returned %v", got)
	}
}

func TestVisible(t *testing.T) {
	words := []models.Word{
		{ID: "w1", ValueEN: "safe"},
		{ID: "w2", ValueEN: "spicy", NSFW: true},
	}

	if got := Visible(words, true); len(got) != 2 {
		t.Error("nsfw enabled shows everything")
	}
	got := Visible(words, false)
	if len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("Visible(off) = %v, want only the safe word", got)
	}
}
