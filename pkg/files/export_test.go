package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func TestExportIncludesCards(t *testing.T) {
	setupProject(t)

	doc := models.DataStore{
		Folders: []models.Folder{{ID: "f1", Name: "misc"}},
		Words:   []models.Word{{ID: "w1", FolderID: "f1", LabelJP: "a", ValueEN: "a"}},
		Cards: []models.Card{{ID: "c1", Name: "bundle", Type: "positive",
			Words: []models.CardWordRef{{WordID: "w1", ValueEN: "a"}}}},
	}

	path := filepath.Join(t.TempDir(), "export.json")
	if err := ExportDocument(path, doc); err != nil {
		t.Fatalf("ExportDocument failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"cards"`) {
		t.Error("export must include the cards collection")
	}

	got, err := ImportDocument(path)
	if err != nil {
		t.Fatalf("ImportDocument failed: %v", err)
	}
	if len(got.Cards) != 1 || got.Cards[0].ID != "c1" {
		t.Error("cards must round-trip through export/import")
	}
}

func TestImportRejectsMissingCollections(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		blob string
	}{
		{"no folders", `{"words": []}`},
		{"no words", `{"folders": []}`},
		{"folders not array", `{"folders": {}, "words": []}`},
		{"not json", `hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".json")
			os.WriteFile(path, []byte(tt.blob), 0644)
			if _, err := ImportDocument(path); err == nil {
				t.Errorf("ImportDocument(%s) should be rejected", tt.name)
			}
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportDocument(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file should error")
	}
}
