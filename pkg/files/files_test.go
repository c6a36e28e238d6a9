package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func setupProject(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("Failed to initialize project structure: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	setupProject(t)

	for _, name := range []string{LibraryFile, FavoritesFile, QualityFile, SettingsFile} {
		if _, err := os.Stat(filepath.Join(TagdeckDir, name)); err != nil {
			t.Errorf("missing seeded file %s: %v", name, err)
		}
	}
	if !ProjectExists() {
		t.Error("ProjectExists should be true after init")
	}
}

func TestInitDoesNotClobberExistingBlobs(t *testing.T) {
	setupProject(t)

	doc := models.DataStore{Words: []models.Word{{ID: "w1", LabelJP: "a", ValueEN: "a"}}}
	if err := WriteDocument(doc); err != nil {
		t.Fatal(err)
	}
	if err := InitProjectStructure(); err != nil {
		t.Fatal(err)
	}
	if got := ReadDocument(); len(got.Words) != 1 {
		t.Error("re-running init must not overwrite existing data")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	setupProject(t)

	doc := models.DataStore{
		Folders: []models.Folder{{ID: "f1", Name: "animals", ParentID: "root"}},
		Words: []models.Word{
			{ID: "w1", FolderID: "f1", LabelJP: "猫", ValueEN: "cat", Tags: []string{"pet"}},
		},
		Templates: []models.Template{{ID: "t1", Name: "color",
			Options: []models.TemplateOption{{ID: "o1", Label: "赤", Value: "red"}}}},
		Cards: []models.Card{{ID: "c1", Name: "pets", FolderID: "f1", Type: "positive",
			Words: []models.CardWordRef{{WordID: "w1", ValueEN: "cat", Repeat: 2}}}},
	}
	if err := WriteDocument(doc); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	got := ReadDocument()
	if len(got.Folders) != 1 || len(got.Words) != 1 || len(got.Templates) != 1 || len(got.Cards) != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Words[0].LabelJP != "猫" {
		t.Errorf("label = %q, want 猫", got.Words[0].LabelJP)
	}
	if got.Cards[0].Words[0].Repeat != 2 {
		t.Errorf("card ref repeat lost: %+v", got.Cards[0].Words[0])
	}
}

func TestReadDocumentMissingDir(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	d := ReadDocument()
	if d.Folders == nil || d.Words == nil {
		t.Error("missing blob should degrade to an empty valid document")
	}
}

func TestReadDocumentCorruptBlob(t *testing.T) {
	setupProject(t)
	os.WriteFile(filepath.Join(TagdeckDir, LibraryFile), []byte("{{{{"), 0644)

	d := ReadDocument()
	if d.Folders == nil || d.Words == nil {
		t.Error("corrupt blob should degrade to an empty valid document")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	setupProject(t)

	settings := models.DefaultSettings()
	settings.NSFWEnabled = true
	settings.StrengthDisplay = models.StrengthDisplayDiscrete
	if err := WriteSettings(settings); err != nil {
		t.Fatal(err)
	}

	got := ReadSettings()
	if !got.NSFWEnabled || got.StrengthDisplay != models.StrengthDisplayDiscrete {
		t.Errorf("settings round trip lost data: %+v", got)
	}
}

func TestSettingsFallBackToDefaults(t *testing.T) {
	setupProject(t)
	os.WriteFile(filepath.Join(TagdeckDir, SettingsFile), []byte(":::not yaml"), 0644)

	got := ReadSettings()
	if got.NSFWEnabled || !got.ShowDescendantWords {
		t.Error("unparseable settings should fall back to defaults")
	}
	if got.StrengthDisplay != models.StrengthDisplayContinuous {
		t.Errorf("strength display = %q, want continuous default", got.StrengthDisplay)
	}
}

func TestQualityRoundTrip(t *testing.T) {
	setupProject(t)

	blob := QualityBlob{
		Templates: []models.PromptFavorite{{
			ID: "q1", Name: "crisp", Type: "positive",
			Words: []models.SelectedWord{{Word: models.Word{ID: "w1", ValueEN: "sharp"}, Strength: 1.0, Type: "positive"}},
		}},
		Selected: models.QualitySelection{Positive: "q1"},
	}
	if err := WriteQuality(blob); err != nil {
		t.Fatal(err)
	}

	got := ReadQuality()
	if len(got.Templates) != 1 || got.Templates[0].ID != "q1" {
		t.Errorf("templates round trip lost data: %+v", got.Templates)
	}
	if got.Selected.Positive != "q1" {
		t.Errorf("selection pointer lost: %+v", got.Selected)
	}
}
