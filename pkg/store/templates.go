package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// AddTemplate creates a template.
func (s *Store) AddTemplate(t models.Template) (models.Template, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.Template{}, fmt.Errorf("template name cannot be empty")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := s.mutate(func(d *models.DataStore) error {
		d.Templates = append(d.Templates, t.Clone())
		return nil
	})
	if err != nil {
		return models.Template{}, err
	}
	return t, nil
}

// UpdateTemplate replaces a template by id.
func (s *Store) UpdateTemplate(t models.Template) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	return s.mutate(func(d *models.DataStore) error {
		for i := range d.Templates {
			if d.Templates[i].ID == t.ID {
				d.Templates[i] = t.Clone()
				return nil
			}
		}
		return fmt.Errorf("template %s does not exist", t.ID)
	})
}

// DeleteTemplate removes a template and strips its id from every word
// that referenced it.
func (s *Store) DeleteTemplate(id string) error {
	return s.mutate(func(d *models.DataStore) error {
		idx := -1
		for i := range d.Templates {
			if d.Templates[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("template %s does not exist", id)
		}
		d.Templates = append(d.Templates[:idx:idx], d.Templates[idx+1:]...)

		for i := range d.Words {
			refs := d.Words[i].TemplateIDs[:0]
			for _, tid := range d.Words[i].TemplateIDs {
				if tid != id {
					refs = append(refs, tid)
				}
			}
			d.Words[i].TemplateIDs = refs
		}
		for i := range d.Cards {
			refs := d.Cards[i].TemplateIDs[:0]
			for _, tid := range d.Cards[i].TemplateIDs {
				if tid != id {
					refs = append(refs, tid)
				}
			}
			d.Cards[i].TemplateIDs = refs
		}
		return nil
	})
}

// DeriveWord applies a template option to a word, producing a new
// derived word with a synthesized id. The stored word is untouched;
// the derived word exists only in the selection it gets added to.
//
// The fragment comes from the chosen option, or from freeText when the
// template allows free input and no option is chosen. Position decides
// prefix vs suffix; SpaceEnabled inserts a space between the parts.
func DeriveWord(w models.Word, t models.Template, optionID, freeText string) (models.Word, error) {
	fragment := ""
	if optionID != "" {
		found := false
		for _, opt := range t.Options {
			if opt.ID == optionID {
				fragment = opt.Value
				found = true
				break
			}
		}
		if !found {
			return models.Word{}, fmt.Errorf("template %s has no option %s", t.ID, optionID)
		}
	} else if t.AllowFree {
		fragment = strings.TrimSpace(freeText)
	} else if t.DefaultOptionID != "" {
		for _, opt := range t.Options {
			if opt.ID == t.DefaultOptionID {
				fragment = opt.Value
				break
			}
		}
	}
	if fragment == "" {
		return models.Word{}, fmt.Errorf("no template fragment selected")
	}

	sep := ""
	if t.SpaceEnabled {
		sep = " "
	}

	derived := w.Clone()
	derived.ID = w.ID + ":" + t.ID + ":" + uuid.NewString()
	if t.Position == "after" {
		derived.ValueEN = w.ValueEN + sep + fragment
		derived.LabelJP = w.LabelJP + sep + fragment
	} else {
		derived.ValueEN = fragment + sep + w.ValueEN
		derived.LabelJP = fragment + sep + w.LabelJP
	}
	return derived, nil
}
