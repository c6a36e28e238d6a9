package models

// Deep-copy helpers. Snapshots (undo buffer, favorites) must not share
// backing slices with live state.

// Clone returns a deep copy of the word.
func (w Word) Clone() Word {
	c := w
	c.Tags = append([]string(nil), w.Tags...)
	c.TemplateIDs = append([]string(nil), w.TemplateIDs...)
	c.CardRefs = append([]CardWordRef(nil), w.CardRefs...)
	c.CardDisabledWordIDs = append([]string(nil), w.CardDisabledWordIDs...)
	return c
}

// Clone returns a deep copy of the selected word.
func (s SelectedWord) Clone() SelectedWord {
	c := s
	c.Word = s.Word.Clone()
	return c
}

// CloneSelection deep-copies a selection list.
func CloneSelection(words []SelectedWord) []SelectedWord {
	out := make([]SelectedWord, len(words))
	for i, w := range words {
		out[i] = w.Clone()
	}
	return out
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := c
	out.Words = append([]CardWordRef(nil), c.Words...)
	out.TemplateIDs = append([]string(nil), c.TemplateIDs...)
	return out
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	out := t
	out.Options = append([]TemplateOption(nil), t.Options...)
	return out
}

// Clone returns a deep copy of the favorite.
func (f PromptFavorite) Clone() PromptFavorite {
	out := f
	out.Words = CloneSelection(f.Words)
	return out
}

// Clone returns a deep copy of the whole document.
func (d DataStore) Clone() DataStore {
	out := DataStore{
		Folders:   append([]Folder(nil), d.Folders...),
		Words:     make([]Word, len(d.Words)),
		Templates: make([]Template, len(d.Templates)),
		Cards:     make([]Card, len(d.Cards)),
	}
	for i, w := range d.Words {
		out.Words[i] = w.Clone()
	}
	for i, t := range d.Templates {
		out.Templates[i] = t.Clone()
	}
	for i, c := range d.Cards {
		out.Cards[i] = c.Clone()
	}
	return out
}
