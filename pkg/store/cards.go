package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/normalize"
)

// AddCard appends a card to the document. Cards are always appended;
// there is no replace-by-name semantics.
func (s *Store) AddCard(card models.Card) (models.Card, error) {
	card.Name = strings.TrimSpace(card.Name)
	if card.Name == "" {
		return models.Card{}, fmt.Errorf("card name cannot be empty")
	}
	if !models.ValidType(card.Type) {
		return models.Card{}, fmt.Errorf("card type must be positive or negative")
	}
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	if card.CreatedAt == 0 {
		card.CreatedAt = time.Now().UnixMilli()
	}
	card.FolderID = parentKey(card.FolderID)
	card.NSFW = card.NSFW || normalize.CardNSFW(card.Words)

	err := s.mutate(func(d *models.DataStore) error {
		if card.FolderID != models.RootFolderID && findFolder(d, card.FolderID) == nil {
			return fmt.Errorf("folder %s does not exist", card.FolderID)
		}
		d.Cards = append(d.Cards, card.Clone())
		return nil
	})
	if err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// SnapshotCard builds a card from a selection list: each entry becomes
// a denormalized ref that keeps rendering even after the source word
// is deleted. Card tokens in the selection are skipped; cards do not
// nest.
func SnapshotCard(name, folderID, listType string, words []models.SelectedWord) models.Card {
	card := models.Card{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		FolderID:  parentKey(folderID),
		Type:      listType,
		CreatedAt: time.Now().UnixMilli(),
		Words:     make([]models.CardWordRef, 0, len(words)),
	}
	for _, w := range words {
		if w.CardID != "" {
			continue
		}
		ref := models.CardWordRef{
			WordID:   w.ID,
			Strength: w.Strength,
			LabelJP:  w.LabelJP,
			ValueEN:  w.ValueEN,
			NSFW:     w.NSFW,
			Note:     w.Note,
		}
		if w.Repeat > 1 {
			ref.Repeat = w.Repeat
		}
		card.Words = append(card.Words, ref)
	}
	card.NSFW = normalize.CardNSFW(card.Words)
	return card
}

// UpdateCard replaces a card by id.
func (s *Store) UpdateCard(card models.Card) error {
	card.Name = strings.TrimSpace(card.Name)
	if card.Name == "" {
		return fmt.Errorf("card name cannot be empty")
	}
	return s.mutate(func(d *models.DataStore) error {
		for i := range d.Cards {
			if d.Cards[i].ID == card.ID {
				d.Cards[i] = card.Clone()
				return nil
			}
		}
		return fmt.Errorf("card %s does not exist", card.ID)
	})
}

// DeleteCard removes a card by id.
func (s *Store) DeleteCard(id string) error {
	return s.mutate(func(d *models.DataStore) error {
		for i := range d.Cards {
			if d.Cards[i].ID == id {
				d.Cards = append(d.Cards[:i:i], d.Cards[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("card %s does not exist", id)
	})
}

// CardToken renders a card as a selectable word token: a single unit
// that the formatter parenthesizes and never repeats.
func CardToken(card models.Card, lookup func(string) (models.Word, bool)) models.Word {
	var parts []string
	for _, ref := range card.Words {
		value := ref.ValueEN
		if lookup != nil {
			if w, ok := lookup(ref.WordID); ok {
				value = w.ValueEN
			}
		}
		if value == "" {
			continue
		}
		repeat := ref.Repeat
		if repeat < 1 {
			repeat = 1
		}
		for i := 0; i < repeat; i++ {
			parts = append(parts, value)
		}
	}
	return models.Word{
		ID:         "card:" + card.ID,
		FolderID:   card.FolderID,
		LabelJP:    card.Name,
		ValueEN:    card.Name,
		NSFW:       card.NSFW,
		CardID:     card.ID,
		CardName:   card.Name,
		CardPrompt: strings.Join(parts, ", "),
		CardRefs:   append([]models.CardWordRef(nil), card.Words...),
	}
}
