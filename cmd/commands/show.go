package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/prompt"
	"github.com/tagdeck/tagdeck-cli/pkg/store"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <word|card> <id>",
		Short: "Show details of a word or card",
		Long: `Print a single word or card, including the prompt text a card
renders to.

Examples:
  tagdeck show word 7c9e6679-7425-40de-944b-e07fc1f90ae7
  tagdeck show card 9b2d8e11-51f0-4de2-a0c4-0f6f4f6f2a3b`,
		Args:    cobra.ExactArgs(2),
		PreRunE: requireProject,
		RunE:    runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	doc := files.ReadDocument()

	switch args[0] {
	case "word":
		for _, w := range doc.Words {
			if w.ID != args[1] {
				continue
			}
			fmt.Printf("ID:      %s\n", w.ID)
			fmt.Printf("Label:   %s\n", w.LabelJP)
			fmt.Printf("Value:   %s\n", w.ValueEN)
			fmt.Printf("Folder:  %s\n", w.FolderID)
			fmt.Printf("NSFW:    %v\n", w.NSFW)
			if len(w.Tags) > 0 {
				fmt.Printf("Tags:    %s\n", strings.Join(w.Tags, ", "))
			}
			if w.Note != "" {
				fmt.Printf("Note:    %s\n", w.Note)
			}
			if len(w.TemplateIDs) > 0 {
				fmt.Printf("Templates: %s\n", strings.Join(w.TemplateIDs, ", "))
			}
			return nil
		}
		return fmt.Errorf("word %s not found", args[1])

	case "card":
		for _, c := range doc.Cards {
			if c.ID != args[1] {
				continue
			}
			fmt.Printf("ID:     %s\n", c.ID)
			fmt.Printf("Name:   %s\n", c.Name)
			fmt.Printf("Type:   %s\n", c.Type)
			fmt.Printf("Folder: %s\n", c.FolderID)
			fmt.Printf("NSFW:   %v\n", c.NSFW)
			fmt.Printf("Words:\n")
			for _, ref := range c.Words {
				line := fmt.Sprintf("  %s (%s)", ref.ValueEN, ref.WordID)
				if ref.Repeat > 1 {
					line += fmt.Sprintf(" x%d", ref.Repeat)
				}
				fmt.Println(line)
			}
			lookup := func(id string) (models.Word, bool) {
				for _, w := range doc.Words {
					if w.ID == id {
						return w, true
					}
				}
				return models.Word{}, false
			}
			token := store.CardToken(c, lookup)
			fmt.Printf("Renders as: %s\n",
				prompt.Format([]models.SelectedWord{{Word: token, Strength: 1.0, Type: c.Type}}))
			return nil
		}
		return fmt.Errorf("card %s not found", args[1])

	default:
		return fmt.Errorf("unknown kind %q (must be word or card)", args[0])
	}
}
