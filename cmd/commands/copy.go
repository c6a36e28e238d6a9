package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/library"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/prompt"
	"github.com/tagdeck/tagdeck-cli/pkg/store"
)

var copyStdout bool

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <favorite|quality|card> <id|type>",
		Short: "Render a stored bundle and copy it to the clipboard",
		Long: `Render a favorite, quality template, or card through the prompt
formatter and copy the result to the system clipboard.

Favorites and cards are addressed by id (see 'tagdeck list'); quality
renders the currently selected template for a list type.

Examples:
  tagdeck copy favorite 1724680000000_3f2a91bc
  tagdeck copy quality positive
  tagdeck copy card 7c9e6679-7425-40de-944b-e07fc1f90ae7
  tagdeck copy card 7c9e6679 --stdout`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"clip"},
		PreRunE: requireProject,
		RunE:    runCopy,
	}

	cmd.Flags().BoolVar(&copyStdout, "stdout", false, "Print instead of copying to the clipboard")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	kind, ref := args[0], args[1]

	var text string
	switch kind {
	case "favorite", "fav":
		favs := library.OpenFavorites(nil)
		fav, ok := favs.Get(ref)
		if !ok {
			return fmt.Errorf("favorite %s not found", ref)
		}
		text = prompt.Format(fav.Words)

	case "quality", "q":
		listType, err := parseListType(ref)
		if err != nil {
			return err
		}
		quality := library.OpenQuality(nil)
		t, ok := quality.Selected(listType)
		if !ok {
			return fmt.Errorf("no quality template selected for %s", listType)
		}
		text = prompt.Format(t.Words)

	case "card":
		doc := files.ReadDocument()
		var card models.Card
		found := false
		for _, c := range doc.Cards {
			if c.ID == ref {
				card, found = c, true
				break
			}
		}
		if !found {
			return fmt.Errorf("card %s not found", ref)
		}
		lookup := func(id string) (models.Word, bool) {
			for _, w := range doc.Words {
				if w.ID == id {
					return w, true
				}
			}
			return models.Word{}, false
		}
		token := store.CardToken(card, lookup)
		text = prompt.Format([]models.SelectedWord{{Word: token, Strength: 1.0, Type: card.Type}})

	default:
		return fmt.Errorf("unknown bundle kind %q (must be favorite, quality, or card)", kind)
	}

	if copyStdout {
		fmt.Println(text)
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	cli.PrintSuccess("Copied %d characters to clipboard", len(text))
	return nil
}
