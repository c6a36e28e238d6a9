package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/search"
)

var searchNSFW bool

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search words by label, value, or tag",
		Long: `Fuzzy-search the word library; matches are ranked best first.
NSFW words are hidden unless --nsfw is given.

Examples:
  tagdeck search cat
  tagdeck search "long hair" --nsfw`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: requireProject,
		RunE:    runSearch,
	}

	cmd.Flags().BoolVar(&searchNSFW, "nsfw", false, "Include NSFW words")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	doc := files.ReadDocument()
	words := search.Visible(doc.Words, searchNSFW)
	matches := search.Words(strings.Join(args, " "), words)

	if len(matches) == 0 {
		cli.PrintInfo("No words matched")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "LABEL", "VALUE", "FOLDER")
	for _, w := range matches {
		table.Row(w.ID, w.LabelJP, cli.TruncateString(w.ValueEN, 40), w.FolderID)
	}
	table.Flush()
	return nil
}
