package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/library"
)

var listFormat string

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <folders|words|templates|cards|favorites|quality>",
		Short: "List library contents",
		Long: `List the contents of one collection in the library.

Examples:
  tagdeck list words
  tagdeck list folders --format json
  tagdeck list favorites`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"folders", "words", "templates", "cards", "favorites", "quality"},
		Aliases:   []string{"ls"},
		PreRunE:   requireProject,
		RunE:      runList,
	}

	cmd.Flags().StringVar(&listFormat, "format", "text", "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	doc := files.ReadDocument()

	if listFormat != string(cli.FormatText) {
		switch args[0] {
		case "folders":
			return cli.OutputResults(os.Stdout, listFormat, doc.Folders)
		case "words":
			return cli.OutputResults(os.Stdout, listFormat, doc.Words)
		case "templates":
			return cli.OutputResults(os.Stdout, listFormat, doc.Templates)
		case "cards":
			return cli.OutputResults(os.Stdout, listFormat, doc.Cards)
		case "favorites":
			return cli.OutputResults(os.Stdout, listFormat, library.OpenFavorites(nil).List())
		case "quality":
			return cli.OutputResults(os.Stdout, listFormat, library.OpenQuality(nil).List())
		default:
			return fmt.Errorf("unknown collection %q", args[0])
		}
	}

	table := cli.NewTableFormatter(os.Stdout)
	switch args[0] {
	case "folders":
		table.Header("ID", "NAME", "PARENT", "NSFW")
		for _, f := range doc.Folders {
			table.Row(f.ID, f.Name, f.ParentID, strconv.FormatBool(f.NSFW))
		}
	case "words":
		table.Header("ID", "LABEL", "VALUE", "FOLDER", "NSFW")
		for _, w := range doc.Words {
			table.Row(w.ID, w.LabelJP, cli.TruncateString(w.ValueEN, 40), w.FolderID, strconv.FormatBool(w.NSFW))
		}
	case "templates":
		table.Header("ID", "NAME", "OPTIONS", "POSITION")
		for _, t := range doc.Templates {
			table.Row(t.ID, t.Name, strconv.Itoa(len(t.Options)), t.Position)
		}
	case "cards":
		table.Header("ID", "NAME", "TYPE", "WORDS", "NSFW")
		for _, c := range doc.Cards {
			table.Row(c.ID, c.Name, c.Type, strconv.Itoa(len(c.Words)), strconv.FormatBool(c.NSFW))
		}
	case "favorites":
		table.Header("ID", "NAME", "TYPE", "WORDS", "NSFW")
		for _, f := range library.OpenFavorites(nil).List() {
			table.Row(f.ID, f.Name, f.Type, strconv.Itoa(len(f.Words)), strconv.FormatBool(f.NSFW))
		}
	case "quality":
		quality := library.OpenQuality(nil)
		selected := quality.Selection()
		table.Header("ID", "NAME", "TYPE", "WORDS", "ACTIVE")
		for _, t := range quality.List() {
			active := ""
			if t.ID == selected.Positive || t.ID == selected.Negative {
				active = "*"
			}
			table.Row(t.ID, t.Name, t.Type, strconv.Itoa(len(t.Words)), active)
		}
	default:
		return fmt.Errorf("unknown collection %q", args[0])
	}
	table.Flush()
	return nil
}
