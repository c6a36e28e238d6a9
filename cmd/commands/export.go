package commands

import (
	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the word library to a JSON file",
		Long: `Write the full document (folders, words, templates, and cards) to a
JSON file that 'tagdeck import' can read back.

Examples:
  tagdeck export backup.json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := files.ReadDocument()
			if err := files.ExportDocument(args[0], doc); err != nil {
				return err
			}
			cli.PrintSuccess("Exported %d folders, %d words, %d templates, %d cards to %s",
				len(doc.Folders), len(doc.Words), len(doc.Templates), len(doc.Cards), args[0])
			return nil
		},
	}
}
