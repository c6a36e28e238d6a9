package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/app"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
)

var importYes bool

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the word library from a JSON export",
		Long: `Read a JSON export file and replace the current document with it.
The file must contain folders and words arrays; the import is rejected
otherwise. Importing overwrites the current library, so it asks for
confirmation first.

Examples:
  tagdeck import backup.json
  tagdeck import backup.json --yes`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runImport,
	}

	cmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	doc, err := files.ImportDocument(args[0])
	if err != nil {
		return err
	}

	if !importYes {
		ok, err := cli.Confirm(fmt.Sprintf(
			"Replace the current library with %s (%d folders, %d words)?",
			args[0], len(doc.Folders), len(doc.Words)), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Import cancelled")
			return nil
		}
	}

	a := app.New(nil)
	a.Import(doc)
	exitOnWriteError(a.Close())

	cli.PrintSuccess("Imported %d folders, %d words, %d templates, %d cards",
		len(doc.Folders), len(doc.Words), len(doc.Templates), len(doc.Cards))
	return nil
}
