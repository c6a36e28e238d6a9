package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// requireProject is the shared PreRunE for commands that need an
// existing .tagdeck directory.
func requireProject(cmd *cobra.Command, args []string) error {
	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found. Run 'tagdeck init' first", files.TagdeckDir)
	}
	return nil
}

func parseListType(s string) (string, error) {
	switch s {
	case "positive", "pos", "p":
		return models.TypePositive, nil
	case "negative", "neg", "n":
		return models.TypeNegative, nil
	default:
		return "", fmt.Errorf("invalid list type %q (must be positive or negative)", s)
	}
}

func exitOnWriteError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
