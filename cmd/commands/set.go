package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a settings field",
		Long: `Update one settings field in .tagdeck/settings.yaml.

Boolean keys: nsfw_enabled, show_descendant_words, auto_nsfw,
collapse_inactive_folders, combined_copy, show_root_in_paths,
first_run_notice_seen, nsfw_warning_seen.
Enum keys: strength_display (continuous|discrete).

Examples:
  tagdeck set nsfw_enabled true
  tagdeck set strength_display discrete`,
		Args:    cobra.ExactArgs(2),
		PreRunE: requireProject,
		RunE:    runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	settings := files.ReadSettings()

	if key == "strength_display" {
		if value != models.StrengthDisplayContinuous && value != models.StrengthDisplayDiscrete {
			return fmt.Errorf("strength_display must be continuous or discrete")
		}
		settings.StrengthDisplay = value
	} else {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value for %s must be true or false", key)
		}
		switch key {
		case "nsfw_enabled":
			settings.NSFWEnabled = b
		case "show_descendant_words":
			settings.ShowDescendantWords = b
		case "auto_nsfw":
			settings.AutoNSFW = b
		case "collapse_inactive_folders":
			settings.CollapseInactiveFolders = b
		case "combined_copy":
			settings.CombinedCopy = b
		case "show_root_in_paths":
			settings.ShowRootInPaths = b
		case "first_run_notice_seen":
			settings.FirstRunNoticeSeen = b
		case "nsfw_warning_seen":
			settings.NSFWWarningSeen = b
		default:
			return fmt.Errorf("unknown settings key %q", key)
		}
	}

	if err := files.WriteSettings(settings); err != nil {
		return err
	}
	cli.PrintSuccess("Set %s = %s", key, value)
	return nil
}
