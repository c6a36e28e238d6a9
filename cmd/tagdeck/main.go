package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tagdeck/tagdeck-cli/cmd/commands"
	"github.com/tagdeck/tagdeck-cli/internal/cli"
	"github.com/tagdeck/tagdeck-cli/pkg/app"
	"github.com/tagdeck/tagdeck-cli/pkg/files"
	"github.com/tagdeck/tagdeck-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "tagdeck",
	Short: "Terminal tool for organizing prompt words and composing weighted prompts",
	Long:  `Tagdeck organizes labeled prompt words in a folder tree, lets you select them into positive and negative lists, and renders the selection as weighted prompt text. Everything is stored as local JSON and YAML under .tagdeck/.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.TagdeckDir)
			fmt.Fprintf(os.Stderr, "Please run 'tagdeck init' first to initialize a new library.\n")
			os.Exit(1)
		}

		logger, _ := zap.NewProduction()
		a := app.New(logger)
		defer a.Close()

		p := tea.NewProgram(tui.NewApp(a), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new tagdeck library",
	Long:  `Creates the .tagdeck folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing tagdeck library in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize library: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Created .tagdeck folder structure")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tagdeck %s\n", version)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompts")

	cobra.OnInitialize(func() {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	})

	rootCmd.AddCommand(
		initCmd,
		versionCmd,
		commands.NewCopyCommand(),
		commands.NewExportCommand(),
		commands.NewImportCommand(),
		commands.NewListCommand(),
		commands.NewSearchCommand(),
		commands.NewShowCommand(),
		commands.NewSetCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
