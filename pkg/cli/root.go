package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mimetab/mimetab/pkg/global"
	"github.com/mimetab/mimetab/pkg/mimetypes"
	"github.com/mimetab/mimetab/pkg/settings"
	"github.com/mimetab/mimetab/pkg/util/console"
)

var mimeTypesFlag string

func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "mimetab",
		Short:   "Look up MIME media types by file name suffix and back",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// No ANSI colors when stderr is piped into a script.
			console.SetColor(console.IsTTY(os.Stderr))
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			cmd.SilenceUsage = true
		},
		SilenceErrors: true,
	}
	setPersistentFlags(&rootCmd)

	rootCmd.AddCommand(
		newLookupCommand(),
		newExtensionsCommand(),
		newTypesCommand(),
		newCheckCommand(),
	)

	return &rootCmd, nil
}

func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVar(&mimeTypesFlag, "mime-types", "", "Path to a mime.types database (gzip or plain text) replacing the bundled one")
}

// getRegistry builds the registry the commands query: the bundled database,
// unless mimetab.yaml or --mime-types points somewhere else.
func getRegistry() (*mimetypes.Registry, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	projectSettings, err := settings.Load(cwd)
	if err != nil {
		return nil, err
	}

	registry := mimetypes.New()
	if projectSettings.FallbackMimeType != "" {
		registry.SetFallbackMimeType(projectSettings.FallbackMimeType)
	}

	databasePath := projectSettings.MimeTypes
	if mimeTypesFlag != "" {
		databasePath = mimeTypesFlag
	}
	if databasePath != "" {
		if err := reloadFromFile(registry, databasePath); err != nil {
			return nil, err
		}
		console.Debugf("Replaced mime.types database from %s", databasePath)
	}
	return registry, nil
}

func reloadFromFile(registry *mimetypes.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Failed to open mime.types database %s: %w", path, err)
	}
	defer f.Close()
	return registry.ReloadFrom(f)
}
