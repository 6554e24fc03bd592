package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mimetab/mimetab/pkg/util/console"
)

func newExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "extensions <mimetype>",
		Short:   "List the file name suffixes registered for a MIME type",
		RunE:    extensions,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"ext"},
	}
}

func extensions(cmd *cobra.Command, args []string) error {
	registry, err := getRegistry()
	if err != nil {
		return err
	}
	suffixes, err := registry.Extensions(args[0])
	if err != nil {
		return err
	}
	if len(suffixes) == 0 {
		console.Warnf("No suffixes registered for %s", args[0])
		return nil
	}
	for _, suffix := range suffixes {
		fmt.Println(suffix)
	}
	return nil
}
