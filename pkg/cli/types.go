package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "types",
		Short:   "List all known MIME types",
		RunE:    listTypes,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
	}

	cmd.Flags().BoolP("quiet", "q", false, "Quiet output, only display MIME types")

	return cmd
}

func listTypes(cmd *cobra.Command, args []string) error {
	registry, err := getRegistry()
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	if quiet {
		for _, typ := range registry.AllMimeTypes() {
			fmt.Println(typ)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tSUFFIXES")
	for _, typ := range registry.AllMimeTypes() {
		suffixes, err := registry.Extensions(typ)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", typ, strings.Join(suffixes, " "))
	}
	return w.Flush()
}
