package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <filename>...",
		Short: "Resolve the MIME types for file names",
		RunE:  lookup,
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().BoolP("quiet", "q", false, "Quiet output, only display MIME types")

	return cmd
}

func lookup(cmd *cobra.Command, args []string) error {
	registry, err := getRegistry()
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	if quiet {
		for _, fileName := range args {
			types, err := registry.MimeTypesForFileName(fileName)
			if err != nil {
				return err
			}
			for _, typ := range types {
				fmt.Println(typ)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tMATCHED\tTYPES")
	for _, fileName := range args {
		types, found := registry.TryMimeTypesForFileName(fileName)
		fmt.Fprintf(w, "%s\t%t\t%s\n", fileName, found, strings.Join(types, ", "))
	}
	return w.Flush()
}
