package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mimetab/mimetab/pkg/mimetypes"
)

var checkKinds = map[string]func(*mimetypes.Registry, string) bool{
	"video": (*mimetypes.Registry).IsVideo,
	"audio": (*mimetypes.Registry).IsAudio,
	"image": (*mimetypes.Registry).IsImage,
	"text":  (*mimetypes.Registry).IsText,
	"media": (*mimetypes.Registry).IsMedia,
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <video|audio|image|text|media> <filename>",
		Short: "Check whether a file name resolves to a media category, exit 1 if not",
		RunE:  check,
		Args:  cobra.ExactArgs(2),
	}
}

func check(cmd *cobra.Command, args []string) error {
	predicate, ok := checkKinds[args[0]]
	if !ok {
		return fmt.Errorf("Unknown category '%s', expected video, audio, image, text or media", args[0])
	}
	registry, err := getRegistry()
	if err != nil {
		return err
	}
	if !predicate(registry, args[1]) {
		fmt.Println("false")
		os.Exit(1)
	}
	fmt.Println("true")
	return nil
}
