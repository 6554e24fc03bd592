package main

import (
	"github.com/mimetab/mimetab/pkg/cli"
	"github.com/mimetab/mimetab/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err = cmd.Execute(); err != nil {
		console.Fatalf("%s", err)
	}
}
