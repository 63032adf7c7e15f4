package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/swatch/cmd"
	"github.com/thenoetrevino/swatch/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
