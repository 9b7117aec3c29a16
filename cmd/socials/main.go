package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/klauern/socials/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, cli.ErrSilent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
