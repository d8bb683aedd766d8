package main

import (
	"os"

	"github.com/lazypower/lovewhisper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
