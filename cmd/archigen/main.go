package main

import (
	"os"

	"github.com/archigen/archigen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
