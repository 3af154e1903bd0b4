package main

import (
	"os"

	"github.com/YuminosukeSato/lassoviz/cmd/lassoviz/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
