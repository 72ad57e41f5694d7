package main

import (
	"os"

	"safelens/cmd/safelens/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
