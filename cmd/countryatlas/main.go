package main

import (
	"os"

	"github.com/nulllvoid/countryatlas/cmd/countryatlas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
