package main

import (
	"os"

	"github.com/maelys-dev/sweetshop-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
