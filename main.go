package main

import (
	"os"

	"github.com/spigell/college-compass/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
