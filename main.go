package main

import (
	"os"

	"github.com/evera-world/legalmigrate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
