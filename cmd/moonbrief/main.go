package main

import (
	"os"

	"github.com/marco-mi/MoonworksBrief/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
