package main

import (
	"os"

	"github.com/notetoquiz/notepack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
