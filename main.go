package main

import (
	"os"

	"github.com/inkpad-io/inkpad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
