package main

import (
	"os"

	"github.com/mentorlabs/mentor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
