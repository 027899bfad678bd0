package main

import (
	"os"

	"github.com/abhisek/iq360/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
