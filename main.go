package main

import (
	"os"

	"github.com/abhisek/iqorum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
