package main

import (
	"os"

	"github.com/go-strut/strut/cmd/strut/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
