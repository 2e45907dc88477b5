package main

import (
	"os"

	"trivia-palooza/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
