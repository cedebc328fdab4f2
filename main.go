package main

import (
	"os"

	"github.com/finlearn/finlearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
