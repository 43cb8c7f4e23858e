package main

import (
	"os"

	"github.com/bahaa0627-dev/wanderlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
