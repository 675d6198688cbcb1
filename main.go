package main

import (
	"os"

	"github.com/typedrill/typedrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
