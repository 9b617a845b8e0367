package main

import (
	"os"

	"github.com/yasl-lang/yasl/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
