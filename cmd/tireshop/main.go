package main

import (
	"os"

	"tireshop/cmd/tireshop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
