package main

import (
	"os"

	"github.com/youngtekkie/tekkie/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
