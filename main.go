package main

import (
	"os"

	"github.com/siddiq-x/AI-tutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
