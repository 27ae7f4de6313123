package main

import (
	"os"

	"github.com/nurlan/ubtprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
