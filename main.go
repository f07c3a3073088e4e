package main

import (
	"os"

	"github.com/ytcap/ytcap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
