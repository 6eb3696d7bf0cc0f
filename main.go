package main

import (
	"os"

	"github.com/kaslabs/textstat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
