package main

import (
	"os"

	"github.com/stetinam/rfdim/cmd"
)

func main() {
	// "rfdim docs" regenerates the Markdown docs instead of running a command
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs()
		return
	}

	cmd.Execute() // initialize cobra commands
}
