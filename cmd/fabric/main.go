package main

import (
	"fmt"
	"os"

	"github.com/boreq/fabric/cmd/fabric/commands"
	"github.com/boreq/guinea"
)

func main() {
	if err := guinea.Run(&commands.MainCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
