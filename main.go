package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	if _, err := newParser(newCommands(os.Stdout)).Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}
}
