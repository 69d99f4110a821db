package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"apidoc.me/cli/cmd/apidoc/cmdutil"
	"apidoc.me/cli/cmd/apidoc/root"
)

func main() {
	os.Exit(run())
}

// run executes the command given by os.Args and reports the exit code.
func run() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := root.Cmd.Execute(); err != nil {
		cmdutil.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
