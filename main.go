package main

import (
	"os"

	"keywatch/internal/cli"

	"github.com/jessevdk/go-flags"
)

func main() {
	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true
	parser.CommandHandler = cli.Execute

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		// go-flags has already printed it
		os.Exit(1)
	}
}
