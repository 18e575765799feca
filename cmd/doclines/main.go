package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pescuma/doclines/lib/consoles"
)

type cliArgs struct {
	File     string `short:"f" default:"data.txt" type:"path" help:"Text file to load."`
	Verbose  bool   `short:"v" help:"Show loading information on stderr."`
	Progress bool   `help:"Show a progress bar on stderr while loading."`

	Print PrintCmd `cmd:"" default:"1" help:"Load a text file and print it back between banners."`
}

type context struct {
	file     string
	progress bool

	console consoles.Console
	stdout  io.Writer
	stderr  io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli cliArgs

	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("doclines"),
		kong.Description("Loads a text file line by line and prints it back."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "doclines: error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "doclines: error: %v\n", err)
		return 1
	}

	console := consoles.NewDiscardConsole()
	if cli.Verbose {
		console = consoles.NewWriterConsole(stderr)
	}

	err = ctx.Run(&context{
		file:     cli.File,
		progress: cli.Progress,
		console:  console,
		stdout:   stdout,
		stderr:   stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "doclines: error: %v\n", err)
		return 1
	}

	return 0
}
