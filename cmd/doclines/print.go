package main

import (
	"io"

	"github.com/pescuma/doclines/lib/loader"
)

type PrintCmd struct{}

func (c *PrintCmd) Run(ctx *context) error {
	var progress io.Writer
	if ctx.progress {
		progress = ctx.stderr
	}

	l := loader.NewLoader(ctx.console)

	return l.Run(ctx.stdout, &loader.Options{
		Path:           ctx.file,
		ProgressOutput: progress,
	})
}
