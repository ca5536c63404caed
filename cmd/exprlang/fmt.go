package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/flowbundle/exprlang/expr"
)

func fmtCommand(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("exprlang fmt: expression required")
	}

	ast, err := expr.Parse(remaining[0])
	if err != nil {
		return err
	}
	fmt.Println(expr.Print(ast))
	return nil
}
