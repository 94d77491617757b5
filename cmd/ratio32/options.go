package main

import (
	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

const version = "ratio32 0.1.0"

const usage = `ratio32

Usage:
  ratio32 [-vj] calc [--] <a> <op> <b>
  ratio32 [-vj] sqrt [--] <n>
  ratio32 [-vj] approx [--] <value>
  ratio32 -h | --help
  ratio32 --version

Arguments:
  <a>, <b>, <n>  Fractions written as "n/d", an integer, inf, -inf or nan.
  <op>           One of + - x / or cmp. "*" is accepted for x.
  <value>        Any exact rational such as "3.14159" or "355000001/113000000".

Options:
  -v, --verbose  Log each step to stderr.
  -j, --json     Print the result as JSON.
  -h, --help     Display this help.
  --version      Print the version.

Results that do not fit in 32 bits are replaced by the nearest fraction
that does.
`

type options struct {
	command  string
	a, op, b string
	verbose  bool
	json     bool

	// message is the help or version text when that was asked for.
	message string
}

// parseOptions reads argv, which excludes the program name.
func parseOptions(argv []string) (*options, error) {
	var o options
	p := &docopt.Parser{
		HelpHandler: func(err error, text string) {
			if err == nil {
				o.message = text
			}
		},
	}
	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return nil, errors.Wrap(err, "parsing arguments")
	}
	if o.message != "" {
		return &o, nil
	}

	for _, cmd := range []string{"calc", "sqrt", "approx"} {
		if ok, _ := opts.Bool(cmd); ok {
			o.command = cmd
		}
	}
	switch o.command {
	case "calc":
		o.a, _ = opts.String("<a>")
		o.op, _ = opts.String("<op>")
		o.b, _ = opts.String("<b>")
	case "sqrt":
		o.a, _ = opts.String("<n>")
	case "approx":
		o.a, _ = opts.String("<value>")
	}
	o.verbose, _ = opts.Bool("--verbose")
	o.json, _ = opts.Bool("--json")
	return &o, nil
}
