// Command ratio32 evaluates 32-bit fraction arithmetic from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"ratio32/src/numeric/fraction"
)

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if o.message != "" {
		fmt.Println(o.message)
		return
	}

	logger := newLogger(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()), o.verbose)
	if err := run(o, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("ratio32")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, terminal, verbose bool) zerolog.Logger {
	if terminal {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type result struct {
	Command   string              `json:"command"`
	Args      []fraction.Fraction `json:"args,omitempty"`
	Op        string              `json:"op,omitempty"`
	Value     *fraction.Fraction  `json:"value,omitempty"`
	Ordered   *bool               `json:"ordered,omitempty"`
	Cmp       *int                `json:"cmp,omitempty"`
	Converged *bool               `json:"converged,omitempty"`
}

func run(o *options, w io.Writer, logger zerolog.Logger) error {
	var (
		r   *result
		err error
	)
	switch o.command {
	case "calc":
		r, err = calc(o, logger)
	case "sqrt":
		r, err = sqrt(o, logger)
	case "approx":
		r, err = approx(o, logger)
	default:
		return errors.Errorf("unknown command %q", o.command)
	}
	if err != nil {
		return err
	}

	if o.json {
		enc := json.NewEncoder(w)
		return errors.Wrap(enc.Encode(r), "encoding result")
	}
	switch {
	case r.Cmp != nil:
		_, err = fmt.Fprintln(w, *r.Cmp)
	case r.Ordered != nil:
		_, err = fmt.Fprintln(w, "unordered")
	default:
		_, err = fmt.Fprintln(w, *r.Value)
	}
	return err
}

func parseArg(name, s string) (fraction.Fraction, error) {
	x, err := fraction.Parse(s)
	if err != nil {
		return x, errors.Wrapf(err, "argument %s", name)
	}
	return x, nil
}

func calc(o *options, logger zerolog.Logger) (*result, error) {
	a, err := parseArg("<a>", o.a)
	if err != nil {
		return nil, err
	}
	b, err := parseArg("<b>", o.b)
	if err != nil {
		return nil, err
	}
	r := &result{Command: "calc", Args: []fraction.Fraction{a, b}, Op: o.op}

	var v fraction.Fraction
	switch o.op {
	case "+":
		v = a.Add(b)
	case "-":
		v = a.Sub(b)
	case "x", "*":
		v = a.Mul(b)
	case "/":
		v = a.Div(b)
	case "cmp":
		c, ok := a.Cmp(b)
		logger.Debug().Stringer("a", a).Stringer("b", b).Int("cmp", c).Bool("ordered", ok).Msg("calc")
		r.Ordered = &ok
		if ok {
			r.Cmp = &c
		}
		return r, nil
	default:
		return nil, errors.Errorf("unknown operator %q", o.op)
	}

	logger.Debug().
		Stringer("a", a).
		Str("op", o.op).
		Stringer("b", b).
		Stringer("value", v).
		Stringer("category", v.Category()).
		Msg("calc")
	r.Value = &v
	return r, nil
}

func sqrt(o *options, logger zerolog.Logger) (*result, error) {
	n, err := parseArg("<n>", o.a)
	if err != nil {
		return nil, err
	}
	root, ok, converged := fraction.SqrtTrace(n, func(step int, estimate fraction.Fraction) {
		logger.Debug().Int("step", step).Stringer("estimate", estimate).Msg("sqrt")
	})
	if !ok {
		return nil, errors.Errorf("no square root of %s", n)
	}
	if !converged {
		logger.Warn().
			Stringer("n", n).
			Int("steps", fraction.MaxSqrtIterations).
			Msg("sqrt stopped before converging")
	}
	return &result{Command: "sqrt", Args: []fraction.Fraction{n}, Value: &root, Converged: &converged}, nil
}

func approx(o *options, logger zerolog.Logger) (*result, error) {
	v, ok := new(big.Rat).SetString(o.a)
	if !ok {
		return nil, errors.Errorf("argument <value>: not a rational number: %q", o.a)
	}
	x := fraction.FromRat(v)
	logger.Debug().
		Str("exact", v.RatString()).
		Stringer("value", x).
		Float64("float", x.Float64()).
		Msg("approx")
	return &result{Command: "approx", Value: &x}, nil
}
