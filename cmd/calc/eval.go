package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

type evalOpts struct {
	inname, verb     string
	nl, echo, tabled bool
}

func newEvalCmd(a *app) *cobra.Command {
	var o evalOpts
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions given as arguments or read from input",
		Long: `Evaluate each argument as an expression. With no arguments, the whole
of standard input (or the --in file) is one expression, or each line is
one expression with -n.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := o.inputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return a.eval(cmd.OutOrStdout(), srcs, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.inname, "in", "", `input file, or "-" for stdin (default stdin if no args given)`)
	f.StringVar(&o.verb, "fmt", "", "result formatting verb, e.g. %g (default calculator display)")
	f.BoolVarP(&o.nl, "lines", "n", false, "parse separate input lines as separate expressions")
	f.BoolVar(&o.echo, "echo", false, "print parse trees")
	f.BoolVar(&o.tabled, "table", false, "print results as a table")
	return cmd
}

// inputs collects the expressions to evaluate.
func (o *evalOpts) inputs(stdin io.Reader, args []string) ([]string, error) {
	var srcs []string
	r, closer, err := infile(o.inname, stdin, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if r != nil {
		defer closer.Close()
		if o.nl {
			sc := bufio.NewScanner(r)
			for sc.Scan() {
				if strings.TrimSpace(sc.Text()) == "" {
					continue
				}
				srcs = append(srcs, sc.Text())
			}
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
		} else {
			b, err := io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			srcs = append(srcs, string(b))
		}
	}
	return append(srcs, args...), nil
}

func infile(inname string, stdin io.Reader, std bool) (io.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case inname == "-", std:
		return stdin, io.NopCloser(nil), nil
	}
	return nil, nil, nil
}

// result is the outcome of one expression.
type result struct {
	src  string
	tree string
	text string
	err  error
}

// eval evaluates each expression and writes the results to w. Every
// expression is evaluated even if some fail; the error reports how many did.
func (a *app) eval(w io.Writer, srcs []string, o evalOpts) error {
	format := a.formatter(o.verb)
	res := make([]result, 0, len(srcs))
	failed := 0
	for _, src := range srcs {
		r := result{src: strings.TrimSpace(src)}
		e, err := calc.ParseString(src)
		if err != nil {
			a.log.Warn("evaluation failed", slog.String("expr", r.src), slog.Any("err", err))
			r.err = err
			failed++
		} else {
			x := e.Eval()
			r.tree = e.String()
			r.text = format(x)
			a.log.Debug("evaluated", slog.String("expr", r.src), slog.Float64("result", x))
		}
		res = append(res, r)
	}

	if o.tabled {
		a.writeTable(w, res, o.echo)
	} else {
		a.writePlain(w, res, o.echo)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

func (a *app) writePlain(w io.Writer, res []result, echo bool) {
	red := color.New(color.FgRed)
	for _, r := range res {
		if r.err != nil {
			red.Fprintf(w, "%s: %v\n", a.cfg.Display.ErrorText, r.err)
			continue
		}
		if echo {
			fmt.Fprintf(w, "%s : ", r.tree)
		}
		fmt.Fprintln(w, r.text)
	}
}

func (a *app) writeTable(w io.Writer, res []result, echo bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	hdr := table.Row{"#", "Expression", "Result"}
	if echo {
		hdr = append(hdr, "Tree")
	}
	t.AppendHeader(hdr)
	for i, r := range res {
		text := r.text
		if r.err != nil {
			text = color.RedString("%s: %v", a.cfg.Display.ErrorText, r.err)
		}
		row := table.Row{strconv.Itoa(i + 1), r.src, text}
		if echo {
			row = append(row, r.tree)
		}
		t.AppendRow(row)
	}
	t.Render()
}
