package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith"
)

func main() {
	if err := newCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "arith: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	inname  string
	vars    string
	given   []string
	lines   bool
	share   bool
	echo    bool
	debug   bool
	noColor bool
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "arith [flags] [expression ...]",
		Short:         "Evaluate arithmetic expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.inname, "in", "", `input file ("-" for stdin; default stdin if no args given)`)
	f.BoolVarP(&opts.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	f.StringArrayVar(&opts.given, "given", nil, "name=expression variable definition (any number of times)")
	f.StringVar(&opts.vars, "vars", "", "YAML file mapping variable names to values")
	f.BoolVar(&opts.share, "share", false, "keep assignments from one expression for the next")
	f.BoolVar(&opts.echo, "echo", false, "print each expression before its result")
	f.BoolVar(&opts.debug, "debug", false, "log evaluation steps to stderr")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	level := zerolog.WarnLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: opts.noColor}).
		Level(level).
		With().Timestamp().Logger()

	seed := arith.NewContext(arith.Logger(log))
	if opts.vars != "" {
		if err := loadVars(seed, opts.vars); err != nil {
			return err
		}
	}
	for _, d := range opts.given {
		name, src, ok := strings.Cut(d, "=")
		if !ok {
			return fmt.Errorf(`variable definitions must be "name=expression", not %q`, d)
		}
		if _, err := seed.Assign(name, src); err != nil {
			return fmt.Errorf("setting %s: %w", strings.TrimSpace(name), err)
		}
	}

	srcs, err := inputs(cmd.InOrStdin(), opts.inname, args, opts.lines)
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(srcs)).Int("vars", len(seed.Vars())).Msg("start")

	red := color.New(color.FgRed)
	if opts.noColor {
		red.DisableColor()
	}
	out := cmd.OutOrStdout()
	failed := 0
	ctx := seed
	for _, src := range srcs {
		if !opts.share {
			ctx = seed.Clone()
		}
		if opts.echo {
			fmt.Fprintf(out, "%s : ", strings.TrimSpace(src))
		}
		r, err := ctx.Eval(src)
		if err != nil {
			failed++
			red.Fprintln(out, arith.Message(err))
			continue
		}
		fmt.Fprintln(out, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// inputs collects the programs to evaluate: those read from the input file,
// then each argument.
func inputs(stdin io.Reader, inname string, args []string, lines bool) ([]string, error) {
	var srcs []string
	in, done, err := infile(stdin, inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if in != nil {
		defer done()
		if lines {
			sc := bufio.NewScanner(in)
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
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			srcs = append(srcs, string(b))
		}
	}
	return append(srcs, args...), nil
}

func infile(stdin io.Reader, inname string, std bool) (io.Reader, func() error, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		return f, f.Close, nil
	case inname == "-", std:
		return stdin, func() error { return nil }, nil
	}
	return nil, nil, nil
}
