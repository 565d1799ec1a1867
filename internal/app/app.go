// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"eratos/internal/cli"
	"eratos/internal/cmdutil"
	"eratos/internal/prompt"
	"eratos/internal/version"
	"eratos/internal/writers"
)

const (
	limitQuestion = "Please enter an upper limit for prime number generation (between 2 and %d): "
	fileQuestion  = "Enter filename for output file (*.csv) or <enter> for screenprint: "
)

// RunContext runs one eratos invocation and returns its exit code:
// 0 ok, 2 usage or invalid limit, 3 allocation or I/O failure, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	finish := func(code int) int {
		if c := cmdutil.ExitCode(outw.Flush(), stderr); c != 0 {
			return c
		}
		return code
	}

	fs := cli.NewFlagSet("eratos")
	cli.UsageCommon(fs, "eratos")

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return finish(0)
		}
		cmdutil.Errorf(stderr, "%v", err)
		if errors.Is(err, cli.ErrInvalidLimit) {
			_, _ = fmt.Fprintln(stderr, "Program aborted due to invalid limit.")
			return finish(2)
		}
		fs.Usage()
		return finish(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "eratos version %s\n", version.Version)
		return finish(0)
	}

	p := prompt.New(stdin, outw)
	if !opts.LimitSet {
		line, err := p.Ask(fmt.Sprintf(limitQuestion, cli.MaxLimit))
		if err != nil {
			cmdutil.Errorf(stderr, "invalid input: %v", err)
			_, _ = fmt.Fprintln(stderr, "Program aborted.")
			return finish(2)
		}
		n, err := cli.ParseLimit(line)
		if err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			_, _ = fmt.Fprintln(stderr, "Program aborted due to invalid limit.")
			return finish(2)
		}
		opts.Limit, opts.LimitSet = n, true
	}
	if opts.File == "" && opts.Output == "" && !opts.NoPrompt {
		ans, err := p.Ask(fileQuestion)
		if err != nil && !errors.Is(err, prompt.ErrNoInput) {
			cmdutil.Errorf(stderr, "%v", err)
			return finish(3)
		}
		opts.File = strings.TrimSpace(ans)
	}

	toFile := opts.File != "" && opts.File != "-"
	if toFile && !writers.HasCSVName(opts.File) {
		cmdutil.Warnf(stderr, opts.Quiet, "output file name should end with .csv; using %s anyway", opts.File)
	}
	// status chatter would corrupt a listing streamed to stdout
	chatty := !opts.Quiet && opts.File != "-"

	open := func() (io.WriteCloser, error) {
		if opts.File == "" {
			cmdutil.Headerf(outw, !chatty, "Prime numbers up to %d:", opts.Limit)
			return writers.Create("-", outw)
		}
		return writers.Create(opts.File, outw)
	}

	total, err := cmdutil.RunSieve(parent, opts.Limit, opts.MaxMemory, opts.Format(), open)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return finish(130)
		case writers.IsBrokenPipe(err):
			return finish(0)
		}
		cmdutil.Errorf(stderr, "%v", err)
		return finish(3)
	}

	if toFile {
		cmdutil.Statusf(outw, !chatty, "Sieve written to %s (%d primes)", opts.File, total)
	}
	cmdutil.Statusf(outw, !chatty, "Program completed successfully.")
	return finish(0)
}

// Run is RunContext with a background context and no interactive input.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, strings.NewReader(""), stdout, stderr)
}
