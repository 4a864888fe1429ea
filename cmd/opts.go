package cmd

import (
	"io"
	"os"

	"github.com/leonardinius/mathexpr/internal/calcerrors"
)

type appOpts struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	reporter calcerrors.ErrReporter
	prompt   string
	trace    bool
}

var defaultAppOpts = appOpts{
	stdin:  os.Stdin,
	stdout: os.Stdout,
	stderr: os.Stderr,
	prompt: "> ",
}

type AppOption func(*appOpts)

func WithStdin(stdin io.Reader) AppOption {
	return func(opts *appOpts) {
		opts.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

// WithStderr also redirects the default error reporter.
func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithErrorReporter(r calcerrors.ErrReporter) AppOption {
	return func(opts *appOpts) {
		opts.reporter = r
	}
}

func WithPrompt(prompt string) AppOption {
	return func(opts *appOpts) {
		opts.prompt = prompt
	}
}

// WithTrace prints the evaluation trace after every result.
func WithTrace(enabled bool) AppOption {
	return func(opts *appOpts) {
		opts.trace = enabled
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := defaultAppOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.reporter == nil {
		opts.reporter = calcerrors.NewErrReporter(opts.stderr)
	}

	return &opts
}
