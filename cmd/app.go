package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/mathexpr/internal/engine"
)

const usage = `Usage: mathexpr [-t] [expression...]
       mathexpr [-t] -f <file>

Without arguments starts an interactive prompt. Type :help there for commands.`

type CalcApp struct {
	opts *appOpts
	err  error
}

func NewCalcApp(options ...AppOption) *CalcApp {
	return &CalcApp{opts: newAppOpts(options...)}
}

func (app *CalcApp) reportError(err error) {
	app.opts.reporter.ReportError(err)
	app.err = err
}

func (app *CalcApp) Main(args []string) int {
	var file string
	var err error

flags:
	for len(args) > 0 {
		switch args[0] {
		case "-t":
			app.opts.trace = true
			args = args[1:]
			continue
		case "-f":
			if len(args) != 2 {
				err = errors.New(usage)
			} else {
				file = args[1]
			}
			args = nil
			continue
		case "-h", "--help":
			fmt.Fprintln(app.opts.stdout, usage)
			return 0
		}
		break flags
	}

	switch {
	case err != nil:
	case file != "":
		err = app.runFile(file)
	case len(args) == 0:
		err = app.runPrompt()
	default:
		err = app.runArgs(args)
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *CalcApp) resetError() {
	app.err = nil
}

func (app *CalcApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          app.opts.prompt,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           io.NopCloser(app.opts.stdin),
		Stdout:          app.opts.stdout,
		Stderr:          app.opts.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if err != nil {
			return err
		}

		app.run(line)
		app.resetError()
	}
}

func (app *CalcApp) runFile(scriptPath string) error {
	f, err := os.Open(scriptPath)
	if err != nil {
		return err
	}
	defer f.Close()

	lines := bufio.NewScanner(f)
	for lines.Scan() {
		app.run(lines.Text())
	}

	return lines.Err()
}

func (app *CalcApp) runArgs(args []string) error {
	for _, arg := range args {
		app.run(arg)
	}
	return nil
}

// run handles one line of input: a meta-command, an expression or nothing.
// Errors are reported, never returned; app.err keeps the last one.
func (app *CalcApp) run(line string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("internal error on %q: %v", line, r)
			app.opts.reporter.ReportPanic(err)
			app.err = err
		}
	}()

	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case strings.HasPrefix(line, ":"):
		if err := app.command(line[1:]); err != nil {
			app.reportError(err)
		}
	default:
		if err := app.evaluate(line); err != nil {
			app.reportError(err)
		}
	}
}

func (app *CalcApp) evaluate(source string) error {
	result, err := engine.Evaluate(source, engine.WithTrace(app.opts.trace))
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, result)
	for idx, line := range result.Trace {
		fmt.Fprintf(app.opts.stdout, "  %d. %s\n", idx+1, line)
	}

	return nil
}
