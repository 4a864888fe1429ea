package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"

	"github.com/leonardinius/mathexpr/internal/parser"
	"github.com/leonardinius/mathexpr/internal/scanner"
)

const commandsHelp = `:help              show this help
:trace [on|off]    toggle or set trace output
:ast <expr>        print the parse tree
:rpn <expr>        print the expression in reverse Polish notation
:tokens <expr>     print the scanned tokens
:funcs             list functions and constants`

type command func(app *CalcApp, args []string) error

var commands = map[string]command{
	"help":   cmdHelp,
	"trace":  cmdTrace,
	"ast":    cmdAst,
	"rpn":    cmdRPN,
	"tokens": cmdTokens,
	"funcs":  cmdFuncs,
}

func (app *CalcApp) command(line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("bad command %q: %w", line, err)
	}
	if len(words) == 0 {
		return errors.New("empty command, try :help")
	}

	cmd, ok := commands[words[0]]
	if !ok {
		return fmt.Errorf("unknown command :%s, try :help", words[0])
	}

	return cmd(app, words[1:])
}

func cmdHelp(app *CalcApp, _ []string) error {
	fmt.Fprintln(app.opts.stdout, commandsHelp)
	return nil
}

func cmdTrace(app *CalcApp, args []string) error {
	switch {
	case len(args) == 0:
		app.opts.trace = !app.opts.trace
	case len(args) == 1 && args[0] == "on":
		app.opts.trace = true
	case len(args) == 1 && args[0] == "off":
		app.opts.trace = false
	default:
		return errors.New("usage: :trace [on|off]")
	}

	state := "off"
	if app.opts.trace {
		state = "on"
	}
	fmt.Fprintf(app.opts.stdout, "trace %s\n", state)
	return nil
}

func cmdAst(app *CalcApp, args []string) error {
	expr, err := parseArgs(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, parser.NewAstPrinter().Print(expr))
	return nil
}

func cmdRPN(app *CalcApp, args []string) error {
	expr, err := parseArgs(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.opts.stdout, parser.NewRPNPrinter().Print(expr))
	return nil
}

func cmdTokens(app *CalcApp, args []string) error {
	tokens, err := scanner.NewScanner(strings.Join(args, " ")).Scan()
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Fprintln(app.opts.stdout, tok.GoString())
	}
	return nil
}

func cmdFuncs(app *CalcApp, _ []string) error {
	fmt.Fprintf(app.opts.stdout, "functions: %s\n", strings.Join(scanner.FunctionNames(), " "))
	fmt.Fprintf(app.opts.stdout, "constants: %s π\n", strings.Join(scanner.ConstantNames(), " "))
	return nil
}

func parseArgs(args []string) (parser.Expr, error) {
	tokens, err := scanner.NewScanner(strings.Join(args, " ")).Scan()
	if err != nil {
		return nil, err
	}

	return parser.NewParser(tokens).Parse()
}

func newCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(":trace", readline.PcItem("on"), readline.PcItem("off")),
	}
	for _, name := range []string{":help", ":ast", ":rpn", ":tokens", ":funcs"} {
		items = append(items, readline.PcItem(name))
	}
	for _, name := range scanner.FunctionNames() {
		items = append(items, readline.PcItem(name+"("))
	}

	return readline.NewPrefixCompleter(items...)
}
