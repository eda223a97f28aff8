package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/reusee/bftape/bftape"
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

var (
	programFiles = cmds.Collect[string]("-file")
	programText  = cmds.Var[string]("-e")
	inputFile    = cmds.Var[string]("-input")
	tapOnHalt    = cmds.Switch("-tap")
	replMode     bool
)

func init() {
	cmds.Describe("-file", "<path> program file, repeatable")
	cmds.Describe("-e", "<program> program text")
	cmds.Describe("-input", "<path> input for , instead of stdin")
	cmds.Describe("-tap", "inspect the halted machine in a starlark repl")
	cmds.Define("repl", cmds.Func(func() {
		replMode = true
	}).Desc("read programs line by line, keeping the tape"))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(bftape.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	var code int
	scope.Call(func(
		build bftape.BuildVM,
		printState bftape.PrintState,
		newSpan logs.NewSpan,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		code = run(build, printState, newSpan, logger, tap)
	})
	os.Exit(code)
}

func run(
	build bftape.BuildVM,
	printState bftape.PrintState,
	newSpan logs.NewSpan,
	logger logs.Logger,
	tap debugs.Tap,
) int {
	ctx, _ := newSpan(context.Background(), "")

	if replMode {
		runREPL(build, printState)
		return 0
	}

	program, err := loadProgram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var input io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	vm := build(program, input, os.Stdout)
	logger.DebugContext(ctx, "run", "instructions", len(program))
	runErr := vm.Run()

	if err := printState(os.Stdout, vm.Tape); err != nil {
		logger.WarnContext(ctx, "print tape", "error", err)
	}

	if *tapOnHalt {
		if err := tap(ctx, "halt", machineGlobals(vm)); err != nil {
			logger.WarnContext(ctx, "tap", "error", err)
		}
	}

	if runErr != nil {
		logger.DebugContext(ctx, "halted", "error", logs.WrapSpan(ctx, runErr))
		fmt.Fprintf(os.Stderr, "Execution halted: %s\n", describe(vm.Program, runErr))
		return 1
	}
	return 0
}

func loadProgram() (bftape.Program, error) {
	switch {
	case *programText != "":
		return bftape.ParseProgram(*programText), nil
	case len(*programFiles) > 0:
		return bftape.LoadProgram(*programFiles...)
	}
	return bftape.ParseProgram(bftape.HelloWorld), nil
}

func describe(program bftape.Program, err error) string {
	var e *bftape.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return fmt.Sprintf("%v\n  %s", err, excerpt(program, e.Pos))
}

// excerpt shows the program around pos with a caret under it. Control characters print as spaces.
func excerpt(program bftape.Program, pos int) string {
	const margin = 16
	start := max(0, pos-margin)
	end := min(len(program), pos+margin+1)
	line := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, string(program[start:end]))
	return fmt.Sprintf("%s\n  %*s", line, pos-start+1, "^")
}

func machineGlobals(vm *bftape.VM) map[string]any {
	return map[string]any{
		"tape":    vm.Tape.Cells[:],
		"pointer": vm.Tape.Pointer,
		"ip":      vm.IP,
		"loops":   vm.Loops,
		"program": vm.Program.String(),
		"cell": func(i int) int {
			return int(vm.Tape.Cells[(i%bftape.TapeSize+bftape.TapeSize)%bftape.TapeSize])
		},
	}
}
