package bftape

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

// PrintState writes the display window of the tape, highlighting the pointer when color applies to w.
type PrintState func(w io.Writer, tape *Tape) error

func (Module) PrintState(
	cells bfconfigs.DisplayCells,
	color bfconfigs.Color,
) PrintState {
	return func(w io.Writer, tape *Tape) error {
		highlight := false
		switch color {
		case bfconfigs.ColorAlways:
			highlight = true
		case bfconfigs.ColorAuto:
			highlight = isTerminal(w)
		}
		return PrintTape(w, tape, int(cells), highlight)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// BuildVM creates machines configured from the scope.
type BuildVM func(program Program, input io.Reader, output io.Writer) *VM

func (Module) BuildVM(
	raw bfconfigs.RawOutput,
	debug bfconfigs.DebugInstruction,
	printState PrintState,
	writer logs.Writer,
	logger logs.Logger,
) BuildVM {
	return func(program Program, input io.Reader, output io.Writer) *VM {
		vm := NewVM(program, input, output)
		vm.Raw = bool(raw)
		if debug {
			vm.Dump = func(vm *VM) {
				logger.Debug("dump",
					"ip", vm.IP,
					"pointer", vm.Tape.Pointer,
					"loops", len(vm.Loops),
				)
				if err := printState(writer, vm.Tape); err != nil {
					logger.Warn("dump tape", "error", err)
				}
			}
		}
		return vm
	}
}
