package bftape

import (
	"bufio"
	"fmt"
	"io"
)

type VM struct {
	Program Program
	IP      int
	Tape    *Tape
	Loops   []int

	Input  io.ByteReader
	Output io.Writer

	// Raw disables escaping of output bytes
	Raw bool
	// Dump handles the # instruction. nil makes # a no-op like any other unknown character.
	Dump func(*VM)

	buf []byte
}

func NewVM(program Program, input io.Reader, output io.Writer) *VM {
	vm := &VM{
		Program: program,
		Tape:    new(Tape),
		Output:  output,
	}
	switch r := input.(type) {
	case nil:
	case io.ByteReader:
		vm.Input = r
	default:
		vm.Input = bufio.NewReader(r)
	}
	if vm.Output == nil {
		vm.Output = io.Discard
	}
	return vm
}

// Step executes the instruction at IP and reports whether the program has halted.
func (v *VM) Step() (done bool, err error) {
	if v.IP >= len(v.Program) {
		return true, nil
	}
	ip := v.IP

	switch v.Program[ip] {

	case '+':
		v.Tape.Increment()

	case '-':
		v.Tape.Decrement()

	case '>':
		v.Tape.Advance()

	case '<':
		v.Tape.Retreat()

	case '.':
		if err := v.emit(v.Tape.Read()); err != nil {
			return false, fmt.Errorf("write output at %d: %w", ip, err)
		}

	case ',':
		b, err := v.readByte()
		if err != nil {
			return false, &Error{
				Kind:  ErrInputExhausted,
				Pos:   ip,
				Cause: err,
			}
		}
		v.Tape.Write(b)

	case '[':
		if v.Tape.Read() == 0 {
			end, ok := seekClosingBrace(v.Program, ip+1)
			if !ok {
				return false, &Error{
					Kind: ErrUnmatchedOpenBrace,
					Pos:  ip,
				}
			}
			v.IP = end + 1
			return v.IP >= len(v.Program), nil
		}
		v.Loops = append(v.Loops, ip)

	case ']':
		if len(v.Loops) == 0 {
			return false, &Error{
				Kind: ErrUnmatchedCloseBrace,
				Pos:  ip,
			}
		}
		// back to the [, which tests the cell again
		v.IP = v.Loops[len(v.Loops)-1]
		v.Loops = v.Loops[:len(v.Loops)-1]
		return false, nil

	case '#':
		if v.Dump != nil {
			v.Dump(v)
		}

	}

	v.IP++
	return v.IP >= len(v.Program), nil
}

// Steps yields the position of every executed instruction. Iteration ends at halt or after yielding the first error.
func (v *VM) Steps(yield func(int, error) bool) {
	for v.IP < len(v.Program) {
		ip := v.IP
		if _, err := v.Step(); err != nil {
			yield(ip, err)
			return
		}
		if !yield(ip, nil) {
			return
		}
	}
}

func (v *VM) Run() error {
	for _, err := range v.Steps {
		if err != nil {
			return err
		}
	}
	return nil
}

// Exec runs another program against the current tape.
func (v *VM) Exec(program Program) error {
	v.Program = program
	v.IP = 0
	v.Loops = v.Loops[:0]
	return v.Run()
}

func (v *VM) emit(b byte) error {
	if v.Raw {
		v.buf = append(v.buf[:0], b)
	} else {
		v.buf = appendEscaped(v.buf[:0], b)
	}
	_, err := v.Output.Write(v.buf)
	return err
}

func (v *VM) readByte() (byte, error) {
	if v.Input == nil {
		return 0, io.EOF
	}
	return v.Input.ReadByte()
}
