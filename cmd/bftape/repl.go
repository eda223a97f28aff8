package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bftape/bftape"
)

const (
	programPrompt = "> "
	inputPrompt   = ", "
)

func runREPL(build bftape.BuildVM, printState bftape.PrintState) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bftape_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      programPrompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	vm := build(nil, &lineInput{rl: rl}, rl.Stdout())
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := vm.Exec(bftape.ParseProgram(line)); err != nil {
			fmt.Fprintf(rl.Stderr(), "\nerror: %v\n", err)
		} else {
			fmt.Fprintln(rl.Stdout())
		}
		if err := printState(rl.Stdout(), vm.Tape); err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
	}
}

// lineInput feeds , from lines typed at the input prompt, each ending in a newline.
type lineInput struct {
	rl  *readline.Instance
	buf []byte
}

func (l *lineInput) ReadByte() (byte, error) {
	for len(l.buf) == 0 {
		l.rl.SetPrompt(inputPrompt)
		line, err := l.rl.Readline()
		l.rl.SetPrompt(programPrompt)
		if err != nil {
			return 0, err
		}
		l.buf = append([]byte(line), '\n')
	}
	b := l.buf[0]
	l.buf = l.buf[1:]
	return b, nil
}

func (l *lineInput) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, err := l.ReadByte()
	if err != nil {
		return 0, err
	}
	p[0] = b
	return 1, nil
}
