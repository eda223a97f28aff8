package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bftape/bftape"
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

func TestDescribe(t *testing.T) {
	program := bftape.ParseProgram("++[>+<-]]")
	vm := bftape.NewVM(program, nil, nil)
	err := vm.Run()
	if !errors.Is(err, bftape.ErrUnmatchedCloseBrace) {
		t.Fatalf("got %v", err)
	}
	got := describe(program, err)
	want := "unmatched ] at 8\n  ++[>+<-]]\n          ^"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}

	other := errors.New("write failed")
	if describe(program, other) != "write failed" {
		t.Fatal()
	}
}

func TestExcerptClipsLongPrograms(t *testing.T) {
	program := bftape.ParseProgram(strings.Repeat("+", 40) + "]" + strings.Repeat("-", 40))
	got := excerpt(program, 40)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", got)
	}
	if lines[0] != strings.Repeat("+", 16)+"]"+strings.Repeat("-", 16) {
		t.Fatalf("got %q", lines[0])
	}
	if strings.Index(lines[1], "^") != 2+16 {
		t.Fatalf("got %q", lines[1])
	}
}

func TestExcerptFlattensLineBreaks(t *testing.T) {
	program := bftape.ParseProgram("+\n+\t]")
	got := excerpt(program, 4)
	if got != "+ + ]\n      ^" {
		t.Fatalf("got %q", got)
	}
}

func TestRunExitCode(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{"-e", "+]"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-e."})

	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cmds.GlobalExecutor.MustExecute([]string{"-input", path})
	defer cmds.GlobalExecutor.MustExecute([]string{"-input."})

	dscope.New(
		new(bftape.Module),
		new(debugs.Module),
		modes.ForTest(t),
	).Call(func(
		build bftape.BuildVM,
		printState bftape.PrintState,
		newSpan logs.NewSpan,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		if code := run(build, printState, newSpan, logger, tap); code != 1 {
			t.Fatalf("got %d", code)
		}
		cmds.GlobalExecutor.MustExecute([]string{"-e", "+"})
		if code := run(build, printState, newSpan, logger, tap); code != 0 {
			t.Fatalf("got %d", code)
		}
	})
}

func TestLoadProgram(t *testing.T) {
	program, err := loadProgram()
	if err != nil {
		t.Fatal(err)
	}
	if program.String() != bftape.HelloWorld {
		t.Fatalf("got %q", program)
	}

	path := filepath.Join(t.TempDir(), "a.bf")
	if err := os.WriteFile(path, []byte("+\n."), 0644); err != nil {
		t.Fatal(err)
	}
	cmds.GlobalExecutor.MustExecute([]string{"-file", path})
	defer cmds.GlobalExecutor.MustExecute([]string{"-file."})
	program, err = loadProgram()
	if err != nil {
		t.Fatal(err)
	}
	if program.String() != "+." {
		t.Fatalf("got %q", program)
	}

	cmds.GlobalExecutor.MustExecute([]string{"-e", ",."})
	defer cmds.GlobalExecutor.MustExecute([]string{"-e."})
	program, err = loadProgram()
	if err != nil {
		t.Fatal(err)
	}
	if program.String() != ",." {
		t.Fatalf("got %q", program)
	}
}

func TestMachineGlobals(t *testing.T) {
	vm := bftape.NewVM(bftape.ParseProgram("+++<"), nil, nil)
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	globals := machineGlobals(vm)
	if globals["pointer"] != bftape.TapeSize-1 {
		t.Fatalf("got %v", globals["pointer"])
	}
	cell := globals["cell"].(func(int) int)
	if cell(0) != 3 || cell(bftape.TapeSize) != 3 || cell(-1) != 0 {
		t.Fatal()
	}
	if tape := globals["tape"].([]byte); len(tape) != bftape.TapeSize {
		t.Fatalf("got %d", len(tape))
	}
}

func TestLineInput(t *testing.T) {
	in := &lineInput{buf: []byte("ab")}
	vm := bftape.NewVM(bftape.ParseProgram(",.,."), in, nil)
	out := new(bytes.Buffer)
	vm.Output = out
	if err := vm.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "ab" {
		t.Fatalf("got %q", out.String())
	}
}
