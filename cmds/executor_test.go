package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var cells int
	executor.Define("-default-cells", Func(func() {
		cells = 30
	}))
	executor.Define("-cells", Func(func(n int) {
		cells = n
	}))

	if err := executor.Execute([]string{"-default-cells"}); err != nil {
		t.Fatal(err)
	}
	if cells != 30 {
		t.Fatal()
	}

	if err := executor.Execute([]string{"-cells", "8"}); err != nil {
		t.Fatal(err)
	}
	if cells != 8 {
		t.Fatal()
	}

	err := executor.Execute([]string{"-tape"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -tape") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-cells", "eight"})
	if err == nil || !strings.Contains(err.Error(), "convert eight to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-cells"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	boom := errors.New("boom")
	executor.Define("fail", Func(func() error {
		return boom
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var history, prompt int
	executor.Define("repl", Sub(map[string]*Command{
		"-history": Func(func() {
			history = 1
		}),
		"-prompt": Func(func(i int) {
			prompt = i
		}),
	}))

	if err := executor.Execute([]string{
		"repl",
		"-history",
		"-prompt", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if history != 1 {
		t.Fatal()
	}
	if prompt != 42 {
		t.Fatal()
	}

	// sub commands are only visible after their parent
	if err := NewExecutor().Execute([]string{"-history"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}
}
