package bftape

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bf")
	b := filepath.Join(dir, "b.bf")
	if err := os.WriteFile(a, []byte("++\r\n[>+\n<-]"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("\n>.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	program, err := LoadProgram(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if program.String() != "++[>+<-]>." {
		t.Fatalf("got %q", program)
	}

	_, err = LoadProgram(filepath.Join(dir, "none.bf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestProgramPositionsAreCharacters(t *testing.T) {
	vm := NewVM(ParseProgram("é]"), nil, nil)
	err := vm.Run()
	var e *Error
	if !errors.As(err, &e) || e.Pos != 1 {
		t.Fatalf("got %v", err)
	}
}
