package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("repl", Sub(map[string]*Command{
		"-history": Func(func() {}).Desc("HISTORY"),
		"-theme": Sub(map[string]*Command{
			"dark": Func(func() {}).Desc("DARK"),
		}).Desc("THEME"),
	}).Desc("REPL"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	got := buf.String()
	for _, want := range []string{
		"-h, help, -help, --help\tprint this usage\n",
		"repl\tREPL\n",
		"  -history\tHISTORY\n",
		"  -theme\tTHEME\n",
		"    dark\tDARK\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Count(got, "--help") != 1 {
		t.Fatalf("alias listed twice:\n%s", got)
	}
}
