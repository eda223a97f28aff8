package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor and exits on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}

// Describe sets the usage line of an already defined global command.
func Describe(name string, desc string) {
	if cmd, ok := GlobalExecutor.commands[name]; ok {
		cmd.Desc(desc)
	}
}
