package bfconfigs

import (
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
)

// DebugInstruction turns # into a tape dump.
type DebugInstruction bool

var debugInstructionFlag = cmds.Tristate("-debug")

func init() {
	cmds.Describe("-debug", "dump the tape on #")
}

func (Module) DebugInstruction(
	loader configs.Loader,
) DebugInstruction {
	if v, ok := debugInstructionFlag(); ok {
		return DebugInstruction(v)
	}
	return DebugInstruction(configs.First[bool](loader, "debug_instruction"))
}
