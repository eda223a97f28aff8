package bfconfigs

import (
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
)

// RawOutput makes . write cell bytes unescaped.
type RawOutput bool

var rawOutputFlag = cmds.Tristate("-raw")

func init() {
	cmds.Describe("-raw", "write output bytes unescaped")
}

func (Module) RawOutput(
	loader configs.Loader,
) RawOutput {
	if v, ok := rawOutputFlag(); ok {
		return RawOutput(v)
	}
	return RawOutput(configs.First[bool](loader, "raw_output"))
}
