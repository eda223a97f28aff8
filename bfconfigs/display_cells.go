package bfconfigs

import (
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
)

// DisplayCells is the number of leading cells printed after a run.
type DisplayCells int

const DefaultDisplayCells = 30

var displayCellsFlag = cmds.Optional[int]("-cells")

func init() {
	cmds.Describe("-cells", "<n> number of cells printed after a run")
}

func (Module) DisplayCells(
	loader configs.Loader,
) DisplayCells {
	if n, ok := displayCellsFlag(); ok {
		return DisplayCells(max(0, n))
	}
	if n, ok := configs.Lookup[int](loader, "display_cells"); ok {
		return DisplayCells(n)
	}
	return DefaultDisplayCells
}
