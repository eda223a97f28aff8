package bfconfigs

import (
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/vars"
)

type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

var colorFlag = cmds.Var[Color]("-color")

func init() {
	cmds.Describe("-color", "<auto|always|never> highlight the pointer cell")
}

func (Module) Color(
	loader configs.Loader,
	logger logs.Logger,
) Color {
	color := vars.FirstNonZero(
		*colorFlag,
		configs.First[Color](loader, "color"),
		ColorAuto,
	)
	switch color {
	case ColorAuto, ColorAlways, ColorNever:
		return color
	}
	logger.Warn("unknown color setting", "color", color)
	return ColorAuto
}
