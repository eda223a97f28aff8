package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

var filenames = []string{
	"bftape.cue",
	".bftape.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)

	dirs := []string{}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	// host-wide files only apply to real runs
	if mode == modes.ModeProduction {
		if dir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, dir)
		}
		dirs = append(dirs, "/etc")
	}

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}

	return configs.NewLoader(paths, schema)
}
