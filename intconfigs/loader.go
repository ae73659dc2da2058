package intconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"intcode.cue",
	".intcode.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var dirs []string
	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
