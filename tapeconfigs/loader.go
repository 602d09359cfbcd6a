package tapeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turingtape/configs"
	"github.com/reusee/turingtape/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"tape.cue",
	".tape.cue",
	"tape.toml",
	".tape.toml",
}

// ConfigsLoader looks in the working directory, then the user config dir, then /etc.
// Earlier files win.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := findFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findFiles(dirs []string) (paths []string) {
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
