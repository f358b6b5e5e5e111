package commands

import (
	"os"

	"github.com/boreq/ircline/config"
	"github.com/boreq/ircline/utils"
	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

func runInit(opts docopt.Opts) error {
	if force, _ := opts.Bool("-f"); !force {
		_, err := os.Stat(config.GetConfigPath())
		if err == nil || !os.IsNotExist(err) {
			return errors.New("config already exists, use '-f' to overwrite")
		}
	}

	if err := utils.EnsureDirExists(config.GetDirPath(), false); err != nil {
		return errors.Wrap(err, "could not create the config directory")
	}
	conf := config.Default()
	return conf.Save(config.GetConfigPath())
}
