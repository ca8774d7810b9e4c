package controllers

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docbatch/internal/domain/entities"
)

// loadSettings resolves the settings for a command invocation: an explicit
// --config path must load, a discovered file is used when present, and the
// built-in documentation-repo plan is the fallback.
func loadSettings(configPath string) (*entities.Settings, error) {
	if configPath != "" {
		return entities.NewSettings(configPath)
	}

	found, err := entities.FindSettingsFile()
	if err != nil {
		logger.Debug("No settings file found, using the built-in plan")
		return entities.DefaultSettings(), nil
	}

	logger.Infof("Using settings file: %s", found)
	return entities.NewSettings(found)
}

// repoDirFromArgs returns the repository path argument, defaulting to the
// current directory.
func repoDirFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
