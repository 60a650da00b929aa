package commands

import (
	"os"

	"github.com/boreq/fabric/config"
)

// The name of the environment variable which specifies the location of the
// config file.
const ConfigEnvVar = "FABRICCONFIG"

// GetConfig returns the configuration of the tool. If the env variable does
// not point at a config file the defaults are used.
func GetConfig() (*config.Config, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
