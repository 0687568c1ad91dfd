package common

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dominant-strategies/go-evmspec/cmd/options"
	"github.com/dominant-strategies/go-evmspec/common/constants"
	"github.com/dominant-strategies/go-evmspec/log"
	"github.com/spf13/viper"
)

// InitConfig initializes the viper config instance ensuring that environment variables
// take precedence over config file parameters.
// Environment variables should be prefixed with the application name (e.g. GO_EVMSPEC_LOG_LEVEL).
// It panics if an error occurs while reading an existing config file.
func InitConfig() {
	// read in config file and merge with defaults
	log.Debugf("loading config from file: %s", viper.ConfigFileUsed())
	err := viper.ReadInConfig()
	if err != nil {
		// if error is type ConfigFileNotFoundError or fs.PathError, ignore error
		if _, ok := err.(*fs.PathError); ok || errors.Is(err, viper.ConfigFileNotFoundError{}) {
			log.Debugf("config file not found: %s", viper.ConfigFileUsed())
		} else {
			log.Errorf("error reading config file: %s", err)
			// config file was found but another error was produced. Cannot continue
			panic(err)
		}
	}

	log.Debugf("loading config from environment variables with prefix: '%s_'", constants.ENV_PREFIX)
	viper.SetEnvPrefix(constants.ENV_PREFIX)
	viper.AutomaticEnv()
}

// SaveConfig saves the config file with the current config parameters.
//
// If the config file does not exist, it creates it. If it exists, a backup
// copy ending with .bak is kept and the file is overwritten.
func SaveConfig() error {
	configFile := viper.ConfigFileUsed()
	log.Debugf("saving/updating config file: %s", configFile)
	if _, err := os.Stat(configFile); err == nil {
		// config file exists, create backup copy
		if err := os.Rename(configFile, configFile+".bak"); err != nil {
			return err
		}
	} else if os.IsNotExist(err) {
		// config file does not exist, make sure the directory does
		configDir := viper.GetString(options.CONFIG_DIR)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return err
		}
	} else {
		return err
	}

	return viper.WriteConfigAs(configFile)
}
