package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dominant-strategies/go-evmspec/cmd/options"
	"github.com/dominant-strategies/go-evmspec/common"
	"github.com/dominant-strategies/go-evmspec/common/constants"
	"github.com/dominant-strategies/go-evmspec/log"
	"github.com/dominant-strategies/go-evmspec/params"
)

var rootCmd = &cobra.Command{
	Use:               constants.APP_NAME,
	Short:             "EVM hardfork registry and activation rules",
	PersistentPreRunE: rootCmdPreRun,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		return err
	}
	return nil
}

func init() {
	// Location for default config directory
	defaultConfigDir := xdg.ConfigHome + "/" + constants.APP_NAME + "/"
	rootCmd.PersistentFlags().StringP(options.CONFIG_DIR, "c", defaultConfigDir, "config directory"+generateEnvDoc(options.CONFIG_DIR))

	// Log level to use (trace, debug, info, warn, error, fatal, panic)
	rootCmd.PersistentFlags().StringP(options.LOG_LEVEL, "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)"+generateEnvDoc(options.LOG_LEVEL))

	// Optional size rotated log file, in addition to stdout
	rootCmd.PersistentFlags().String(options.LOG_FILE, "", "tee logs into a size rotated file"+generateEnvDoc(options.LOG_FILE))

	// When set to true saves or updates the config file with the current config parameters
	rootCmd.PersistentFlags().BoolP(options.SAVE_CONFIG_FILE, "S", false, "save/update config file with current config parameters"+generateEnvDoc(options.SAVE_CONFIG_FILE))

	// Recognize the OP Stack fork band on top of mainline
	rootCmd.PersistentFlags().BoolP(options.OPTIMISM, "o", false, "recognize the OP Stack fork band"+generateEnvDoc(options.OPTIMISM))
}

func rootCmdPreRun(cmd *cobra.Command, args []string) error {
	// set logger immediately after parsing cobra flags
	logLevel := cmd.Flag(options.LOG_LEVEL).Value.String()
	log.ConfigureLogger(log.WithLevel(logLevel))
	if logFile := cmd.Flag(options.LOG_FILE).Value.String(); logFile != "" {
		log.ConfigureLogger(log.WithRotatingFile(logFile))
	}
	// set config path to read config file
	configDir := cmd.Flag(options.CONFIG_DIR).Value.String()
	viper.SetConfigFile(configDir + constants.CONFIG_FILE_NAME)
	viper.SetConfigType(constants.CONFIG_FILE_TYPE)
	// load config from file and environment variables
	common.InitConfig()
	// bind cobra flags to viper instance
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %s", err)
	}

	// Make sure config dir exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return err
		}
	}

	// save config file if SAVE_CONFIG_FILE flag is set to true
	if viper.GetBool(options.SAVE_CONFIG_FILE) {
		if err := common.SaveConfig(); err != nil {
			log.Errorf("error saving config file: %s . Skipping...", err)
		} else {
			log.Debugf("config file saved successfully")
		}
	}

	log.Tracef("config options loaded: %+v", viper.AllSettings())
	return nil
}

// registry returns the fork registry selected by the optimism flag.
func registry() *params.Registry {
	if viper.GetBool(options.OPTIMISM) {
		return params.OptimismRegistry
	}
	return params.MainnetRegistry
}

// helper function that given a cobra flag name, returns the corresponding
// help legend for the equivalent environment variable
func generateEnvDoc(flag string) string {
	envVar := constants.ENV_PREFIX + "_" + strings.ReplaceAll(strings.ToUpper(flag), "-", "_")
	return fmt.Sprintf(" [%s]", envVar)
}
