package constants

const (
	APP_NAME = "go-evmspec"
	// prefix used to read config parameters from environment variables
	ENV_PREFIX = "GO_EVMSPEC"
	// config file name
	CONFIG_FILE_NAME = "config.toml"
	// config file type
	CONFIG_FILE_TYPE = "toml"
	// log file name
	LOG_FILE_NAME = "go-evmspec.log"
)
