package options

// String names of every CLI option supported by go-evmspec
const (
	CONFIG_DIR       = "config-dir"
	LOG_LEVEL        = "log-level"
	LOG_FILE         = "log-file"
	SAVE_CONFIG_FILE = "save-config"
	OPTIMISM         = "optimism"
	FORMAT           = "format"
)
