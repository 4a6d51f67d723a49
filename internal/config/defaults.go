package config

const (
	defaultDataDir            = "~/.local/share/familygarden"
	defaultLogDir             = "~/.local/share/familygarden/logs"
	defaultConfigPath         = "~/.config/familygarden/config.toml"
	projectConfigName         = "familygarden.toml"
	defaultDuplicateThreshold = 50
	defaultMaxFileMB          = 50
	defaultLockTimeoutSeconds = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"

	databaseFileName = "garden.db"
	lockFileName     = "import.lock"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Import: Import{
			DuplicateThreshold: defaultDuplicateThreshold,
			MaxFileMB:          defaultMaxFileMB,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
