package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"github.com/udbtool/udb/pkg/config"
)

// initConfig resolves configuration from the config file and the
// environment. A missing config file is normal; a malformed one is
// reported as a warning and ignored so the run proceeds on defaults.
func initConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = config.ConfigFilePath(home)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No config file, using defaults", "path", path)
		} else {
			slog.Warn("Ignoring unreadable config file",
				"path", path, "error", err)
		}
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		slog.Warn("Ignoring unparsable config file",
			"path", path, "error", err)
		return config.New(), nil
	}
	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. The names match what the web stack documents.
	v.BindEnv("database.name", "DB_NAME")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")

	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")
}
