// Package config provides configuration management for udb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may emit warnings via slog.
//
// # Configuration Sources
//
// Precedence (highest to lowest): env vars > config file (JSON) > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with a warning - config remains in valid state
// - ToOptions() converts persistent fields (those in the config file)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// The variables use the names the web stack already documents:
//
//	DB_NAME=universal_db
//	DB_USER=webadmin
//	DB_PASSWORD=Password123!
//	DB_HOST=localhost
//	DB_PORT=3306
package config

// Config represents the complete udb configuration.
type Config struct {
	// Database contains the target database identity and endpoint.
	Database DatabaseConfig `mapstructure:"database" json:"database"`

	Log LogConfig `mapstructure:"log" json:"log"`
}

// DatabaseConfig identifies the database to create, the service account to
// create for the web stack, and the network endpoint of the server.
// It is resolved once at startup and never mutated afterwards.
type DatabaseConfig struct {
	// Name is the database that will be created and granted.
	Name string `mapstructure:"name" json:"name"`

	// User is the service account created for the application.
	// It is distinct from the administrative (root) account used
	// only during provisioning.
	User string `mapstructure:"user" json:"user"`

	// Password is the service account password.
	Password string `mapstructure:"password" json:"password"`

	// Host is the database server hostname or IP address.
	Host string `mapstructure:"host" json:"host"`

	// Port is the database server port number.
	Port int `mapstructure:"port" json:"port"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" json:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" json:"level"`
	// Destination can be STDERR or STDOUT.
	Destination string `mapstructure:"destination" json:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Name:     "universal_db",
			User:     "webadmin",
			Password: "Password123!",
			Host:     "localhost",
			Port:     3306,
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
	}

	return res
}
