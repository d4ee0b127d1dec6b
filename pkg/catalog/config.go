package catalog

import "os"

const DefaultDBFile = "musicutil.sqlite3"

// Logger is the subset of pkg/logger the catalog writes to.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

type Config struct {
	DBPath string
	Logger Logger
}

type Option func(*Config)

func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func defaultConfig() *Config {
	dbPath := os.Getenv("MUSICUTIL_DB_PATH")
	if dbPath == "" {
		dbPath = DefaultDBFile
	}
	return &Config{DBPath: dbPath}
}
