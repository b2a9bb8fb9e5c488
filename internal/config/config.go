package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Root is the directory to scan for tests (positional argument)
	Root string

	// GoBin is the test runner binary to invoke
	GoBin string

	// SkipDirs are directory names skipped when scanning
	SkipDirs []string

	// Processors is the number of extraction workers
	Processors int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Subtests   bool
	Parent     bool
	Fzf        bool
	Tags       string
	Verbose    bool
	NameFilter string
	Processors int
	Debug      bool
}

// New creates a new Config with defaults, applying overrides from the
// environment. A .env file in the working directory is loaded when present.
func New() *Config {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load()

	cfg := &Config{
		GoBin:      DefaultGoBin,
		Processors: DefaultProcessors,
		Flags:      Flags{Processors: DefaultProcessors},
	}

	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)

	if bin := os.Getenv(EnvGoBin); bin != "" {
		cfg.GoBin = bin
	}
	if extra := os.Getenv(EnvSkipDirs); extra != "" {
		for _, dir := range strings.Split(extra, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				cfg.SkipDirs = append(cfg.SkipDirs, dir)
			}
		}
	}

	return cfg
}
