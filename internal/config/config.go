package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     App
	Logging Logging
}

// App holds the settings the interactive menu and the runner consume.
type App struct {
	ScriptDir   string
	CatalogPath string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envScriptDir  = "SCRIPTDECK_SCRIPT_DIR"
	envCatalog    = "SCRIPTDECK_CATALOG"
	envWidth      = "SCRIPTDECK_WIDTH"
	envHeight     = "SCRIPTDECK_HEIGHT"
	envShowFooter = "SCRIPTDECK_FOOTER"
	envVerbose    = "SCRIPTDECK_VERBOSE"
	envTrace      = "SCRIPTDECK_TRACE"
	envLogFile    = "SCRIPTDECK_LOG_FILE"
)

// FromEnv builds the configuration defaults from the process environment.
// Command line flags layer on top of the result.
func FromEnv() Config {
	return FromEnviron(os.Environ())
}

// FromEnviron allows tests to supply a specific environment.
func FromEnviron(environ []string) Config {
	env := parseEnv(environ)
	return Config{
		App: App{
			ScriptDir:   envOrDefault(env, envScriptDir, ""),
			CatalogPath: envOrDefault(env, envCatalog, ""),
			Width:       envOrInt(env, envWidth, 0),
			Height:      envOrInt(env, envHeight, 0),
			ShowFooter:  envOrBool(env, envShowFooter, false),
			Verbose:     envOrBool(env, envVerbose, false),
		},
		Logging: Logging{
			FilePath: envOrDefault(env, envLogFile, ""),
			Trace:    envOrBool(env, envTrace, false),
		},
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures the configuration can drive a session.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.CatalogPath != "" {
		if _, err := os.Stat(cfg.App.CatalogPath); err != nil {
			return fmt.Errorf("catalog file: %w", err)
		}
	}
	return nil
}
