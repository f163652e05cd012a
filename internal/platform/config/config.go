// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"intelprobe/internal/core/ports"
)

// Config agrupa la configuración de una invocación de módulo. El target
// es el único argumento posicional; todo lo demás son ajustes ambientales.
type Config struct {
	// App
	Target   string
	Verbose  bool
	LogLevel string

	// Probes
	TimeoutS    int    // segundos por probe de red
	CLITimeoutS int    // segundos por comando externo
	UserAgent   string // User-Agent de los probes HTTP
	DigPath     string // binario para el intento de zone transfer

	// IO
	ConfigFile string
}

// fileConfig es el esquema YAML del archivo de configuración opcional.
type fileConfig struct {
	Verbose     *bool   `yaml:"verbose"`
	LogLevel    *string `yaml:"log_level"`
	TimeoutS    *int    `yaml:"timeout_seconds"`
	CLITimeoutS *int    `yaml:"cli_timeout_seconds"`
	UserAgent   *string `yaml:"user_agent"`
	DigPath     *string `yaml:"dig_path"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Verbose:     false,
		LogLevel:    "info",
		TimeoutS:    10,
		CLITimeoutS: 30,
		UserAgent:   "intelprobe/1.0",
		DigPath:     "dig",
	}
}

// Load inicializa la configuración: defaults -> archivo YAML -> ENV ->
// flags (los flags tienen prioridad). El primer argumento posicional
// restante es el target.
func Load(name string, args []string) (Config, error) {
	cfg := DefaultConfig()

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	configFile := flags.StringP("config", "c", "", "optional YAML config file")
	timeoutS := flags.Int("timeout", cfg.TimeoutS, "network probe timeout in seconds")
	cliTimeoutS := flags.Int("cli-timeout", cfg.CLITimeoutS, "external command timeout in seconds")
	userAgent := flags.String("user-agent", cfg.UserAgent, "User-Agent header for HTTP probes")
	digPath := flags.String("dig-path", cfg.DigPath, "path to the dig binary")
	verbose := flags.BoolP("verbose", "v", cfg.Verbose, "print probe progress to stderr")
	logLevel := flags.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	// Archivo: flag --config primero, INTELPROBE_CONFIG como fallback
	cfg.ConfigFile = *configFile
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("INTELPROBE_CONFIG")
	}
	if cfg.ConfigFile != "" {
		if err := loadFromFile(&cfg, cfg.ConfigFile); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)

	// Flags explícitos sobreescriben archivo y ENV
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.TimeoutS = *timeoutS
		case "cli-timeout":
			cfg.CLITimeoutS = *cliTimeoutS
		case "user-agent":
			cfg.UserAgent = *userAgent
		case "dig-path":
			cfg.DigPath = *digPath
		case "verbose":
			cfg.Verbose = *verbose
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if rest := flags.Args(); len(rest) > 0 {
		cfg.Target = strings.TrimSpace(rest[0])
	}

	normalize(&cfg)

	return cfg, nil
}

// ProbeConfig proyecta la configuración al contrato de los probes.
func (c Config) ProbeConfig() ports.ProbeConfig {
	return ports.ProbeConfig{
		NetTimeout: time.Duration(c.TimeoutS) * time.Second,
		CLITimeout: time.Duration(c.CLITimeoutS) * time.Second,
		UserAgent:  c.UserAgent,
		DigPath:    c.DigPath,
	}
}

// loadFromFile carga la configuración desde un archivo YAML.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.TimeoutS != nil {
		cfg.TimeoutS = *fc.TimeoutS
	}
	if fc.CLITimeoutS != nil {
		cfg.CLITimeoutS = *fc.CLITimeoutS
	}
	if fc.UserAgent != nil {
		cfg.UserAgent = *fc.UserAgent
	}
	if fc.DigPath != nil {
		cfg.DigPath = *fc.DigPath
	}

	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("INTELPROBE_TIMEOUT", ""); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("INTELPROBE_CLI_TIMEOUT", ""); v != "" {
		cfg.CLITimeoutS = parseInt(v, cfg.CLITimeoutS)
	}
	if v := getenv("INTELPROBE_USER_AGENT", ""); v != "" {
		cfg.UserAgent = v
	}
	if v := getenv("INTELPROBE_DIG_PATH", ""); v != "" {
		cfg.DigPath = v
	}
	if v := getenv("INTELPROBE_VERBOSE", ""); v != "" {
		cfg.Verbose = parseBool(v)
	}
	if v := getenv("INTELPROBE_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
}

// normalize acota valores fuera de rango a los defaults.
func normalize(cfg *Config) {
	if cfg.TimeoutS <= 0 {
		cfg.TimeoutS = 10
	}
	if cfg.CLITimeoutS <= 0 {
		cfg.CLITimeoutS = 30
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "intelprobe/1.0"
	}
	if cfg.DigPath == "" {
		cfg.DigPath = "dig"
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
