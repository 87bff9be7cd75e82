package config

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const defaultConfigName = ".bodycomp"

type Config struct {
	AppEnv          string
	ServiceName     string
	LogLevel        string
	DefaultProtocol bodycomp.Protocol
	PrettyOutput    bool
	ConfigFile      string
}

// LoadConfig resolves settings from, in increasing priority: built-in defaults,
// the YAML config file, and the environment (including a local .env file).
// An empty path looks for $HOME/.bodycomp.yaml and tolerates its absence.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v := viper.New()
	v.SetDefault("app_env", "production")
	v.SetDefault("service_name", "bodycomp")
	v.SetDefault("log_level", "info")
	v.SetDefault("default_protocol", "pollock3")
	v.AutomaticEnv()

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	protocol, err := bodycomp.ParseProtocol(strings.TrimSpace(v.GetString("default_protocol")))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_PROTOCOL: %w", err)
	}

	cfg := &Config{
		AppEnv:          normalizeEnv(v.GetString("app_env")),
		ServiceName:     v.GetString("service_name"),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		DefaultProtocol: protocol,
		ConfigFile:      v.ConfigFileUsed(),
	}
	// Unset or unparseable PRETTY_OUTPUT follows the environment: indented in development.
	cfg.PrettyOutput = parseBool(v.GetString("pretty_output"), cfg.IsDevelopment())
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", filepath.Base(path), err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}
