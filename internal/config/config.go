package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Brand  string       `mapstructure:"brand"`
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LLMConfig struct {
	Generator         ProviderConfig `mapstructure:"generator"`
	RequestsPerMinute int            `mapstructure:"requests_per_minute"`
}

type ProviderConfig struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
}

type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("brand", "OLPrint")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("llm.generator.provider", "gemini")
	v.SetDefault("llm.generator.model", "gemini-2.5-flash")
	v.SetDefault("llm.generator.api_key_env", "GEMINI_API_KEY")
	v.SetDefault("llm.generator.api_key", "")
	v.SetDefault("llm.generator.base_url", "")
	v.SetDefault("llm.requests_per_minute", 0)
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.olprint/")
	v.AddConfigPath("/etc/olprint/")

	// Enable environment variable override with OLPRINT_ prefix
	v.SetEnvPrefix("OLPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Unmarshal(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("OLPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Unmarshal(v)
}

// Unmarshal decodes v into a Config and checks the values that have no safe fallback.
func Unmarshal(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if strings.TrimSpace(config.Brand) == "" {
		return nil, fmt.Errorf("brand cannot be empty")
	}
	if config.LLM.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("llm.requests_per_minute must be non-negative, got %d", config.LLM.RequestsPerMinute)
	}
	return &config, nil
}
