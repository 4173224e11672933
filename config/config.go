package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment variables")

type Config struct {
	Environment string `mapstructure:"environment"`
	Server      struct {
		HTTPPort     string        `mapstructure:"HTTPPort"`
		Timeout      time.Duration `mapstructure:"HTTPTimeout"`
		Platform     string        `mapstructure:"platform"`
		PlatformAddr string        `mapstructure:"platformAddr"`
	} `mapstructure:"server"`
	Handlers struct {
		Prometheus struct {
			Enabled bool   `mapstructure:"enabled"`
			Port    string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
		Swagger struct {
			Enabled bool `mapstructure:"enabled"`
		} `mapstructure:"swagger"`
	} `mapstructure:"handlers"`
	LLM struct {
		Provider string `mapstructure:"provider"`
		Model    string `mapstructure:"model"`
		BaseURL  string `mapstructure:"baseURL"`
		APIKey   string `mapstructure:"apiKey"`
	} `mapstructure:"llm"`
	Dataset struct {
		Path     string        `mapstructure:"path"`
		Sheet    string        `mapstructure:"sheet"`
		Cache    bool          `mapstructure:"cache"`
		CacheTTL time.Duration `mapstructure:"cacheTTL"`
	} `mapstructure:"dataset"`
}

// IsDevelopment reports whether the service runs with the development logger.
func (c Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// Managed reports whether a hosting platform owns the listening socket.
func (c Config) Managed() bool {
	return c.Server.Platform != ""
}

// Validate checks the settings the process cannot start without.
func (c Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ErrMissingAPIKey
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLM.Provider)
	}
	if !c.Managed() && c.Server.HTTPPort == "" {
		return errors.New("server port is not configured")
	}
	if c.Dataset.Path == "" {
		return errors.New("dataset path is not configured")
	}
	return nil
}

// envBindings maps config keys to the environment variables that override them.
// The first variable found wins.
var envBindings = map[string][]string{
	"llm.apiKey":               {"GEMINI_API_KEY", "LLM_API_KEY"},
	"llm.provider":             {"LLM_PROVIDER"},
	"llm.model":                {"LLM_MODEL"},
	"llm.baseURL":              {"LLM_BASE_URL"},
	"server.HTTPPort":          {"PORT"},
	"server.platform":          {"HOSTING_PLATFORM", "PYTHONANYWHERE_SITE"},
	"environment":              {"ENVIRONMENT"},
	"dataset.path":             {"DATASET_PATH"},
	"handlers.prometheus.port": {"METRICS_PORT"},
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")

	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	var config Config
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	for key, envs := range envBindings {
		if err = v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.LLM.Provider = strings.ToLower(strings.TrimSpace(config.LLM.Provider))

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
