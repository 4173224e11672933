package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, "5000", cfg.Server.HTTPPort)
	assert.Equal(t, "Kemet_Data.xlsx", cfg.Dataset.Path)
	assert.True(t, cfg.Dataset.Cache)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.Managed())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PYTHONANYWHERE_SITE", "www.pythonanywhere.com")
	t.Setenv("LLM_PROVIDER", " OpenAI ")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.HTTPPort)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.Managed())
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LLM_API_KEY", "")

	_, err := load(viper.New())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.LLM.APIKey = "k"
	cfg.LLM.Provider = "claude"
	cfg.Server.HTTPPort = "5000"
	cfg.Dataset.Path = "Kemet_Data.xlsx"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")

	cfg.LLM.Provider = ProviderGemini
	assert.NoError(t, cfg.Validate())

	cfg.Server.HTTPPort = ""
	assert.Error(t, cfg.Validate())

	cfg.Server.Platform = "pythonanywhere"
	assert.NoError(t, cfg.Validate())
}
