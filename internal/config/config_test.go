package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "https://api.notion.com", cfg.NotionBaseURL)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAIModel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")
	t.Setenv("ZM_CLIENT_ID", "client-from-env")
	t.Setenv("ZM_CLIENT_SECRET", "secret-from-env")
	t.Setenv("ZOOM_SECRET_TOKEN", "verify-from-env")
	t.Setenv("NOTION_SECRET_TOKEN", "notion-token")
	t.Setenv("NOTION_DATABASE_ID", "db-id")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "client-from-env", cfg.ClientID)
	assert.Equal(t, "secret-from-env", cfg.ClientSecret)
	assert.Equal(t, "verify-from-env", cfg.WebhookSecret)
	assert.Equal(t, "notion-token", cfg.NotionToken)
	assert.Equal(t, "db-id", cfg.NotionDatabaseID)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
}
