package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode string `mapstructure:"mode"`
	Port int    `mapstructure:"port"`

	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	WebhookSecret string `mapstructure:"webhook_secret"`

	NotionToken      string `mapstructure:"notion_token"`
	NotionDatabaseID string `mapstructure:"notion_database_id"`
	NotionBaseURL    string `mapstructure:"notion_base_url"`

	OpenAIKey     string `mapstructure:"openai_key"`
	OpenAIModel   string `mapstructure:"openai_model"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)

	v.SetDefault("mode", "release")
	v.SetDefault("port", 3000)
	v.SetDefault("notion_base_url", "https://api.notion.com")
	v.SetDefault("openai_model", "gpt-4.1-mini")

	// Secrets come from the environment, never from the yaml file.
	_ = v.BindEnv("client_id", "ZM_CLIENT_ID")
	_ = v.BindEnv("client_secret", "ZM_CLIENT_SECRET")
	_ = v.BindEnv("webhook_secret", "ZOOM_SECRET_TOKEN")
	_ = v.BindEnv("notion_token", "NOTION_SECRET_TOKEN")
	_ = v.BindEnv("notion_database_id", "NOTION_DATABASE_ID")
	_ = v.BindEnv("openai_key", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
