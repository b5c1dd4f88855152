package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AlertConfig struct {
	SlackWebhookURL string
	ServerLogsURL   string
}

// IsConfigured returns true if error alerts should be posted to Slack
func (c AlertConfig) IsConfigured() bool {
	return c.SlackWebhookURL != ""
}

type AppConfig struct {
	// Core configuration (always required)
	BotToken       string
	ForumChannelID string

	Port        string // Optional, health and metrics server is disabled when empty
	Environment string

	AlertConfig AlertConfig
}

// fileConfig mirrors the JSON config file format
type fileConfig struct {
	Token           string `json:"token"`
	ParentChannelID string `json:"parentChannelId"`
}

// LoadConfig reads configuration from the optional JSON file at configPath, a .env file and
// the environment. Environment variables take precedence over values from the JSON file.
func LoadConfig(configPath string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Could not load .env file, continuing with system env vars")
	}

	fileCfg, err := loadFileConfig(configPath)
	if err != nil {
		return nil, err
	}

	botToken, err := getEnvRequired("DISCORD_BOT_TOKEN", fileCfg.Token)
	if err != nil {
		return nil, err
	}

	forumChannelID, err := getEnvRequired("DISCORD_FORUM_CHANNEL_ID", fileCfg.ParentChannelID)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		BotToken:       botToken,
		ForumChannelID: forumChannelID,
		Port:           os.Getenv("PORT"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "dev"),
		AlertConfig: AlertConfig{
			SlackWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
			ServerLogsURL:   os.Getenv("SERVER_LOGS_URL"),
		},
	}

	if config.AlertConfig.IsConfigured() {
		log.Printf("✅ Slack error alerts configured")
	} else {
		log.Printf("⚠️ Slack error alerts not configured - errors will only be logged")
	}

	return config, nil
}

func loadFileConfig(configPath string) (fileConfig, error) {
	var cfg fileConfig
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ Config file %s not found, continuing with env vars", configPath)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

func getEnvRequired(key, fallback string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("%s is not set", key)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
