package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DISCORD_BOT_TOKEN",
		"DISCORD_FORUM_CHANNEL_ID",
		"PORT",
		"ENVIRONMENT",
		"SLACK_ALERT_WEBHOOK_URL",
		"SERVER_LOGS_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `{"token": "file-token", "parentChannelId": "1234567890"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.BotToken)
	assert.Equal(t, "1234567890", cfg.ForumChannelID)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Empty(t, cfg.Port)
	assert.False(t, cfg.AlertConfig.IsConfigured())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("SLACK_ALERT_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")
	path := writeConfigFile(t, `{"token": "file-token", "parentChannelId": "1234567890"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.BotToken)
	assert.Equal(t, "1234567890", cfg.ForumChannelID)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "prod", cfg.Environment)
	assert.True(t, cfg.AlertConfig.IsConfigured())
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	t.Setenv("DISCORD_FORUM_CHANNEL_ID", "42")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.BotToken)
	assert.Equal(t, "42", cfg.ForumChannelID)
}

func TestLoadConfig_MissingRequiredValues(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		clearEnv(t)
		path := writeConfigFile(t, `{"parentChannelId": "42"}`)

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, "DISCORD_BOT_TOKEN is not set", err.Error())
	})

	t.Run("missing forum channel", func(t *testing.T) {
		clearEnv(t)
		path := writeConfigFile(t, `{"token": "file-token"}`)

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, "DISCORD_FORUM_CHANNEL_ID is not set", err.Error())
	})
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `{"token": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
