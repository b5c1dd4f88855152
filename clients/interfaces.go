package clients

import (
	"context"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// DiscordClient defines the Discord API operations the bot depends on.
// Errors for missing resources wrap core.ErrNotFound and permission failures wrap core.ErrForbidden.
type DiscordClient interface {
	// Channel operations
	GetChannel(ctx context.Context, channelID string) (*models.DiscordChannel, error)
	LockThread(ctx context.Context, threadID string) error

	// Message operations
	GetStarterMessage(ctx context.Context, threadID string) (*models.DiscordMessage, error)
	PinMessage(ctx context.Context, channelID, messageID string) error

	// Interaction operations
	RespondEphemeral(ctx context.Context, interaction models.DiscordInteraction, content string) error
	RegisterCommands(ctx context.Context, appID string, commands []models.DiscordCommand) error
}
