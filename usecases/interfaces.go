package usecases

import (
	"context"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// ForumUseCaseInterface defines the interface for forum self-moderation operations
type ForumUseCaseInterface interface {
	ProcessThreadCreated(ctx context.Context, thread models.DiscordChannel)
	ProcessCommand(ctx context.Context, interaction models.DiscordInteraction) error
	RegisterCommands(ctx context.Context, appID string) error
}
