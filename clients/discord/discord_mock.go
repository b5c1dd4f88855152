package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetChannel(ctx context.Context, channelID string) (*models.DiscordChannel, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiscordChannel), args.Error(1)
}

func (m *MockDiscordClient) LockThread(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

func (m *MockDiscordClient) GetStarterMessage(ctx context.Context, threadID string) (*models.DiscordMessage, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) PinMessage(ctx context.Context, channelID, messageID string) error {
	args := m.Called(ctx, channelID, messageID)
	return args.Error(0)
}

func (m *MockDiscordClient) RespondEphemeral(
	ctx context.Context,
	interaction models.DiscordInteraction,
	content string,
) error {
	args := m.Called(ctx, interaction, content)
	return args.Error(0)
}

func (m *MockDiscordClient) RegisterCommands(ctx context.Context, appID string, commands []models.DiscordCommand) error {
	args := m.Called(ctx, appID, commands)
	return args.Error(0)
}
