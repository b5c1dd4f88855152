package forum

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// MockForumUseCase is a mock implementation of the ForumUseCase
type MockForumUseCase struct {
	mock.Mock
}

func (m *MockForumUseCase) ProcessThreadCreated(ctx context.Context, thread models.DiscordChannel) {
	m.Called(ctx, thread)
}

func (m *MockForumUseCase) ProcessCommand(ctx context.Context, interaction models.DiscordInteraction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockForumUseCase) RegisterCommands(ctx context.Context, appID string) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}
