package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/clients"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/core"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// DiscordClient implements the clients.DiscordClient interface on top of a discordgo session
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a new Discord client sharing the given gateway session
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

// GetChannel fetches a channel and resolves its parent, preferring the gateway state cache
func (c *DiscordClient) GetChannel(ctx context.Context, channelID string) (*models.DiscordChannel, error) {
	channel, err := c.lookupChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}

	parent := mo.None[models.DiscordChannelRef]()
	if channel.ParentID != "" {
		parentChannel, err := c.lookupChannel(ctx, channel.ParentID)
		if err == nil {
			parent = mo.Some(models.DiscordChannelRef{
				ID:   parentChannel.ID,
				Type: ChannelTypeFromSDK(parentChannel.Type),
			})
		}
	}

	mapped := ChannelFromSDK(channel, parent)
	return &mapped, nil
}

// LockThread marks a thread as locked so only moderators can post or unlock it
func (c *DiscordClient) LockThread(ctx context.Context, threadID string) error {
	locked := true
	_, err := c.session.ChannelEdit(threadID, &discordgo.ChannelEdit{Locked: &locked}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to lock thread %s: %w", threadID, classifyError(err))
	}
	return nil
}

// GetStarterMessage fetches the opening message of a forum thread.
// Forum posts share their ID with the thread that contains them.
func (c *DiscordClient) GetStarterMessage(ctx context.Context, threadID string) (*models.DiscordMessage, error) {
	message, err := c.session.ChannelMessage(threadID, threadID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch starter message of thread %s: %w", threadID, classifyError(err))
	}
	if message == nil || message.Author == nil {
		return nil, fmt.Errorf("starter message of thread %s: %w", threadID, core.ErrNotFound)
	}

	return &models.DiscordMessage{
		ID:        message.ID,
		ChannelID: message.ChannelID,
		AuthorID:  message.Author.ID,
	}, nil
}

// PinMessage pins a message. Pinning an already pinned message succeeds.
func (c *DiscordClient) PinMessage(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessagePin(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to pin message %s: %w", messageID, classifyError(err))
	}
	return nil
}

// RespondEphemeral replies to an interaction with a message only the invoking user can see
func (c *DiscordClient) RespondEphemeral(
	ctx context.Context,
	interaction models.DiscordInteraction,
	content string,
) error {
	sdkInteraction := &discordgo.Interaction{
		ID:    interaction.ID,
		AppID: interaction.AppID,
		Token: interaction.Token,
		Type:  discordgo.InteractionApplicationCommand,
	}
	err := c.session.InteractionRespond(sdkInteraction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to respond to interaction %s: %w", interaction.ID, classifyError(err))
	}
	return nil
}

// RegisterCommands replaces the application's global commands with the given set
func (c *DiscordClient) RegisterCommands(ctx context.Context, appID string, commands []models.DiscordCommand) error {
	_, err := c.session.ApplicationCommandBulkOverwrite(appID, "", CommandsToSDK(commands), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to register application commands: %w", classifyError(err))
	}
	return nil
}

func (c *DiscordClient) lookupChannel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if c.session.State != nil {
		if channel, err := c.session.State.Channel(channelID); err == nil {
			return channel, nil
		}
	}

	channel, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, classifyError(err)
	}
	return channel, nil
}

// classifyError maps discordgo REST failures onto the core sentinel errors
func classifyError(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel:
			return fmt.Errorf("%w: %v", core.ErrNotFound, err)
		case discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
			return fmt.Errorf("%w: %v", core.ErrForbidden, err)
		}
	}

	if restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", core.ErrNotFound, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", core.ErrForbidden, err)
		}
	}

	return err
}
