package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/clients"
	discordclient "github.com/Dummiesman/MiniDiscordForumSelfmodBot/clients/discord"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/core"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/middleware"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/usecases"
)

type DiscordEventsHandler struct {
	session         *discordgo.Session
	discordClient   clients.DiscordClient
	forumUseCase    usecases.ForumUseCaseInterface
	alertMiddleware *middleware.ErrorAlertMiddleware
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	discordClient clients.DiscordClient,
	forumUseCase usecases.ForumUseCaseInterface,
	alertMiddleware *middleware.ErrorAlertMiddleware,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		session:         session,
		discordClient:   discordClient,
		forumUseCase:    forumUseCase,
		alertMiddleware: alertMiddleware,
	}

	// Register event handlers
	session.AddHandler(handler.handleReadyEvent)
	session.AddHandler(handler.handleThreadCreateEvent)
	session.AddHandler(handler.handleInteractionCreateEvent)

	// Thread and interaction events both arrive under the guilds intent
	session.Identify.Intents = discordgo.IntentsGuilds

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	log.Printf("🔑 Bot is logging in...")
	if err := h.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	if err := h.session.Close(); err != nil {
		log.Printf("❌ Failed to close Discord session: %v", err)
	}
}

// IsConnected reports whether the gateway session has received its ready payload
func (h *DiscordEventsHandler) IsConnected() bool {
	h.session.RLock()
	defer h.session.RUnlock()
	return h.session.DataReady
}

// Event contexts stay stable across events so repeated failures share one alert;
// the per-event correlation ID only goes to the log.

func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	h.alertMiddleware.WrapEventHandler("Ready", func() error {
		log.Printf("✅ Bot is ready as %s (%s)", r.User.Username, core.NewID("evt"))
		return h.processReady(context.Background(), r.User.ID)
	})()
}

func (h *DiscordEventsHandler) handleThreadCreateEvent(s *discordgo.Session, t *discordgo.ThreadCreate) {
	h.alertMiddleware.WrapEventHandler("ThreadCreate", func() error {
		log.Printf("🧵 Thread %s created (%s)", t.ID, core.NewID("evt"))
		h.processThreadCreate(context.Background(), t.Channel)
		return nil
	})()
}

func (h *DiscordEventsHandler) handleInteractionCreateEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	eventContext := fmt.Sprintf("InteractionCreate /%s", i.ApplicationCommandData().Name)
	h.alertMiddleware.WrapEventHandler(eventContext, func() error {
		log.Printf("📨 Interaction %s received (%s)", i.ID, core.NewID("evt"))
		return h.processInteraction(context.Background(), i.Interaction)
	})()
}

// processReady registers the slash commands. A failure leaves the bot connected and
// still auto-pinning; only the commands are unavailable.
func (h *DiscordEventsHandler) processReady(ctx context.Context, appID string) error {
	if err := h.forumUseCase.RegisterCommands(ctx, appID); err != nil {
		log.Printf("❌ Failed to register bot commands, continuing without slash commands: %v", err)
		return err
	}
	return nil
}

func (h *DiscordEventsHandler) processThreadCreate(ctx context.Context, channel *discordgo.Channel) {
	if channel == nil {
		return
	}

	thread := discordclient.ChannelFromSDK(channel, h.resolveParent(ctx, channel.ParentID))
	h.forumUseCase.ProcessThreadCreated(ctx, thread)
}

func (h *DiscordEventsHandler) processInteraction(ctx context.Context, i *discordgo.Interaction) error {
	interaction, err := h.mapToDiscordInteraction(ctx, i)
	if err != nil {
		return fmt.Errorf("failed to map interaction: %w", err)
	}

	log.Printf("📨 Command /%s received from user %s in channel %s",
		interaction.CommandName, interaction.User.ID, interaction.Channel.ID)
	return h.forumUseCase.ProcessCommand(ctx, interaction)
}

// mapToDiscordInteraction maps a Discord SDK interaction to our domain model
func (h *DiscordEventsHandler) mapToDiscordInteraction(
	ctx context.Context,
	i *discordgo.Interaction,
) (models.DiscordInteraction, error) {
	var user *discordgo.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	} else {
		user = i.User
	}
	if user == nil {
		return models.DiscordInteraction{}, fmt.Errorf("interaction %s has no invoking user", i.ID)
	}

	channel, err := h.discordClient.GetChannel(ctx, i.ChannelID)
	if err != nil {
		// An unresolvable channel can't be an eligible forum thread
		log.Printf("⚠️ Failed to resolve channel %s for interaction %s: %v", i.ChannelID, i.ID, err)
		channel = &models.DiscordChannel{
			ID:     i.ChannelID,
			Type:   models.ChannelTypeOther,
			Parent: mo.None[models.DiscordChannelRef](),
		}
	}

	return models.DiscordInteraction{
		ID:          i.ID,
		Token:       i.Token,
		AppID:       i.AppID,
		CommandName: i.ApplicationCommandData().Name,
		User: models.DiscordUser{
			ID:       user.ID,
			Username: user.Username,
		},
		Channel: *channel,
	}, nil
}

func (h *DiscordEventsHandler) resolveParent(ctx context.Context, parentID string) mo.Option[models.DiscordChannelRef] {
	if parentID == "" {
		return mo.None[models.DiscordChannelRef]()
	}

	parent, err := h.discordClient.GetChannel(ctx, parentID)
	if err != nil {
		log.Printf("⚠️ Failed to resolve parent channel %s: %v", parentID, err)
		return mo.None[models.DiscordChannelRef]()
	}
	return mo.Some(models.DiscordChannelRef{ID: parent.ID, Type: parent.Type})
}
