package forum

import (
	"context"
	"fmt"
	"log"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/clients"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/core"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/metrics"
	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

type commandHandler func(ctx context.Context, interaction models.DiscordInteraction) error

// ForumUseCase handles thread auto-pinning and the starter-only /pin and /lock commands
// for threads of a single forum channel
type ForumUseCase struct {
	discordClient   clients.DiscordClient
	forumChannelID  string
	commandHandlers map[string]commandHandler
}

// NewForumUseCase creates a use case governing the forum channel with the given ID
func NewForumUseCase(discordClient clients.DiscordClient, forumChannelID string) *ForumUseCase {
	uc := &ForumUseCase{
		discordClient:  discordClient,
		forumChannelID: forumChannelID,
	}
	uc.commandHandlers = map[string]commandHandler{
		PinCommandName:  uc.ProcessPinCommand,
		LockCommandName: uc.ProcessLockCommand,
	}
	return uc
}

// IsEligibleForumThread reports whether the channel is a public thread of the configured forum
func (uc *ForumUseCase) IsEligibleForumThread(channel *models.DiscordChannel) bool {
	if channel == nil || channel.Type != models.ChannelTypePublicThread {
		return false
	}

	parent, ok := channel.Parent.Get()
	return ok && parent.Type == models.ChannelTypeForum && parent.ID == uc.forumChannelID
}

// IsStarterAuthor reports whether the user wrote the thread's starter message.
// Any failure to resolve the starter message counts as "not the author".
func (uc *ForumUseCase) IsStarterAuthor(
	ctx context.Context,
	user models.DiscordUser,
	thread models.DiscordChannel,
) bool {
	starterMessage, err := uc.discordClient.GetStarterMessage(ctx, thread.ID)
	if err != nil {
		log.Printf("⚠️ Could not resolve starter message of thread %s: %v", thread.ID, err)
		return false
	}
	return starterMessage.AuthorID == user.ID
}

// PinStarterMessage fetches the thread's starter message and pins it
func (uc *ForumUseCase) PinStarterMessage(ctx context.Context, thread models.DiscordChannel) models.PinOutcome {
	starterMessage, err := uc.discordClient.GetStarterMessage(ctx, thread.ID)
	if err != nil {
		log.Printf("⚠️ Failed to fetch starter message of thread %s: %v", thread.ID, err)
		return pinOutcomeFromError(err)
	}

	if err := uc.discordClient.PinMessage(ctx, thread.ID, starterMessage.ID); err != nil {
		log.Printf("⚠️ Failed to pin starter message %s in thread %s: %v", starterMessage.ID, thread.ID, err)
		return pinOutcomeFromError(err)
	}

	return models.PinOutcomeSuccess
}

// ProcessThreadCreated auto-pins the starter message of new threads in the forum.
// Failures are expected (the starter may be deleted before we get to it) and only logged.
func (uc *ForumUseCase) ProcessThreadCreated(ctx context.Context, thread models.DiscordChannel) {
	if !uc.IsEligibleForumThread(&thread) {
		return
	}

	log.Printf("📌 Pinning first message in new forum thread %s %s", thread.Name, thread.ID)
	outcome := uc.PinStarterMessage(ctx, thread)
	metrics.RecordAutoPin(outcome)
	if !outcome.IsSuccess() {
		log.Printf("⚠️ Auto-pin skipped for thread %s: %s", thread.ID, outcome)
		return
	}

	log.Printf("✅ Pinned first message in forum thread %s", thread.ID)
}

// ProcessCommand dispatches a slash command invocation to its handler
func (uc *ForumUseCase) ProcessCommand(ctx context.Context, interaction models.DiscordInteraction) error {
	handler, ok := uc.commandHandlers[interaction.CommandName]
	if !ok {
		log.Printf("🔍 Ignoring unknown command /%s from user %s", interaction.CommandName, interaction.User.ID)
		return nil
	}
	return handler(ctx, interaction)
}

// ProcessPinCommand pins the starter message on behalf of the thread's original poster
func (uc *ForumUseCase) ProcessPinCommand(ctx context.Context, interaction models.DiscordInteraction) error {
	log.Printf("📋 Starting to process /pin from user %s in channel %s", interaction.User.ID, interaction.Channel.ID)

	proceed, err := uc.checkCommandGates(ctx, interaction, replyPinDenied)
	if err != nil || !proceed {
		return err
	}

	switch outcome := uc.PinStarterMessage(ctx, interaction.Channel); outcome {
	case models.PinOutcomeSuccess:
		metrics.RecordCommand(PinCommandName, metrics.CommandResultSuccess)
		log.Printf("📋 Completed successfully - pinned starter message of thread %s", interaction.Channel.ID)
		return uc.reply(ctx, interaction, replyPinSuccess)
	case models.PinOutcomeNotFound:
		// The starter was deleted between the ownership check and the pin
		metrics.RecordCommand(PinCommandName, metrics.CommandResultDenied)
		return uc.reply(ctx, interaction, replyPinDenied)
	default:
		metrics.RecordCommand(PinCommandName, metrics.CommandResultFailed)
		if err := uc.reply(ctx, interaction, replyPinFailed); err != nil {
			return err
		}
		return fmt.Errorf("failed to pin starter message of thread %s: %s", interaction.Channel.ID, outcome)
	}
}

// ProcessLockCommand locks the thread on behalf of its original poster.
// Unlocking requires a moderator; the bot offers no way back.
func (uc *ForumUseCase) ProcessLockCommand(ctx context.Context, interaction models.DiscordInteraction) error {
	log.Printf("📋 Starting to process /lock from user %s in channel %s", interaction.User.ID, interaction.Channel.ID)

	proceed, err := uc.checkCommandGates(ctx, interaction, replyLockDenied)
	if err != nil || !proceed {
		return err
	}

	if err := uc.discordClient.LockThread(ctx, interaction.Channel.ID); err != nil {
		log.Printf("❌ Failed to lock thread %s: %v", interaction.Channel.ID, err)
		metrics.RecordCommand(LockCommandName, metrics.CommandResultFailed)
		if replyErr := uc.reply(ctx, interaction, replyLockFailed); replyErr != nil {
			return replyErr
		}
		return fmt.Errorf("failed to lock thread %s: %w", interaction.Channel.ID, err)
	}

	metrics.RecordCommand(LockCommandName, metrics.CommandResultSuccess)
	log.Printf("📋 Completed successfully - locked thread %s", interaction.Channel.ID)
	return uc.reply(ctx, interaction, replyLockSuccess)
}

// RegisterCommands registers /pin and /lock as global commands of the application
func (uc *ForumUseCase) RegisterCommands(ctx context.Context, appID string) error {
	log.Printf("📋 Starting to register application commands for app %s", appID)

	err := uc.discordClient.RegisterCommands(ctx, appID, Commands())
	metrics.RecordCommandRegistration(err)
	if err != nil {
		return fmt.Errorf("failed to register bot commands: %w", err)
	}

	log.Printf("📋 Completed successfully - registered %d application commands", len(Commands()))
	return nil
}

// checkCommandGates runs the forum and ownership checks shared by every command,
// replying to the user when one of them fails. It returns true if the command may proceed.
func (uc *ForumUseCase) checkCommandGates(
	ctx context.Context,
	interaction models.DiscordInteraction,
	deniedReply string,
) (bool, error) {
	if !uc.IsEligibleForumThread(&interaction.Channel) {
		metrics.RecordCommand(interaction.CommandName, metrics.CommandResultIneligible)
		return false, uc.reply(ctx, interaction, replyNotForumThread)
	}

	if !uc.IsStarterAuthor(ctx, interaction.User, interaction.Channel) {
		log.Printf("🚫 User %s is not the original poster of thread %s", interaction.User.ID, interaction.Channel.ID)
		metrics.RecordCommand(interaction.CommandName, metrics.CommandResultDenied)
		return false, uc.reply(ctx, interaction, deniedReply)
	}

	return true, nil
}

func (uc *ForumUseCase) reply(ctx context.Context, interaction models.DiscordInteraction, content string) error {
	if err := uc.discordClient.RespondEphemeral(ctx, interaction, content); err != nil {
		return fmt.Errorf("failed to reply to /%s: %w", interaction.CommandName, err)
	}
	return nil
}

func pinOutcomeFromError(err error) models.PinOutcome {
	switch {
	case err == nil:
		return models.PinOutcomeSuccess
	case core.IsNotFoundError(err):
		return models.PinOutcomeNotFound
	case core.IsForbiddenError(err):
		return models.PinOutcomeDenied
	default:
		return models.PinOutcomePlatformError
	}
}
