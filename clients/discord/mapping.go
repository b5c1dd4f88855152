package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"
)

// ChannelTypeFromSDK converts a discordgo channel type into our domain channel type
func ChannelTypeFromSDK(channelType discordgo.ChannelType) models.ChannelType {
	switch channelType {
	case discordgo.ChannelTypeGuildText:
		return models.ChannelTypeText
	case discordgo.ChannelTypeGuildNews:
		return models.ChannelTypeAnnouncement
	case discordgo.ChannelTypeGuildForum:
		return models.ChannelTypeForum
	case discordgo.ChannelTypeGuildPublicThread:
		return models.ChannelTypePublicThread
	case discordgo.ChannelTypeGuildPrivateThread:
		return models.ChannelTypePrivateThread
	case discordgo.ChannelTypeGuildNewsThread:
		return models.ChannelTypeNewsThread
	default:
		return models.ChannelTypeOther
	}
}

// ChannelFromSDK maps a discordgo channel onto our domain model with an already resolved parent
func ChannelFromSDK(channel *discordgo.Channel, parent mo.Option[models.DiscordChannelRef]) models.DiscordChannel {
	return models.DiscordChannel{
		ID:     channel.ID,
		Name:   channel.Name,
		Type:   ChannelTypeFromSDK(channel.Type),
		Parent: parent,
	}
}

// CommandsToSDK converts command definitions into chat input application commands
func CommandsToSDK(commands []models.DiscordCommand) []*discordgo.ApplicationCommand {
	sdkCommands := make([]*discordgo.ApplicationCommand, len(commands))
	for i, command := range commands {
		sdkCommands[i] = &discordgo.ApplicationCommand{
			Type:        discordgo.ChatApplicationCommand,
			Name:        command.Name,
			Description: command.Description,
		}
	}
	return sdkCommands
}
