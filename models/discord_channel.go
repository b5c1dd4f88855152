package models

import "github.com/samber/mo"

// ChannelType represents the kind of Discord channel the bot is looking at
type ChannelType string

const (
	ChannelTypeText          ChannelType = "text"
	ChannelTypeAnnouncement  ChannelType = "announcement"
	ChannelTypeForum         ChannelType = "forum"
	ChannelTypePublicThread  ChannelType = "public_thread"
	ChannelTypePrivateThread ChannelType = "private_thread"
	ChannelTypeNewsThread    ChannelType = "news_thread"
	ChannelTypeOther         ChannelType = "other"
)

// DiscordChannelRef is the minimal view of a parent channel
type DiscordChannelRef struct {
	ID   string
	Type ChannelType
}

type DiscordChannel struct {
	ID   string
	Name string
	Type ChannelType
	// Parent is empty for top-level channels or when the parent could not be resolved
	Parent mo.Option[DiscordChannelRef]
}
