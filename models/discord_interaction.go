package models

// DiscordInteraction represents a slash command invocation
type DiscordInteraction struct {
	ID          string
	Token       string
	AppID       string
	CommandName string
	User        DiscordUser
	Channel     DiscordChannel
}

// DiscordCommand is an application command definition registered with Discord
type DiscordCommand struct {
	Name        string
	Description string
}
