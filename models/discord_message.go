package models

type DiscordUser struct {
	ID       string
	Username string
}

type DiscordMessage struct {
	ID        string
	ChannelID string
	AuthorID  string
}
