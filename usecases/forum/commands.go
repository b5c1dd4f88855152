package forum

import "github.com/Dummiesman/MiniDiscordForumSelfmodBot/models"

const (
	PinCommandName  = "pin"
	LockCommandName = "lock"
)

var (
	pinCommand = models.DiscordCommand{
		Name:        PinCommandName,
		Description: "Pin the first message in this forum thread.",
	}
	lockCommand = models.DiscordCommand{
		Name:        LockCommandName,
		Description: "Lock this forum thread. Note that a moderator will be required to reverse this action.",
	}
)

// Replies shown to the invoking user. Raw platform errors are never shown.
const (
	replyNotForumThread = "This command must be used in a forum channel."

	replyPinSuccess = "Success! The original post has been pinned."
	replyPinDenied  = "Could not pin the original post. Either you don't have permission, or it has been deleted."
	replyPinFailed  = "Something went wrong while pinning the original post. Please try again later."

	replyLockSuccess = "Success! Your thread has been locked."
	replyLockDenied  = "Could not lock this thread. " +
		"Either you don't have permission, or the original post has been deleted."
	replyLockFailed = "Something went wrong while locking this thread. Please try again later."
)

// Commands returns the application commands the bot registers on startup
func Commands() []models.DiscordCommand {
	return []models.DiscordCommand{pinCommand, lockCommand}
}
