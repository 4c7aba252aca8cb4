package contract

import "github.com/bwmarrin/discordgo"

// Discord defines the gateway operations the bot needs from the chat
// platform. This allows mocking in tests while keeping the real
// implementation a thin wrapper over the discordgo session.
type Discord interface {
	// Guild resolves a guild the session participates in.
	Guild(guildID string) (*discordgo.Guild, error)

	// GuildChannel resolves a channel and verifies it belongs to the guild.
	GuildChannel(guildID, channelID string) (*discordgo.Channel, error)

	// DenySend sets an explicit send-messages deny for the role on the channel.
	DenySend(channelID, roleID string) error

	// ClearSendOverwrite removes the role's permission overwrite on the
	// channel, resetting send permission to inherited rather than an
	// explicit allow.
	ClearSendOverwrite(channelID, roleID string) error

	// Rename changes the channel's visible name.
	Rename(channelID, name string) error

	// GuildIDs lists the guilds the session currently participates in.
	GuildIDs() []string
}
