package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/dlchamp/channel-lock-bot/internal/domain/contract"
)

// Client wraps a discordgo session behind the contract.Discord interface.
// Lookups prefer the session state cache and fall back to the REST API.
type Client struct {
	session *discordgo.Session
}

func NewClient(session *discordgo.Session) contract.Discord {
	return &Client{session: session}
}

func (c *Client) Guild(guildID string) (*discordgo.Guild, error) {
	if guild, err := c.session.State.Guild(guildID); err == nil {
		return guild, nil
	}

	guild, err := c.session.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve guild %s: %w", guildID, err)
	}
	return guild, nil
}

func (c *Client) GuildChannel(guildID, channelID string) (*discordgo.Channel, error) {
	channel, err := c.session.State.Channel(channelID)
	if err != nil {
		channel, err = c.session.Channel(channelID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
		}
	}

	if channel.GuildID != guildID {
		return nil, fmt.Errorf("channel %s does not belong to guild %s", channelID, guildID)
	}

	return channel, nil
}

func (c *Client) DenySend(channelID, roleID string) error {
	err := c.session.ChannelPermissionSet(
		channelID,
		roleID,
		discordgo.PermissionOverwriteTypeRole,
		0,
		discordgo.PermissionSendMessages,
	)
	if err != nil {
		return fmt.Errorf("failed to deny send permission on channel %s: %w", channelID, err)
	}

	return nil
}

func (c *Client) ClearSendOverwrite(channelID, roleID string) error {
	if err := c.session.ChannelPermissionDelete(channelID, roleID); err != nil {
		return fmt.Errorf("failed to clear permission overwrite on channel %s: %w", channelID, err)
	}

	return nil
}

func (c *Client) Rename(channelID, name string) error {
	if _, err := c.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}); err != nil {
		return fmt.Errorf("failed to rename channel %s: %w", channelID, err)
	}

	return nil
}

func (c *Client) GuildIDs() []string {
	c.session.State.RLock()
	defer c.session.State.RUnlock()

	ids := make([]string, 0, len(c.session.State.Guilds))
	for _, guild := range c.session.State.Guilds {
		ids = append(ids, guild.ID)
	}
	return ids
}
