package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/dlchamp/channel-lock-bot/internal/domain"
	"github.com/dlchamp/channel-lock-bot/internal/domain/entity"
	"github.com/dlchamp/channel-lock-bot/internal/domain/service"
	"go.uber.org/zap"
)

// DiscordHandler is the thin slash-command surface over the config service.
// All validation happens in the service; the handler only maps interactions
// to service calls and renders plain-text replies.
type DiscordHandler struct {
	session *discordgo.Session
	config  *service.ConfigService
	log     *zap.Logger
}

func New(session *discordgo.Session, config *service.ConfigService, log *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		session: session,
		config:  config,
		log:     log,
	}
}

var manageChannels int64 = discordgo.PermissionManageChannels

var commands = []*discordgo.ApplicationCommand{
	{
		Name:                     "config",
		Description:              "Configure automatic channel locking",
		DefaultMemberPermissions: &manageChannels,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "View the current configuration for this server",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "timezone",
				Description: "Set the timezone for this server",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "timezone",
						Description: "IANA timezone name (e.g. America/New_York)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "channel",
				Description: "Add or update a channel to be locked/unlocked automatically",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "The text channel to lock/unlock",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "lock",
						Description: "When the channel should lock (24-hour time, e.g. 20:15)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "unlock",
						Description: "When the channel should unlock (24-hour time, e.g. 07:30)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "days",
						Description: "Active days: a range like 1-3 or a list like 0,2,4 (0=Monday)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove a channel from configured channels",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "The configured channel to remove",
						Required:    true,
					},
				},
			},
		},
	},
}

// Register attaches the interaction handler and creates the slash commands.
// Must be called after the session is open.
func (h *DiscordHandler) Register() error {
	h.session.AddHandler(h.handleInteraction)

	for _, cmd := range commands {
		if _, err := h.session.ApplicationCommandCreate(h.session.State.User.ID, "", cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}

	return nil
}

func (h *DiscordHandler) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "config" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]

	var msg string
	switch sub.Name {
	case "view":
		msg = h.handleView(i)
	case "timezone":
		msg = h.handleTimezone(i, sub)
	case "channel":
		msg = h.handleChannel(i, sub)
	case "remove":
		msg = h.handleRemove(sub)
	default:
		return
	}

	h.respond(s, i, msg)
}

func (h *DiscordHandler) handleView(i *discordgo.InteractionCreate) string {
	guild, err := h.config.GuildConfig(i.GuildID)
	if err != nil {
		h.log.Error("failed to load guild config", zap.String("guild_id", i.GuildID), zap.Error(err))
		return "Failed to load the configuration, please try again."
	}

	var b strings.Builder
	if guild.Timezone == "" {
		b.WriteString("**Timezone**: No timezone configured (default: UTC)\n")
	} else {
		fmt.Fprintf(&b, "**Timezone**: %s\n", guild.Timezone)
	}

	if len(guild.Channels) == 0 {
		b.WriteString("**Channels**: No channels configured")
		return b.String()
	}

	b.WriteString("**Channels**:\n")
	for _, channel := range guild.Channels {
		fmt.Fprintf(&b, "<#%s> — lock %s, unlock %s, days %s\n",
			channel.ChannelID,
			formatTime(channel),
			formatUnlockTime(channel),
			formatDays(channel),
		)
	}

	return b.String()
}

func (h *DiscordHandler) handleTimezone(i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) string {
	timezone := sub.Options[0].StringValue()

	if err := h.config.SetTimezone(i.GuildID, timezone); err != nil {
		if errors.Is(err, domain.ErrUnknownTimezone) {
			return fmt.Sprintf("`%s` is not a supported timezone. Use an IANA name like `America/New_York`.", timezone)
		}
		h.log.Error("failed to set timezone", zap.String("guild_id", i.GuildID), zap.Error(err))
		return "Failed to update the timezone, please try again."
	}

	return "Timezone has been updated."
}

func (h *DiscordHandler) handleChannel(i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) string {
	var channelID, lock, unlock, days string
	for _, opt := range sub.Options {
		switch opt.Name {
		case "channel":
			channelID = opt.ChannelValue(nil).ID
		case "lock":
			lock = opt.StringValue()
		case "unlock":
			unlock = opt.StringValue()
		case "days":
			days = opt.StringValue()
		}
	}

	created, channel, err := h.config.UpsertChannel(context.Background(), i.GuildID, channelID, lock, unlock, days)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidScheduleFormat) {
			return fmt.Sprintf("Invalid schedule: %s", err)
		}
		h.log.Error("failed to upsert channel schedule",
			zap.String("guild_id", i.GuildID),
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
		return "Failed to save the channel configuration, please try again."
	}

	heading := "**Channel updated!**"
	if created {
		heading = "**New channel added!**"
	}

	return fmt.Sprintf("%s\n**Channel**: <#%s>\n**Lock Time**: %s\n**Unlock Time**: %s\n**Days**: %s",
		heading, channel.ChannelID, formatTime(channel), formatUnlockTime(channel), formatDays(channel))
}

func (h *DiscordHandler) handleRemove(sub *discordgo.ApplicationCommandInteractionDataOption) string {
	channelID := sub.Options[0].ChannelValue(nil).ID

	if err := h.config.RemoveChannel(channelID); err != nil {
		h.log.Error("failed to remove channel schedule", zap.String("channel_id", channelID), zap.Error(err))
		return "Failed to remove the channel, please try again."
	}

	return fmt.Sprintf("<#%s> has been removed.", channelID)
}

func (h *DiscordHandler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Error("failed to respond to interaction", zap.Error(err))
	}
}

func formatTime(channel *entity.Channel) string {
	if channel.LockTime == nil {
		return "None"
	}
	return channel.LockTime.String()
}

func formatUnlockTime(channel *entity.Channel) string {
	if channel.UnlockTime == nil {
		return "None"
	}
	return channel.UnlockTime.String()
}

func formatDays(channel *entity.Channel) string {
	if channel.Days == nil {
		return "Every day"
	}
	return channel.Days.String()
}
