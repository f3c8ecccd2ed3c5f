package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord, globally and
// additionally on the development guild when one is configured
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "cake",
			Description: "Throw a cake at someone!",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "target",
					Description: "The person you want to throw a cake at",
					Required:    false,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "View the leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "What to rank",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "members", Value: "members"},
						{Name: "users", Value: "users"},
						{Name: "guilds", Value: "guilds"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sort",
					Description: "Sort by cakes or points",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "cakes", Value: "cakes"},
						{Name: "points", Value: "points"},
					},
				},
			},
		},
		{
			Name:        "magic8ball",
			Description: "Get life advice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "what",
					Description: "What to get life advice about",
					Required:    false,
				},
			},
		},
		{
			Name:        "deletedata",
			Description: "Delete all your user data",
		},
		{
			Name:        "invite",
			Description: "Invite this bot",
		},
	}

	appID := b.session.State.User.ID

	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, "", commands); err != nil {
		return fmt.Errorf("failed to register global commands: %w", err)
	}

	if b.config.GuildID != "" {
		if _, err := b.session.ApplicationCommandBulkOverwrite(appID, b.config.GuildID, commands); err != nil {
			return fmt.Errorf("failed to register guild commands: %w", err)
		}
	}

	return nil
}
