package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"caketoss/bot/common"
	"caketoss/models"
)

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	kind := models.KindMembers
	sort := models.SortByPoints
	if i.Type == discordgo.InteractionApplicationCommand {
		for _, opt := range i.ApplicationCommandData().Options {
			switch opt.Name {
			case "type":
				kind = models.LeaderboardKind(opt.StringValue())
			case "sort":
				sort = models.SortKey(opt.StringValue())
			}
		}
	}

	if kind == models.KindMembers && i.GuildID == "" {
		common.RespondError(s, i, "You can only get the member leaderboard in servers!")
		return
	}

	entries, err := b.leaderboardService.TopEntries(ctx, kind, sort, b.config.PageSize, 1, i.GuildID)
	if err != nil {
		log.Errorf("Error fetching %s leaderboard: %v", kind, err)
		common.RespondError(s, i, "Unable to fetch the leaderboard. Please try again.")
		return
	}

	var message string
	for n, entry := range entries {
		name := entry.Name
		if kind != models.KindGuilds {
			name = common.GetDisplayName(s, i.GuildID, entry.ID)
		}
		value := fmt.Sprintf("%d points", entry.Points)
		if sort == models.SortByCakes {
			value = fmt.Sprintf("%d cakes", entry.Cakes)
		}
		message += fmt.Sprintf("**%d**. %s (%s)\n", n+1, name, value)
	}
	if message == "" {
		message = "No one yet :sob:"
	}

	title := ":trophy: "
	switch kind {
	case models.KindGuilds:
		title += "Top servers"
	case models.KindUsers:
		title += "Top users in all servers"
	default:
		title += "Top users in this server"
	}

	common.RespondEmbed(s, i, common.Embed(title, message, b.thumbnailURL()), nil)
}
