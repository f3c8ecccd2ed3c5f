package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"caketoss/bot/common"
	"caketoss/models"
)

const deleteDataTitle = ":wastebasket: Delete all your data"

func (b *Bot) interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// handleDeleteData asks for confirmation before anything is erased
func (b *Bot) handleDeleteData(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID := b.interactionUserID(i)
	if userID == "" {
		common.RespondError(s, i, "Unable to work out who you are. Please try again.")
		return
	}

	entry, err := b.leaderboardService.GetEntry(ctx, models.KindUsers, userID)
	if err != nil {
		log.Errorf("Error looking up user %s: %v", userID, err)
		common.RespondError(s, i, "Unable to look up your data. Please try again.")
		return
	}
	if entry == nil {
		common.RespondError(s, i, "You have no data to delete!")
		return
	}

	embed := common.Embed(deleteDataTitle,
		fmt.Sprintf("Are you sure?\nThis includes %d points made over %d throws.", entry.Points, entry.Cakes),
		b.thumbnailURL())

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							CustomID: "deletedataconfirm",
							Label:    "Yes, I am sure.",
							Style:    discordgo.DangerButton,
						},
						discordgo.Button{
							CustomID: "deletedatacancel",
							Label:    "No! Abort!",
							Style:    discordgo.PrimaryButton,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Errorf("Error responding to deletedata command: %v", err)
	}
}

func (b *Bot) handleDeleteDataConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID := b.interactionUserID(i)
	result, err := b.privacyService.DeleteUserData(ctx, userID)
	if err != nil {
		log.Errorf("Error deleting data for user %s: %v", userID, err)
		common.UpdateEmbed(s, i, common.Embed(deleteDataTitle, "Something went wrong, nothing was deleted. Please try again.", b.thumbnailURL()))
		return
	}

	message := "Deleted all your data!"
	if !result.Deleted {
		message = "There was nothing left to delete."
	}
	common.UpdateEmbed(s, i, common.Embed(deleteDataTitle, message, b.thumbnailURL()))
}

func (b *Bot) handleDeleteDataCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.UpdateEmbed(s, i, common.Embed(deleteDataTitle, "Operation aborted!", b.thumbnailURL()))
}
