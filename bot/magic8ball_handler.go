package bot

import (
	"math/rand"

	"github.com/bwmarrin/discordgo"

	"caketoss/bot/common"
)

// adviceLine picks one answer from the configured response list
func adviceLine(responses []string) string {
	if len(responses) == 0 {
		return "The 8 ball is empty. Try again never."
	}
	return responses[rand.Intn(len(responses))]
}

func (b *Bot) handleMagic8Ball(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := common.Embed(":8ball: Magic 8 Ball", adviceLine(b.config.Magic8BallResponses), b.thumbnailURL())
	common.RespondEmbed(s, i, embed, nil)
}
