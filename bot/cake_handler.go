package bot

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"caketoss/bot/common"
)

// throwOutcome is one entry of the weighted outcome table for a throw.
// Messages use %a for the thrower's name and %b for the target's.
type throwOutcome struct {
	title    string
	messages []string
	value    int64
	weight   int
}

var throwOutcomes = []throwOutcome{
	{
		title: ":cake: Direct hit!",
		messages: []string{
			"%a lands a cake square in %b's face!",
			"%b never saw %a's cake coming.",
		},
		value:  5,
		weight: 40,
	},
	{
		title: ":cake: Glancing blow",
		messages: []string{
			"%a's cake clips %b's shoulder. Still counts.",
			"%b dodges, but %a's cake catches an ear.",
		},
		value:  2,
		weight: 30,
	},
	{
		title: ":dash: Swing and a miss",
		messages: []string{
			"%a's cake sails right past %b and splats on the wall.",
			"%b steps aside and %a's cake hits the floor.",
		},
		value:  -2,
		weight: 20,
	},
	{
		title: ":boom: Backfire!",
		messages: []string{
			"%a slips and wears the cake meant for %b.",
			"The cake explodes in %a's hands before %b is even in range.",
		},
		value:  -5,
		weight: 10,
	},
}

func pickOutcome() throwOutcome {
	total := 0
	for _, o := range throwOutcomes {
		total += o.weight
	}
	r := rand.Intn(total)
	for _, o := range throwOutcomes {
		if r < o.weight {
			return o
		}
		r -= o.weight
	}
	return throwOutcomes[len(throwOutcomes)-1]
}

func (b *Bot) handleCake(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.Member == nil {
		common.RespondError(s, i, "You can only /cake in servers!")
		return
	}

	var targetID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "target" {
			targetID = opt.UserValue(s).ID
		}
	}
	if targetID == "" {
		targetID = b.randomTargetID(s, i)
		if targetID == "" {
			common.RespondError(s, i, "Sorry, I couldn't figure out who you want to throw a cake at")
			return
		}
	}

	b.throwCakeAt(s, i, targetID)
}

// handleCakeButton handles the "Throw another" button. A target who clicks
// it throws back at the original thrower.
func (b *Bot) handleCakeButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	if i.GuildID == "" || i.Member == nil {
		common.RespondError(s, i, "You can only /cake in servers!")
		return
	}

	parts := strings.Split(strings.TrimPrefix(customID, "cake:"), ",")
	if len(parts) != 2 {
		return
	}
	throwerID, targetID := parts[0], parts[1]

	if targetID == i.Member.User.ID {
		b.throwCakeAt(s, i, throwerID)
	} else {
		b.throwCakeAt(s, i, targetID)
	}
}

func (b *Bot) throwCakeAt(s *discordgo.Session, i *discordgo.InteractionCreate, targetID string) {
	ctx := context.Background()
	throwerID := i.Member.User.ID

	if targetID == throwerID {
		common.RespondError(s, i, "I appreciate the enthusiasm, but you can't cake yourself.")
		return
	}
	if target, err := s.User(targetID); err != nil || target == nil {
		common.RespondError(s, i, "You have somehow managed to cake a ghost, good job.")
		return
	} else if target.Bot {
		common.RespondError(s, i, "You can't throw a cake at a bot!")
		return
	}

	guildName := i.GuildID
	if guild, err := s.State.Guild(i.GuildID); err == nil && guild != nil {
		guildName = guild.Name
	}

	outcome := pickOutcome()

	result, err := b.cakeService.ThrowCake(ctx, throwerID, i.GuildID, guildName, outcome.value, b.config.DailyCakeLimit)
	if err != nil {
		log.Errorf("Error recording cake throw for %s: %v", throwerID, err)
		common.RespondError(s, i, "Unable to throw that cake. Please try again.")
		return
	}

	if !result.Success {
		common.RespondError(s, i, fmt.Sprintf("You have run out of cakes for today, cakes will refresh <t:%d:R>", result.Member.NextReset()))
		return
	}

	throwerName := common.GetDisplayName(s, i.GuildID, throwerID)
	targetName := common.GetDisplayName(s, i.GuildID, targetID)
	log.Infof("%s threw at %s (%+d)", throwerName, targetName, outcome.value)

	message := outcome.messages[rand.Intn(len(outcome.messages))]
	message = strings.ReplaceAll(message, "%a", "**"+throwerName+"**")
	message = strings.ReplaceAll(message, "%b", "**"+targetName+"**")
	if result.Member.Cakes == 1 {
		message = fmt.Sprintf("This is **%s**'s first cake throw in this server!\n%s", throwerName, message)
	}
	message += "\n" + common.FormatPoints(outcome.value)

	embed := common.Embed(outcome.title, message, b.thumbnailURL())
	if gif := b.randomGifURL(); gif != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: gif}
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: fmt.Sprintf("cake:%s,%s", throwerID, targetID),
					Label:    "Throw another",
					Style:    discordgo.DangerButton,
				},
				discordgo.Button{
					CustomID: "leaderboard",
					Label:    "Leaderboard",
					Style:    discordgo.PrimaryButton,
				},
			},
		},
	}

	common.RespondEmbed(s, i, embed, components)
}

// randomTargetID picks a random non-bot member from the guild's state
// cache, excluding the thrower
func (b *Bot) randomTargetID(s *discordgo.Session, i *discordgo.InteractionCreate) string {
	guild, err := s.State.Guild(i.GuildID)
	if err != nil || guild == nil {
		return ""
	}

	var candidates []string
	for _, member := range guild.Members {
		if member.User == nil || member.User.Bot || member.User.ID == i.Member.User.ID {
			continue
		}
		candidates = append(candidates, member.User.ID)
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rand.Intn(len(candidates))]
}

var (
	gifOnce  sync.Once
	gifCache []string
)

// randomGifURL picks a random throw gif from the asset index. The index is
// fetched once and cached for the process lifetime.
func (b *Bot) randomGifURL() string {
	if b.config.AssetsBaseURL == "" {
		return ""
	}

	gifOnce.Do(func() {
		resp, err := http.Get(b.config.AssetsBaseURL + "index.txt")
		if err != nil {
			log.Warnf("Failed to fetch gif index: %v", err)
			return
		}
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			gifCache = append(gifCache, line)
		}
	})

	if len(gifCache) == 0 {
		return ""
	}
	return b.config.AssetsBaseURL + gifCache[rand.Intn(len(gifCache))]
}
