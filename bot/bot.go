package bot

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"caketoss/events"
	"caketoss/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token               string
	GuildID             string // development guild; commands are also registered here when set
	DailyCakeLimit      int64
	PageSize            int
	AssetsBaseURL       string
	Magic8BallResponses []string
}

type Bot struct {
	config             Config
	session            *discordgo.Session
	cakeService        service.CakeService
	leaderboardService service.LeaderboardService
	privacyService     service.PrivacyService
	eventBus           *events.Bus
}

func New(config Config, cakeService service.CakeService, leaderboardService service.LeaderboardService, privacyService service.PrivacyService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	bot := &Bot{
		config:             config,
		session:            dg,
		cakeService:        cakeService,
		leaderboardService: leaderboardService,
		privacyService:     privacyService,
		eventBus:           eventBus,
	}

	dg.AddHandler(bot.handleInteraction)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	eventBus.Subscribe(events.EventTypeCakeThrown, logCakeThrown(config.DailyCakeLimit))
	eventBus.Subscribe(events.EventTypeUserDataDeleted, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.UserDataDeletedEvent); ok {
			log.WithFields(log.Fields{
				"userID": e.UserID,
				"cakes":  e.Cakes,
				"points": e.Points,
			}).Info("User data deleted")
		}
	})

	log.Infof("Logged in as %s", dg.State.User.String())
	return bot, nil
}

// logCakeThrown returns the bus handler that logs successful throws. The
// throw that spends the member's last cake of the day is called out at a
// higher level.
func logCakeThrown(dailyLimit int64) events.Handler {
	return func(ctx context.Context, event events.Event) {
		e, ok := event.(events.CakeThrownEvent)
		if !ok {
			return
		}
		fields := log.Fields{
			"userID":     e.UserID,
			"guildID":    e.GuildID,
			"points":     e.Points,
			"cakesToday": e.CakesToday,
		}
		if e.CakesToday >= dailyLimit {
			log.WithFields(fields).Info("Member spent their last cake of the day")
			return
		}
		log.WithFields(fields).Debug("Cake thrown")
	}
}

// handleInteraction routes slash commands and component clicks to their
// feature handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "cake":
			b.handleCake(s, i)
		case "leaderboard":
			b.handleLeaderboard(s, i)
		case "magic8ball":
			b.handleMagic8Ball(s, i)
		case "deletedata":
			b.handleDeleteData(s, i)
		case "invite":
			b.handleInvite(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, "cake:"):
			b.handleCakeButton(s, i, customID)
		case customID == "leaderboard":
			b.handleLeaderboard(s, i)
		case customID == "deletedataconfirm":
			b.handleDeleteDataConfirm(s, i)
		case customID == "deletedatacancel":
			b.handleDeleteDataCancel(s, i)
		}
	}
}

func (b *Bot) handleInvite(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("https://discord.com/oauth2/authorize?client_id=%s", s.State.User.ID),
		},
	})
	if err != nil {
		log.Errorf("Error responding to invite command: %v", err)
	}
}

func (b *Bot) thumbnailURL() string {
	if b.config.AssetsBaseURL == "" {
		return ""
	}
	return b.config.AssetsBaseURL + "icon.png"
}

// Close shuts down the Discord session
func (b *Bot) Close() error {
	return b.session.Close()
}
