package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"caketoss/bot"
	"caketoss/config"
	"caketoss/database"
	"caketoss/events"
	"caketoss/logging"
	"caketoss/repository"
	"caketoss/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration
	cfg := config.Get()

	if err := logging.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	log.Info("Starting caketoss bot...")

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize event bus and unit of work factory
	eventBus := events.NewBus()
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize services
	cakeService := service.NewCakeService(uowFactory)
	leaderboardService := service.NewLeaderboardService(uowFactory)
	privacyService := service.NewPrivacyService(uowFactory)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:               cfg.DiscordToken,
		GuildID:             cfg.DiscordGuildID,
		DailyCakeLimit:      cfg.DailyCakeLimit,
		PageSize:            cfg.LeaderboardPageSize,
		AssetsBaseURL:       cfg.AssetsBaseURL,
		Magic8BallResponses: cfg.Magic8BallResponses,
	}
	discordBot, err := bot.New(botConfig, cakeService, leaderboardService, privacyService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
