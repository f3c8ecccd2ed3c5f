package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string // development guild for command registration

	// Database configuration
	DatabaseURL string

	// Cake configuration
	DailyCakeLimit      int64 // maximum successful throws per member per day
	LeaderboardPageSize int

	// Asset configuration
	AssetsBaseURL string // base URL for embed thumbnails and throw gifs

	// Magic 8 ball answers, one of which is picked at random per ask
	Magic8BallResponses []string

	// Logging
	LogLevel    string
	LogFilePath string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from the environment, with a .env file as a
// fallback source for local development
func load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Cake settings with defaults
		DailyCakeLimit:      3,
		LeaderboardPageSize: 10,

		AssetsBaseURL: os.Getenv("ASSETS_BASE_URL"),

		Magic8BallResponses: defaultMagic8BallResponses,

		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFilePath: os.Getenv("LOG_FILE_PATH"),

		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if limit := os.Getenv("DAILY_CAKE_LIMIT"); limit != "" {
		if parsedLimit, err := strconv.ParseInt(limit, 10, 64); err == nil {
			config.DailyCakeLimit = parsedLimit
		}
	}
	if size := os.Getenv("LEADERBOARD_PAGE_SIZE"); size != "" {
		if parsedSize, err := strconv.Atoi(size); err == nil {
			config.LeaderboardPageSize = parsedSize
		}
	}
	if responses := parseResponseList(os.Getenv("MAGIC_8BALL_RESPONSES")); len(responses) > 0 {
		config.Magic8BallResponses = responses
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFilePath == "" {
		config.LogFilePath = "logs/caketoss.log"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// parseResponseList splits a pipe-separated env value into trimmed,
// non-empty entries
func parseResponseList(value string) []string {
	var responses []string
	for _, part := range strings.Split(value, "|") {
		if part = strings.TrimSpace(part); part != "" {
			responses = append(responses, part)
		}
	}
	return responses
}

var defaultMagic8BallResponses = []string{
	"It is certain.",
	"Without a doubt.",
	"Yes, definitely.",
	"Most likely.",
	"Outlook good.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Cannot predict now.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
	"Have you tried throwing a cake at the problem?",
}
