package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration parameters.
// Each field corresponds to an expected environment variable.
type Config struct {
	EnvLogsLevel        string // Log level for the application (e.g., DEBUG, INFO)
	EnvLogFileName      string // File's name for log (e.g., NewsBot.log)
	EnvBotToken         string // Telegram Bot Token for authentication with the Telegram API
	EnvGenerativeName   string // Name of the generative AI provider to use (e.g., "gemini" or "deepseek")
	EnvGenerativeApiKey string // API Key for the generative AI service
	EnvGenerativeModel  string // Model name for the generative AI (e.g., "gemini-1.5-flash")
	EnvStoragePath      string // File path for persisting per-chat conversation state
	EnvExportsPath      string // Directory for assembled script files before delivery
	EnvUploadsPath      string // Directory for temporarily downloaded user documents
	EnvSearchEnabled    bool   // Whether best-effort web search grounding is active
}

// NewConfig initializes a new Config instance by loading environment variables from a .env file.
// It returns a pointer to the Config struct and an error if any of the environment variables are missing or invalid.
func NewConfig() (*Config, error) {
	err := godotenv.Load("bot.env")
	if err != nil {
		return nil, fmt.Errorf("new load .env: %w", err)
	}

	config := &Config{}
	config.EnvLogsLevel = os.Getenv("LOG_LEVEL")
	config.EnvLogFileName = os.Getenv("LOG_FILE_NAME")
	config.EnvBotToken = os.Getenv("TOKEN_BOT")
	config.EnvGenerativeName = os.Getenv("GENERATIVE_NAME")
	config.EnvGenerativeApiKey = os.Getenv("GENERATIVE_API_KEY")
	config.EnvGenerativeModel = os.Getenv("GENERATIVE_MODEL")
	config.EnvStoragePath = os.Getenv("FILE_STORAGE_PATH")
	config.EnvExportsPath = os.Getenv("EXPORTS_PATH")
	config.EnvUploadsPath = os.Getenv("UPLOADS_PATH")

	config.EnvSearchEnabled = true
	if raw := os.Getenv("SEARCH_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			logrus.WithError(err).Error("Failed to parse SEARCH_ENABLED from environment")
			return nil, err
		}
		config.EnvSearchEnabled = enabled
	}

	return config, nil
}
