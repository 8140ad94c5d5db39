package config

import (
	"os"
	"path/filepath"

	"docnet-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			BaseURL:                 utils.GetEnvString("DOCNET_API_BASE_URL", "http://localhost:8080"),
			RequestTimeoutInSeconds: utils.GetEnvInt("DOCNET_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestsPerSecond:       utils.GetEnvInt("DOCNET_REQUESTS_PER_SECOND", 10),
			SessionFile:             utils.GetEnvString("DOCNET_SESSION_FILE", defaultSessionFile()),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "docnet.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "docnet_error.log"),
		},
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".docnet", "session.json")
	}
	return filepath.Join(home, ".docnet", "session.json")
}
