package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyVar is the environment variable holding the YouTube Data API key.
const APIKeyVar = "YOUTUBE_API_KEY"

// LoadAPIKey resolves the API key from an env file and the ambient
// environment. A value found in the file wins over the environment. The
// file is optional; a path that does not exist is skipped so the default
// ".env" works on machines configured purely through environment variables.
func LoadAPIKey(envFile string) (string, error) {
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("read env file %s: %w", envFile, err)
		}
		if key := values[APIKeyVar]; key != "" {
			return key, nil
		}
	}
	if key := os.Getenv(APIKeyVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%s is not set, provide it in the environment or an env file", APIKeyVar)
}
