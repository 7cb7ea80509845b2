package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the struct that holds the configuration of the application
type Config struct {
	App     AppConfig     `json:"app"`
	YouTube YouTubeConfig `json:"youtube"`
	Output  OutputConfig  `json:"output"`
	Archive ArchiveConfig `json:"archive"`
	Web     WebConfig     `json:"web"`
}

type AppConfig struct {
	Name     string `json:"name"`
	LogLevel int    `json:"logLevel"`
	Env      string `json:"env"`
}

type YouTubeConfig struct {
	BaseURL    string `json:"baseUrl"`
	EnvFile    string `json:"envFile"`
	Region     string `json:"region"`
	MaxResults int    `json:"maxResults"`
}

type OutputConfig struct {
	Dir string `json:"dir"`
}

type ArchiveConfig struct {
	DSN string `json:"dsn"`
}

type WebConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Load config from config.json, falling back to defaults so the tool
// runs without any config file at all.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("app.name", "yt-trending")
	v.SetDefault("app.logLevel", 4)
	v.SetDefault("app.env", "development")
	v.SetDefault("youtube.baseUrl", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.envFile", ".env")
	v.SetDefault("youtube.region", "US")
	v.SetDefault("youtube.maxResults", 5)
	v.SetDefault("output.dir", ".")
	v.SetDefault("archive.dsn", "trending.db")
	v.SetDefault("web.host", "")
	v.SetDefault("web.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Override from environment variable if set
	if envURL := os.Getenv("YOUTUBE_API_BASE_URL"); envURL != "" {
		config.YouTube.BaseURL = envURL
	}

	return &config, nil
}

// Get config for YouTube API
func (c *Config) GetYouTubeConfig() *YouTubeConfig {
	return &c.YouTube
}

// Get config for file output
func (c *Config) GetOutputConfig() *OutputConfig {
	return &c.Output
}

// Get config for the snapshot archive
func (c *Config) GetArchiveConfig() *ArchiveConfig {
	return &c.Archive
}

// Get config for the web panel
func (c *Config) GetWebConfig() *WebConfig {
	return &c.Web
}
