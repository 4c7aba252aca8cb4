package config

import "os"

type Config struct {
	DiscordToken string
	DatabasePath string
	LogLevel     string
	LogFormat    string
}

func Load() *Config {
	return &Config{
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DatabasePath: getEnv("DATABASE_PATH", "./lockbot.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
