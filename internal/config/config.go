package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	SecretKey   string
	MediaRoot   string
	Timezone    string
	OpenAIKey   string
	OpenAIModel string
	FFmpegPath  string
}

// Load reads an optional .env file and falls back to defaults for anything
// the environment does not set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", filepath.Join("data", "voicelog.db")),
		SecretKey:   getEnv("SECRET_KEY", "change_me_in_production"),
		MediaRoot:   getEnv("MEDIA_ROOT", "media"),
		Timezone:    getEnv("TZ", "UTC"),
		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		FFmpegPath:  getEnv("FFMPEG_PATH", "ffmpeg"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
