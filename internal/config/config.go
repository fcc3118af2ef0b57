package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Match  MatchConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DataConfig struct {
	CatalogPath   string
	AdmissionsCSV string
	MentorsPath   string
	StaticDir     string
}

type MatchConfig struct {
	DefaultResults int
	FullResults    int
}

type CORSConfig struct {
	AllowOrigins string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment and defaults")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5001"),
			Env:  getEnv("ENV", "development"),
		},
		Data: DataConfig{
			CatalogPath:   getEnv("CATALOG_PATH", "./data/program_profiles.json"),
			AdmissionsCSV: getEnv("ADMISSIONS_CSV_PATH", "./data/admissionsData.csv"),
			MentorsPath:   getEnv("MENTORS_PATH", "./data/mentors.json"),
			StaticDir:     getEnv("STATIC_DIR", "./static"),
		},
		Match: MatchConfig{
			DefaultResults: getEnvAsInt("DEFAULT_RESULTS", 10),
			FullResults:    getEnvAsInt("FULL_RESULTS", 100),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
