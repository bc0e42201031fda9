package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to every component.
type Config struct {
	Port          string
	Env           string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBURL         string
	DBMaxOpen     int
	UploadDir     string
	AudioDir      string
	PublicBaseURL string
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// LoadDotEnv reads a .env file outside production. A missing file is not fatal.
func LoadDotEnv() error {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		return nil
	}
	return godotenv.Load()
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8000"),
		Env:           strings.ToLower(getenv("APP_ENV", "development")),
		DBDriver:      strings.ToLower(getenv("DB_DRIVER", "mysql")),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBUser:        getenv("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "study"),
		DBURL:         os.Getenv("DB_URL"),
		DBMaxOpen:     getenvInt("DB_MAX_OPEN_CONNS", 10),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		AudioDir:      getenv("AUDIO_DIR", "static/audio"),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8000"), "/"),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
