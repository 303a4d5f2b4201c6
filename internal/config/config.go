package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDB       string
	TokenSecret   string
	Port          string
	CORSOrigins   []string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment, consulting a .env file first
// when one is present. Every value except the admin seed pair has a default.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGODB_DB", "bistroDB"),
		TokenSecret:   getenv("ACCESS_TOKEN_SECRET", "supersecret"),
		Port:          getenv("PORT", "5000"),
		CORSOrigins:   splitOrigins(getenv("CORS_ORIGINS", defaultOrigins)),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

const defaultOrigins = "http://localhost:5173,http://localhost:5174,https://rad-griffin-e8685a.netlify.app"

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
