package config

import "os"

type Config struct {
	Port           string
	Env            string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	GoogleClientID string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "4043"),
		Env:            getEnv("ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "skillsync"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
