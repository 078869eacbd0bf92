package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "MONGO_URI", "MONGO_DATABASE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "4043", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "skillsync", cfg.MongoDatabase)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, "client-id.apps.googleusercontent.com", cfg.GoogleClientID)
}
