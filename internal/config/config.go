package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	LogLevel string
	Env      string

	JWTSecret string

	// SeedSampleData loads the sample workspace at startup. The demo
	// password is the credential every seeded member signs in with.
	SeedSampleData bool
	DemoPassword   string
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		Port:           GetEnv("PORT", "8081"),
		Env:            GetEnv("ENV", "development"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		JWTSecret:      GetEnv("JWT_SECRET", "dev-secret-change-me"),
		SeedSampleData: GetEnvBool("SEED_SAMPLE_DATA", true),
		DemoPassword:   GetEnv("DEMO_PASSWORD", "workdeck"),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
