package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	MongoDB   MongoDBConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

// StoreConfig selects the key-value backend behind the collections.
// Backend is one of: memory, redis, mongo.
type StoreConfig struct {
	Backend string
	Prefix  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("STORE_PREFIX", "organizer:")
	viper.SetDefault("MONGODB_DATABASE", "studydesk")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("RATE_LIMIT_RPS", 25.0)
	viper.SetDefault("RATE_LIMIT_BURST", 50)

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		Store: StoreConfig{
			Backend: viper.GetString("STORE_BACKEND"),
			Prefix:  viper.GetString("STORE_PREFIX"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       0,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return cfg, nil
}
