package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	GenAI    GenAIConfig
	LogLevel string
}

// StorageConfig selects the persistence backend. "memory" runs the whole
// service against the in-memory stores, useful for demos and local
// development without a database.
type StorageConfig struct {
	Driver string // "mongodb" or "memory"
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis-specific configuration. The leaderboard cache
// is skipped entirely when Enabled is false.
type RedisConfig struct {
	Enabled      bool
	Addr         string
	Password     string
	DB           int
	CacheTTLSecs int
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// GenAIConfig holds generative-text API configuration for the
// motivational text provider
type GenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	MockAPI bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Storage.Driver", "mongodb")
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "wenhong-workshop")
	viper.SetDefault("Redis.Enabled", false)
	viper.SetDefault("Redis.Addr", "localhost:6379")
	viper.SetDefault("Redis.DB", 0)
	viper.SetDefault("Redis.CacheTTLSecs", 60)
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("GenAI.BaseURL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GenAI.Model", "gemini-2.0-flash-exp")
	viper.SetDefault("GenAI.MockAPI", true)
	viper.SetDefault("LogLevel", "info")
}
