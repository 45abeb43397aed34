package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB    int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Firebase project configuration.
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseStorageBucket   string `mapstructure:"FIREBASE_STORAGE_BUCKET"`
	FirebaseWebAPIKey       string `mapstructure:"FIREBASE_WEB_API_KEY"`

	// Receipt artifact handling.
	ReceiptDir             string `mapstructure:"RECEIPT_DIR"`
	ReceiptDownloadDelayMS int    `mapstructure:"RECEIPT_DOWNLOAD_DELAY_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("RECEIPT_DIR", "receipts")
	viper.SetDefault("RECEIPT_DOWNLOAD_DELAY_MS", 1500)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
