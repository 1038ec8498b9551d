package config

import (
	"os"
)

type ServerConfig struct {
	Addr          string
	SessionSecret string
}

type DBConfig struct {
	Driver     string // "sqlite" (default) or "postgres"
	SQLitePath string
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
}

type AfricaTalkingConfig struct {
	Username string
	APIKey   string
	SMSURL   string
	SenderID string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          getEnvOrDefault("SERVER_ADDR", ":8080"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "change-me"),
	}
}

func LoadDBConfig() DBConfig {
	return DBConfig{
		Driver:     getEnvOrDefault("DB_DRIVER", "sqlite"),
		SQLitePath: getEnvOrDefault("SQLITE_PATH", "restaurante.db"),
		Host:       getEnvOrDefault("POSTGRES_HOST", "localhost"),
		User:       getEnvOrDefault("POSTGRES_USER", "test"),
		Password:   getEnvOrDefault("POSTGRES_PASSWORD", "test"),
		Name:       getEnvOrDefault("POSTGRES_DB", "test"),
		Port:       getEnvOrDefault("DB_PORT", "5432"),
	}
}

func LoadAfricaTalkingConfig() AfricaTalkingConfig {
	return AfricaTalkingConfig{
		Username: os.Getenv("AT_USERNAME"),
		APIKey:   os.Getenv("AT_API_KEY"),
		SMSURL:   getEnvOrDefault("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"), // Sandbox URL
		SenderID: getEnvOrDefault("AT_SENDER_ID", "AFRICASTKNG"),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
