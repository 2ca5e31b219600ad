package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type Config struct {
	Port             string
	Env              string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("APP_ENV", "development"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if err := cfg.overlayFromSecretsManager(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	return cfg, nil
}

// overlayFromSecretsManager fetches the crm/DB_CREDENTIALS secret and
// overrides any database field it carries.
func (c *Config) overlayFromSecretsManager(ctx context.Context) error {
	awsConfig, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	sm := secretsmanager.NewFromConfig(awsConfig)

	secretID := getEnv("DB_SECRET_ID", "crm/DB_CREDENTIALS")
	out, err := sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: &secretID})
	if err != nil {
		return err
	}
	if out.SecretString == nil {
		return fmt.Errorf("secret %s has no string value", secretID)
	}

	var m map[string]string
	if err := json.Unmarshal([]byte(*out.SecretString), &m); err != nil {
		return err
	}
	if v, ok := m["POSTGRES_USER"]; ok && v != "" {
		c.PostgresUser = v
	}
	if v, ok := m["POSTGRES_PASSWORD"]; ok && v != "" {
		c.PostgresPassword = v
	}
	if v, ok := m["POSTGRES_DB"]; ok && v != "" {
		c.PostgresDB = v
	}
	if v, ok := m["POSTGRES_HOST"]; ok && v != "" {
		c.PostgresHost = v
	}
	if v, ok := m["POSTGRES_PORT"]; ok && v != "" {
		c.PostgresPort = v
	}
	return nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
