package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type NotificationConfig struct {
	FunctionURL string
	FunctionKey string
	Timeout     time.Duration
}

type OutboxConfig struct {
	PollInterval  time.Duration
	BatchSize     int
	PurgeSchedule string
	Retention     time.Duration
}

// Config centralises environment configuration for all three binaries.
type Config struct {
	Database       DatabaseConfig
	Server         ServerConfig
	Notification   NotificationConfig
	Outbox         OutboxConfig
	RedisAddr      string
	KafkaBroker    string
	ConsumerGroup  string
	JWTSecret      string
	RBACModelPath  string
	ConnectRetries int
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Database: DatabaseConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnvOrDefault("DB_NAME", "go_care"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "3000"),
			ReadTimeout:  getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Notification: NotificationConfig{
			FunctionURL: os.Getenv("NOTIFICATION_FUNCTION_URL"),
			FunctionKey: os.Getenv("NOTIFICATION_FUNCTION_KEY"),
			Timeout:     getDurationEnv("NOTIFICATION_TIMEOUT", 10*time.Second),
		},
		Outbox: OutboxConfig{
			PollInterval:  getDurationEnv("OUTBOX_POLL_INTERVAL", 3*time.Second),
			BatchSize:     getIntEnv("OUTBOX_BATCH_SIZE", 50),
			PurgeSchedule: getEnvOrDefault("OUTBOX_PURGE_SCHEDULE", "@daily"),
			Retention:     getDurationEnv("OUTBOX_RETENTION", 7*24*time.Hour),
		},
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		ConsumerGroup:  getEnvOrDefault("KAFKA_CONSUMER_GROUP", "go-care-leave-notification"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RBACModelPath:  getEnvOrDefault("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
		ConnectRetries: getIntEnv("CONNECT_RETRIES", 5),
		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 20),
	}
}

func (c Config) RequireKafka() error {
	if strings.TrimSpace(c.KafkaBroker) == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func getIntEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getFloatEnv(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
