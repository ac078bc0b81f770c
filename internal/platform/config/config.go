package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server process needs from its environment.
// FromEnv keeps main lean; defaults suit local development.
type Config struct {
	Addr          string
	JWTSigningKey string
	TokenTTL      time.Duration

	// Bootstrap identity registered as owner and authorized agency when the
	// backing store is empty.
	OwnerID     string
	OwnerName   string
	OwnerAPIKey string

	// Empty PostgresDSN keeps the registry on the in-memory store.
	PostgresDSN string

	// Optional notification sinks.
	RedisURL     string
	AuditStream  string
	KafkaBrokers []string
	AuditTopic   string
	AuditBuffer  int
}

func FromEnv() Config {
	cfg := Config{
		Addr:          envOr("REGISTRY_ADDR", ":8080"),
		JWTSigningKey: envOr("REGISTRY_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		TokenTTL:      envDuration("REGISTRY_TOKEN_TTL", time.Hour),
		OwnerID:       envOr("REGISTRY_OWNER_ID", "registry-admin"),
		OwnerName:     envOr("REGISTRY_OWNER_NAME", "Registry Administrator"),
		OwnerAPIKey:   os.Getenv("REGISTRY_OWNER_API_KEY"),
		PostgresDSN:   os.Getenv("REGISTRY_POSTGRES_DSN"),
		RedisURL:      os.Getenv("REGISTRY_REDIS_URL"),
		AuditStream:   envOr("REGISTRY_AUDIT_STREAM", "registry:audit"),
		AuditTopic:    envOr("REGISTRY_AUDIT_TOPIC", "registry.audit"),
		AuditBuffer:   envInt("REGISTRY_AUDIT_BUFFER", 1024),
	}
	if brokers := os.Getenv("REGISTRY_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
