package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. Values come from the
// environment so main stays lean and deploys stay twelve-factor.
type Server struct {
	Addr string

	DatabaseURL string

	Redis RedisConfig

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	Ledger LedgerConfig

	Kafka KafkaConfig

	AssetDir     string
	AssetBaseURL string

	FaceMatchURL string

	RequestTimeout time.Duration
}

// RedisConfig holds connection settings for the asset URL cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LedgerConfig holds the anchoring endpoint and identity. An empty RPCURL
// selects the in-memory ledger, which is only acceptable for development.
type LedgerConfig struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string
	ChainID         int64
	ConfirmTimeout  time.Duration
}

// KafkaConfig holds the audit relay settings. Empty brokers disable the relay
// and audit events stay in the outbox.
type KafkaConfig struct {
	Brokers      []string
	AuditTopic   string
	PollInterval time.Duration
}

// AssetCacheTTL bounds how long resolved asset URLs may be served from cache.
var AssetCacheTTL = 5 * time.Minute

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:          envOr("SIGNET_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     envOr("JWT_ISSUER", "signet"),
		JWTAudience:   envOr("JWT_AUDIENCE", "signet-api"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Ledger: LedgerConfig{
			RPCURL:          os.Getenv("LEDGER_RPC_URL"),
			ContractAddress: os.Getenv("LEDGER_CONTRACT_ADDRESS"),
			PrivateKey:      os.Getenv("LEDGER_PRIVATE_KEY"),
			ChainID:         int64(envIntOr("LEDGER_CHAIN_ID", 1337)),
			ConfirmTimeout:  envDurationOr("LEDGER_CONFIRM_TIMEOUT", 90*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:      splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			AuditTopic:   envOr("AUDIT_TOPIC", "signet.audit.events"),
			PollInterval: envDurationOr("AUDIT_POLL_INTERVAL", 2*time.Second),
		},
		AssetDir:       envOr("ASSET_DIR", "certificate_images"),
		AssetBaseURL:   envOr("ASSET_BASE_URL", "http://localhost:8080/certificate_images"),
		FaceMatchURL:   os.Getenv("FACE_MATCH_URL"),
		RequestTimeout: envDurationOr("REQUEST_TIMEOUT", 30*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
