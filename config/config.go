package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port      string
	Env       string
	ClientURL string
	DB        DB
	JWT       JWT
	Stripe    Stripe
	Pricing   Pricing
	Redis     Redis
	Kafka     Kafka
	Reset     Reset
	Password  Password
}

type DB struct {
	database.Config
}

type JWT struct {
	Secret    string
	Issuer    string
	Audience  string
	AccessExp time.Duration
}

type Stripe struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

type Pricing struct {
	// WebhookPolicy selects the pricing policy used when an order is created
	// from a provider webhook: "percentage" or "standard".
	WebhookPolicy string
}

type Redis struct {
	Enabled    bool
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

type Kafka struct {
	Brokers     []string
	OrdersTopic string
	EmailTopic  string
}

type Reset struct {
	TokenTTL  time.Duration
	RateLimit time.Duration
}

type Password struct {
	BcryptCost int
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port:      getEnvDefault("APP_PORT", ":5000"),
		Env:       getEnvDefault("ENV", "production"),
		ClientURL: strings.TrimRight(getEnvDefault("CLIENT_URL", "http://localhost:5173"), "/"),
		DB: DB{
			Config: database.Config{
				URI:  getEnv("MONGO_URI", log),
				Name: getEnvDefault("MONGO_DB", "storefront"),
			},
		},
		JWT: JWT{
			Secret:    getEnv("JWT_SECRET", log),
			Issuer:    getEnvDefault("JWT_ISSUER", "storefront"),
			Audience:  getEnvDefault("JWT_AUDIENCE", "storefront-client"),
			AccessExp: parseDurationWithDays(getEnvDefault("JWT_EXPIRE", "30d")),
		},
		Stripe: Stripe{
			SecretKey:     getEnvDefault("STRIPE_SECRET_KEY", ""),
			WebhookSecret: getEnvDefault("STRIPE_WEBHOOK_SECRET", ""),
			Currency:      getEnvDefault("STRIPE_CURRENCY", "inr"),
		},
		Pricing: Pricing{
			WebhookPolicy: getEnvDefault("WEBHOOK_PRICING", "percentage"),
		},
		Redis: Redis{
			Enabled:    getEnvDefault("REDIS_ENABLED", "false") == "true",
			Addr:       getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password:   getEnvDefault("REDIS_PASSWORD", ""),
			DB:         atoiDefault(getEnvDefault("REDIS_DB", "0"), 0),
			TTLSeconds: atoiDefault(getEnvDefault("CACHE_TTL_SECONDS", "60"), 60),
		},
		Kafka: Kafka{
			Brokers:     splitList(getEnvDefault("KAFKA_BROKERS", "")),
			OrdersTopic: getEnvDefault("KAFKA_TOPIC_ORDERS", "orders.events"),
			EmailTopic:  getEnvDefault("KAFKA_TOPIC_EMAIL", "email.requests"),
		},
		Reset: Reset{
			TokenTTL:  parseDurationWithDays(getEnvDefault("RESET_TOKEN_TTL", "10m")),
			RateLimit: parseDurationWithDays(getEnvDefault("RESET_RATE_LIMIT", "1m")),
		},
		Password: Password{
			BcryptCost: atoiDefault(getEnvDefault("BCRYPT_COST", "0"), 0),
		},
	}
}

func (c *Config) IsDev() bool { return c.Env == "development" }

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func parseDurationWithDays(s string) time.Duration {
	if strings.HasSuffix(s, "d") {
		daysStr := strings.TrimSuffix(s, "d")
		days, err := time.ParseDuration(daysStr + "h")
		if err != nil {
			log.Printf("failed to parse duration %q: %v", s, err)
			return 0
		}
		return time.Duration(24) * days
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return duration
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
