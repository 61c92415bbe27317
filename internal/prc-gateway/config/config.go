package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

type AppConfig struct {
	Server   ServerConfig
	PRC      PRCConfig
	Database DatabaseConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE" default:"./log/prc-gateway.log"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type PRCConfig struct {
	BaseURL        string        `envconfig:"PRC_BASE_URL" default:"https://api.policeroleplay.community/v1"`
	GlobalAPIKey   string        `envconfig:"PRC_GLOBAL_API_KEY"`
	RequestTimeout time.Duration `envconfig:"PRC_REQUEST_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DATABASE_DRIVER" default:"postgres"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./data/robloxhelper.db"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB" default:"robloxhelper"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	KeyTTL   time.Duration `envconfig:"REDIS_KEY_TTL" default:"1h"`
}

type KafkaConfig struct {
	Enabled         bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers         []string `envconfig:"KAFKA_BROKERS"`
	KeyEventsTopic  string   `envconfig:"KAFKA_KEY_EVENTS_TOPIC" default:"erlc-key-events"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID"`
}

// LoadConfig reads path as a dotenv file when it exists; the environment wins.
func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
