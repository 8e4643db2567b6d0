package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort   string
	ServerHost   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Schema bindings (logical role -> physical schema)
	CDMSchema   string
	VocabSchema string
	StemSchema  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers    []string
	KafkaGroupID    string
	StemLoadedTopic string
	RoutedTopic     string

	// Mapping rules
	RulesDir         string
	VocabCatalogPath string
	VocabCacheTTL    time.Duration

	// Provision destination tables on startup (dev and test targets only)
	AutoMigrate bool
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ServerHost:   getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: getDuration("WRITE_TIMEOUT", 30*time.Second),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "omop"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "omop123"),
		PostgresDB:       getEnv("POSTGRES_DB", "omop"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		CDMSchema:   getEnv("CDM_SCHEMA", "cdm"),
		VocabSchema: getEnv("VOCAB_SCHEMA", "vocab"),
		StemSchema:  getEnv("STEM_SCHEMA", "cdm"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaBrokers:    getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaGroupID:    getEnv("KAFKA_GROUP_ID", "omop-etl"),
		StemLoadedTopic: getEnv("STEM_LOADED_TOPIC", "stem-loaded"),
		RoutedTopic:     getEnv("ROUTED_TOPIC", "domain-routed"),

		RulesDir:         getEnv("RULES_DIR", ""),
		VocabCatalogPath: getEnv("VOCAB_CATALOG_PATH", ""),
		VocabCacheTTL:    getDuration("VOCAB_CACHE_TTL", 15*time.Minute),

		AutoMigrate: getBoolEnv("AUTO_MIGRATE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
