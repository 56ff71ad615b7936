package database

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfigFromEnv loads connection settings for one logical store from
// environment variables. Variables are prefixed by store, e.g.
// WORK_DB_HOST / IDENTITY_DB_HOST, with sensible local defaults.
func LoadConfigFromEnv(store Store) (Config, error) {
	prefix := strings.ToUpper(string(store)) + "_DB_"

	port, err := strconv.Atoi(getEnvOrDefault(prefix+"PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %sPORT: %w", prefix, err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault(prefix+"MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault(prefix+"MAX_IDLE_CONNS", "5"))

	return Config{
		Host:            getEnvOrDefault(prefix+"HOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault(prefix+"USER", "specsmith"),
		Password:        os.Getenv(prefix + "PASSWORD"),
		Database:        getEnvOrDefault(prefix+"NAME", "specsmith_"+string(store)),
		SSLMode:         getEnvOrDefault(prefix+"SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
