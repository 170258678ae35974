package config

import (
	"fmt"
	"os"
)

// Config carries everything the process needs at startup. Handlers and
// services receive what they need through constructors; nothing reads the
// environment after Load returns.
type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string
	RedisAddr   string
	JWTSecret   string
	OrderTopic  string
	ConsumerGrp string
}

func getenv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

// Load reads configuration from environment variables with local defaults.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "5000"),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBUser:      getenv("DB_USER", "root"),
		DBPass:      getenv("DB_PASS", ""),
		DBName:      getenv("DB_NAME", "restaurant-db"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:   getenv("JWT_SECRET", "secret"),
		OrderTopic:  getenv("ORDER_TOPIC", "order-topic"),
		ConsumerGrp: getenv("CONSUMER_GROUP", "loyalty-service-group"),
	}
}

// DSN builds the mysql driver connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
