package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"paystack-client/pkg/paystack"

	"github.com/joho/godotenv"
)

type Config struct {
	SecretKey     string
	PublicKey     string
	PaymentURL    string
	MerchantEmail string
	HTTPTimeout   time.Duration

	ServerAddr  string
	CORSOrigins []string

	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	RedisPort      string
	RedisPassword  string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// PaystackConfig returns the client credentials.
func (c *Config) PaystackConfig() paystack.Config {
	return paystack.Config{SecretKey: c.SecretKey, BaseURL: c.PaymentURL}
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		SecretKey:     os.Getenv("PAYSTACK_SECRET_KEY"),
		PublicKey:     os.Getenv("PAYSTACK_PUBLIC_KEY"),
		PaymentURL:    getEnv("PAYSTACK_PAYMENT_URL", paystack.DefaultBaseURL),
		MerchantEmail: os.Getenv("MERCHANT_EMAIL"),
		HTTPTimeout:   time.Duration(getEnvAsInt("PAYSTACK_HTTP_TIMEOUT", 30)) * time.Second,

		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:8080"}),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:     time.Duration(getEnvAsInt("SESSION_TTL", 30)) * time.Minute,
		RedisAddr:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
