package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	RedisAddr     string
	RedisPort     string
	RedisPassword string

	// fal.ai queue API
	FalKey      string
	FalQueueURL string
	WebhookBase string

	// OSS upload signing
	OSSEndpoint        string
	OSSAccessKeyID     string
	OSSAccessKeySecret string
	OSSBucketName      string
	OSSRegion          string
	OSSRoleArn         string

	// Identity resolution
	JWTSecret      string
	DefaultOwnerID string

	// Optional credit gating on /ai/generate
	CreditGating bool

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
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
		Port:          getEnv("PORT", "8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		FalKey:      os.Getenv("FAL_KEY"),
		FalQueueURL: getEnv("FAL_QUEUE_URL", "https://queue.fal.run"),
		WebhookBase: os.Getenv("WEBHOOK_BASE_URL"),

		OSSEndpoint:        os.Getenv("OSS_ENDPOINT"),
		OSSAccessKeyID:     os.Getenv("OSS_ACCESS_KEY_ID"),
		OSSAccessKeySecret: os.Getenv("OSS_ACCESS_KEY_SECRET"),
		OSSBucketName:      os.Getenv("OSS_BUCKET_NAME"),
		OSSRegion:          os.Getenv("OSS_REGION"),
		OSSRoleArn:         os.Getenv("OSS_ROLE_ARN"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		DefaultOwnerID: getEnv("DEFAULT_OWNER_ID", "QWERTY"),

		CreditGating: getEnvAsBool("CREDIT_GATING", false),

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
