package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	GoogleClientID string

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration
	RefreshTokenDur   time.Duration

	AIEndpointURL string
	AIAPIKey      string
	AITimeout     time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	ReminderInterval time.Duration // how often the reminder dispatcher wakes up

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each persisted entity.
type DynamoTables struct {
	Users       string
	Sessions    string
	Devices     string
	Preferences string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "ap-south-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:       getEnv("DYNAMO_TABLE_USERS", "users"),
			Sessions:    getEnv("DYNAMO_TABLE_SESSIONS", "sessions"),
			Devices:     getEnv("DYNAMO_TABLE_DEVICES", "devices"),
			Preferences: getEnv("DYNAMO_TABLE_PREFERENCES", "preferences"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "legalchain-documents"),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 7)) * 24 * time.Hour,
		RefreshTokenDur:   time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRY_DAYS", 30)) * 24 * time.Hour,

		AIEndpointURL: getEnv("AI_ENDPOINT_URL", ""),
		AIAPIKey:      getEnv("AI_API_KEY", ""),
		AITimeout:     time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@legalchain.example"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "ap-south-1"),

		ReminderInterval: time.Duration(getEnvInt("REMINDER_INTERVAL_SECONDS", 60)) * time.Second,

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
