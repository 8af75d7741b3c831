package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	MongoURL   string
	MongoDB    string
	MongoConns uint64

	// RedisURL is optional. When empty, OTP pending sessions are held in
	// process memory instead of Redis.
	RedisURL string

	JWTSecret     string
	TokenExpiry   time.Duration
	OTPSessionTTL time.Duration

	// Single configured admin identity. AdminPasswordHash, when set, takes
	// precedence over AdminPassword and is compared with bcrypt.
	AdminUser         string
	AdminPassword     string
	AdminPasswordHash string
	BcryptCost        int

	// Twilio Verify credentials. The OTP branch of login is active only
	// when all four values are present.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioVerifySID  string
	AdminPhone       string

	MaxUploadBytes int64
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "pretty"),

		MongoURL:   getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:    getEnv("DB_NAME", "result_portal"),
		MongoConns: uint64(getEnvInt("MAX_MONGO_CONNS", 50)),

		RedisURL: getEnv("REDIS_URL", ""),

		JWTSecret:     getEnv("JWT_SECRET", "change-this-to-a-secure-random-string"),
		TokenExpiry:   time.Duration(getEnvInt("TOKEN_EXPIRY_MINUTES", 60)) * time.Minute,
		OTPSessionTTL: time.Duration(getEnvInt("OTP_SESSION_TTL_MINUTES", 10)) * time.Minute,

		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASS", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioVerifySID:  getEnv("TWILIO_VERIFY_SID", ""),
		AdminPhone:       getEnv("ADMIN_PHONE", ""),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 10)) * 1024 * 1024,
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// OTPEnabled reports whether one-time-code delivery is fully configured.
// Any missing Twilio value disables the OTP branch of login.
func (c *Config) OTPEnabled() bool {
	return c.TwilioAccountSID != "" &&
		c.TwilioAuthToken != "" &&
		c.TwilioVerifySID != "" &&
		c.AdminPhone != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
