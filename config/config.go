package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string

	// SMTP delivery. All optional: when sender/password are missing the
	// mailer skips sends instead of failing the request.
	SMTPServer    string
	SMTPPort      int
	EmailSender   string
	EmailPassword string
	EmailReceiver string

	// Generated report artifacts live in ReportDir until the janitor
	// removes anything older than ReportTTL.
	ReportDir string
	ReportTTL time.Duration
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:         get("PORT", "8080"),
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-2.5-pro"),

		SMTPServer:    get("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:      getInt("SMTP_PORT", 587),
		EmailSender:   get("EMAIL_SENDER", ""),
		EmailPassword: get("EMAIL_PASSWORD", ""),
		EmailReceiver: get("EMAIL_RECEIVER", ""),

		ReportDir: get("REPORT_DIR", ""),
		ReportTTL: time.Duration(getInt("REPORT_TTL_MINUTES", 60)) * time.Minute,
	}
	return cfg
}

func (c Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

func (c Config) EmailConfigured() bool {
	return c.EmailSender != "" && c.EmailPassword != ""
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
