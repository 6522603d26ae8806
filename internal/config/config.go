package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	DBMaxConns  int
	DBMinConns  int

	JWTIssuer           string
	JWTAccessSecret     string
	JWTRefreshSecret    string
	AccessTokenTTLMin   int
	RefreshTokenTTLDays int
	ResetTokenTTLMin    int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	AppBaseURL string
	ResetPath  string

	CORSOrigins []string

	UploadDir     string
	UploadBaseURL string

	CurrencyCode   string
	CurrencySymbol string
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		DatabaseURL: get("DATABASE_URL", ""),
		DBMaxConns:  getInt("DB_MAX_CONNS", 10),
		DBMinConns:  getInt("DB_MIN_CONNS", 2),

		JWTIssuer:           get("JWT_ISSUER", "thybackend"),
		JWTAccessSecret:     get("JWT_ACCESS_SECRET", ""),
		JWTRefreshSecret:    get("JWT_REFRESH_SECRET", ""),
		AccessTokenTTLMin:   getInt("ACCESS_TOKEN_TTL_MIN", 60),
		RefreshTokenTTLDays: getInt("REFRESH_TOKEN_TTL_DAYS", 30),
		ResetTokenTTLMin:    getInt("RESET_TOKEN_TTL_MIN", 30),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		SMTPFrom: get("SMTP_FROM", ""),

		AppBaseURL: get("APP_BASE_URL", "http://localhost:5173"),
		ResetPath:  get("RESET_PATH", "/reset-password"),

		CORSOrigins: getList("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		UploadDir:     get("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: get("UPLOAD_BASE_URL", "/uploads"),

		CurrencyCode:   get("CURRENCY_CODE", "INR"),
		CurrencySymbol: get("CURRENCY_SYMBOL", "Rs."),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getList(k, def string) []string {
	raw := get(k, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
