package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

type AuthConfig struct {
	SecretKey            string
	Algorithm            string
	AccessTTLMinutes     string
	RefreshTTLMinutes    string
	RememberMeTTLMinutes string
	CookieSecure         string
	CookieSameSite       string
	CookieDomain         string
	AccessCookieMaxAge   string
	RefreshCookieMaxAge  string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type RedisConfig struct {
	Addr         string
	ClusterAddrs string
	Password     string
	DB           string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: getenv("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Auth: AuthConfig{
			SecretKey:            os.Getenv("SECRET_KEY"),
			Algorithm:            getenv("JWT_ALGORITHM", "HS256"),
			AccessTTLMinutes:     getenv("ACCESS_TOKEN_EXPIRES_MINUTES", "30"),
			RefreshTTLMinutes:    getenv("REFRESH_TOKEN_EXPIRES_MINUTES", "10080"),
			RememberMeTTLMinutes: getenv("REMEMBER_ME_REFRESH_TOKEN_EXPIRES_MINUTES", "43200"),
			CookieSecure:         getenv("SECURE_COOKIE", "false"),
			CookieSameSite:       getenv("COOKIE_SAMESITE", "lax"),
			CookieDomain:         os.Getenv("COOKIE_DOMAIN"),
			AccessCookieMaxAge:   getenv("ACCESS_COOKIE_MAX_AGE", "900"),
			RefreshCookieMaxAge:  getenv("REFRESH_COOKIE_MAX_AGE", "604800"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:         getenv("REDIS_ADDR", "localhost:6379"),
			ClusterAddrs: os.Getenv("REDIS_CLUSTER_ADDRS"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           getenv("REDIS_DB", "0"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
