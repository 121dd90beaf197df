package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Comma-separated IPs or CIDRs whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB configuration. DB_USER/DB_PASS/DB_HOST take precedence over DATABASE_URL.
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DBUser           string `mapstructure:"DB_USER"`
	DBPass           string `mapstructure:"DB_PASS"`
	DBHost           string `mapstructure:"DB_HOST"`
	DatabaseName     string `mapstructure:"DATABASE_NAME"`
	DBTimeoutSeconds int    `mapstructure:"DB_TIMEOUT_SECONDS"`

	// Identity tokens.
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTLHours     int    `mapstructure:"TOKEN_TTL_HOURS"`

	// Redis configuration. An empty REDIS_ADDR disables the lock and the email queue.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Appointment emails.
	EmailSender     string `mapstructure:"EMAIL_SENDER"`
	EmailSenderName string `mapstructure:"EMAIL_SENDER_NAME"`
	EmailSenderKey  string `mapstructure:"EMAIL_SENDER_KEY"`
	EmailMaxRetry   int    `mapstructure:"EMAIL_MAX_RETRY"`
	ClinicAddress   string `mapstructure:"CLINIC_ADDRESS"`
}

// AppConfig is populated by LoadConfig.
var AppConfig Config

const devTokenSecret = "doctors-portal-dev-secret"

var defaults = map[string]any{
	"APP_PORT":             "5000",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"MAX_REQUESTS_PER_MIN": 100,
	"TRUSTED_PROXIES":      "",
	"DATABASE_URL":         "mongodb://localhost:27017",
	"DB_USER":              "",
	"DB_PASS":              "",
	"DB_HOST":              "cluster0.crxfa.mongodb.net",
	"DATABASE_NAME":        "doctors_portal",
	"DB_TIMEOUT_SECONDS":   5,
	"ACCESS_TOKEN_SECRET":  "",
	"TOKEN_TTL_HOURS":      24,
	"REDIS_ADDR":           "",
	"REDIS_PASSWORD":       "",
	"REDIS_LOCK_DB":        0,
	"REDIS_QUEUE_DB":       1,
	"EMAIL_SENDER":         "",
	"EMAIL_SENDER_NAME":    "Doctors Portal",
	"EMAIL_SENDER_KEY":     "",
	"EMAIL_MAX_RETRY":      3,
	"CLINIC_ADDRESS":       "amdorkilla bandorbon, Bangladesh",
}

// LoadConfig reads .env, config.yaml and the environment into AppConfig.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load unmarshals v, with defaults and the environment applied, into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.AccessTokenSecret == "" {
		if c.IsProduction() {
			return errors.New("ACCESS_TOKEN_SECRET must be set in production")
		}
		log.Println("ACCESS_TOKEN_SECRET not set, using the development secret")
		c.AccessTokenSecret = devTokenSecret
	}
	if c.TokenTTLHours <= 0 {
		c.TokenTTLHours = 24
	}
	if c.DBTimeoutSeconds <= 0 {
		c.DBTimeoutSeconds = 5
	}
	if c.MaxRequestsPerMin <= 0 {
		c.MaxRequestsPerMin = 100
	}
	if c.EmailMaxRetry < 0 {
		c.EmailMaxRetry = 0
	}
	return nil
}

// MongoURI returns the connection string. Credentials, when given, are composed into an
// Atlas SRV URI; otherwise DATABASE_URL is used as is.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func (c Config) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutSeconds) * time.Second
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// TrustedProxyList splits TRUSTED_PROXIES. A nil result disables forwarded headers.
func (c Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return AppConfig.IsProduction()
}
