package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (pricing constants, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Auth     AuthConfig
	Credits  CreditsConfig
	Catalog  CatalogConfig
	Storage  StorageConfig
	ImageGen ImageGenConfig
	Printify PrintifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// SessionSecret is the app secret shared with the embedding platform; storefront
// session tokens are HS256 JWTs signed with it. MerchantSecret signs tokens this
// service mints for merchant logins.
type AuthConfig struct {
	SessionSecret         string        `envconfig:"SESSION_TOKEN_SECRET" required:"true"`
	MerchantSecret        string        `envconfig:"MERCHANT_JWT_SECRET" required:"true"`
	MerchantTokenDuration time.Duration `envconfig:"MERCHANT_TOKEN_DURATION" default:"24h"`
	CookieDomain          string        `envconfig:"AUTH_COOKIE_DOMAIN" default:""`
	CookieSecure          bool          `envconfig:"AUTH_COOKIE_SECURE" default:"true"`
	CookieSameSite        string        `envconfig:"AUTH_COOKIE_SAMESITE" default:"None"`
}

// The storefront UI advertises "$1 for 5 credits"; CentsPerCredit is the server
// constant behind that copy. FreeGenerationAllowance is the number of generations
// a customer gets before credits are debited.
type CreditsConfig struct {
	StartingBalance         int32 `envconfig:"STARTING_CREDITS" default:"5"`
	FreeGenerationAllowance int32 `envconfig:"FREE_GENERATION_ALLOWANCE" default:"3"`
	CentsPerCredit          int32 `envconfig:"CENTS_PER_CREDIT" default:"20"`
}

type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:"configs/catalog.yaml"`
}

type StorageConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:""`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:""`
	Bucket          string `envconfig:"DESIGN_BUCKET" required:"true"`
}

type ImageGenConfig struct {
	BaseURL string        `envconfig:"IMAGEGEN_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"IMAGEGEN_API_KEY" required:"true"`
	Timeout time.Duration `envconfig:"IMAGEGEN_TIMEOUT" default:"90s"`
}

type PrintifyConfig struct {
	BaseURL       string        `envconfig:"PRINTIFY_BASE_URL" default:"https://api.printify.com"`
	APIToken      string        `envconfig:"PRINTIFY_API_TOKEN" required:"true"`
	ShopID        string        `envconfig:"PRINTIFY_SHOP_ID" required:"true"`
	WebhookSecret string        `envconfig:"PRINTIFY_WEBHOOK_SECRET" required:"true"`
	Timeout       time.Duration `envconfig:"PRINTIFY_TIMEOUT" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Auth: AuthConfig{
			SessionSecret:         "test-session-secret",
			MerchantSecret:        "test-merchant-secret",
			MerchantTokenDuration: 24 * time.Hour,
			CookieSameSite:        "Lax",
		},
		Credits: CreditsConfig{
			StartingBalance:         5,
			FreeGenerationAllowance: 3,
			CentsPerCredit:          20,
		},
	}
}
