package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "shipra"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	OTP          OTPConfig
	Cloudinary   CloudinaryConfig
	BulkUpload   BulkUploadConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"SHIPRA_APP_ENV" default:"development"`
	Port         string   `envconfig:"SHIPRA_APP_PORT" default:"5001"`
	LogLevel     string   `envconfig:"SHIPRA_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"SHIPRA_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"SHIPRA_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SHIPRA_DB_DSN"`

	Host     string `envconfig:"SHIPRA_DB_HOST"`
	Port     int    `envconfig:"SHIPRA_DB_PORT" default:"5432"`
	User     string `envconfig:"SHIPRA_DB_USER"`
	Password string `envconfig:"SHIPRA_DB_PASSWORD"`
	Name     string `envconfig:"SHIPRA_DB_NAME"`
	SSLMode  string `envconfig:"SHIPRA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHIPRA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHIPRA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHIPRA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHIPRA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Host == "" || db.User == "" || db.Name == "" {
		return fmt.Errorf("database config requires SHIPRA_DB_DSN or host/user/name")
	}
	db.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"SHIPRA_REDIS_URL"`
	Address      string        `envconfig:"SHIPRA_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"SHIPRA_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHIPRA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHIPRA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHIPRA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHIPRA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHIPRA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHIPRA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHIPRA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHIPRA_JWT_ISSUER" default:"shipra-seller-api"`
	ExpirationMinutes int    `envconfig:"SHIPRA_JWT_EXPIRATION_MINUTES" default:"43200"`
}

// Expiration returns the access token lifetime. The default is 30 days.
func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type OTPConfig struct {
	// DevCode is the stand-in value accepted while no SMS provider is wired.
	DevCode string        `envconfig:"SHIPRA_OTP_DEV_CODE" default:"123456"`
	TTL     time.Duration `envconfig:"SHIPRA_OTP_TTL" default:"5m"`
}

type CloudinaryConfig struct {
	CloudName string `envconfig:"SHIPRA_CLOUDINARY_CLOUD_NAME"`
	APIKey    string `envconfig:"SHIPRA_CLOUDINARY_API_KEY"`
	APISecret string `envconfig:"SHIPRA_CLOUDINARY_API_SECRET"`
	Folder    string `envconfig:"SHIPRA_CLOUDINARY_FOLDER" default:"shipra_products"`
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type BulkUploadConfig struct {
	TempDir     string `envconfig:"SHIPRA_BULK_TEMP_DIR" default:"temp/csv"`
	MaxUploadMB int    `envconfig:"SHIPRA_MAX_UPLOAD_MB" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHIPRA_AUTO_MIGRATE" default:"false"`
}
