package config

import (
	"fmt"
	"time"
)

const (
	StorageLocal      = "local"
	StorageCloudinary = "cloudinary"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Kafka    KafkaConfig    `koanf:"kafka"`
	Auth     AuthConfig     `koanf:"auth"`
	Storage  StorageConfig  `koanf:"storage"`
	CORS     CORSConfig     `koanf:"cors"`
}

type AppConfig struct {
	Env          string        `koanf:"env"`
	Port         string        `koanf:"port"`
	PublicDir    string        `koanf:"public_dir"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type DatabaseConfig struct {
	URL        string `koanf:"url"`
	Host       string `koanf:"host"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"`
	Port       string `koanf:"port"`
	SSLMode    string `koanf:"sslmode"`
	MaxRetries int    `koanf:"max_retries"`
}

// DSN prefers the full connection URL and falls back to the discrete fields.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr string `koanf:"addr"`
}

type KafkaConfig struct {
	Broker       string        `koanf:"broker"`
	GroupID      string        `koanf:"group_id"`
	PollInterval time.Duration `koanf:"poll_interval"`
}

type AuthConfig struct {
	JWTSecret     string        `koanf:"jwt_secret"`
	TokenTTL      time.Duration `koanf:"token_ttl"`
	Enforce       bool          `koanf:"enforce"`
	AdminUsername string        `koanf:"admin_username"`
	AdminPassword string        `koanf:"admin_password"`
}

type StorageConfig struct {
	Backend       string           `koanf:"backend"`
	LocalDir      string           `koanf:"local_dir"`
	PublicBaseURL string           `koanf:"public_base_url"`
	Cloudinary    CloudinaryConfig `koanf:"cloudinary"`
}

type CloudinaryConfig struct {
	CloudName string `koanf:"cloud_name"`
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
	Folder    string `koanf:"folder"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Validate checks cross-field constraints that defaults cannot express.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("app.port is required")
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.Name == "") {
		return fmt.Errorf("database url or host/name is required")
	}

	switch c.Storage.Backend {
	case StorageLocal:
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("storage.local_dir is required for the local backend")
		}
	case StorageCloudinary:
		cl := c.Storage.Cloudinary
		if cl.CloudName == "" || cl.APIKey == "" || cl.APISecret == "" {
			return fmt.Errorf("cloudinary backend requires cloud_name, api_key and api_secret")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Auth.Enforce && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required when auth.enforce is true")
	}
	return nil
}
