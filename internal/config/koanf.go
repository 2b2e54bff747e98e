package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

var sliceConfigPaths = []string{
	"cors.allowed_origins",
}

var envMappings = map[string]string{
	"app_env":      "app.env",
	"port":         "app.port",
	"public_dir":   "app.public_dir",
	"read_timeout": "app.read_timeout",

	"db_url":         "database.url",
	"database_url":   "database.url",
	"db_host":        "database.host",
	"db_user":        "database.user",
	"db_password":    "database.password",
	"db_name":        "database.name",
	"db_port":        "database.port",
	"db_sslmode":     "database.sslmode",
	"db_max_retries": "database.max_retries",

	"redis_addr": "redis.addr",

	"kafka_broker":         "kafka.broker",
	"kafka_group_id":       "kafka.group_id",
	"outbox_poll_interval": "kafka.poll_interval",

	"jwt_secret":     "auth.jwt_secret",
	"jwt_ttl":        "auth.token_ttl",
	"auth_enforce":   "auth.enforce",
	"admin_username": "auth.admin_username",
	"admin_password": "auth.admin_password",

	"storage_backend":         "storage.backend",
	"storage_local_dir":       "storage.local_dir",
	"storage_public_base_url": "storage.public_base_url",
	"cloudinary_cloud_name":   "storage.cloudinary.cloud_name",
	"cloudinary_api_key":      "storage.cloudinary.api_key",
	"cloudinary_api_secret":   "storage.cloudinary.api_secret",
	"cloudinary_folder":       "storage.cloudinary.folder",

	"cors_allowed_origins": "cors.allowed_origins",
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Env:          "development",
			Port:         "3000",
			PublicDir:    "public",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:       "localhost",
			User:       "postgres",
			Name:       "employees",
			Port:       "5432",
			SSLMode:    "disable",
			MaxRetries: 5,
		},
		Kafka: KafkaConfig{
			GroupID:      "go-emprecords-leave-summary",
			PollInterval: 3 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL:      24 * time.Hour,
			Enforce:       false,
			AdminUsername: "aayushi",
		},
		Storage: StorageConfig{
			Backend:       StorageLocal,
			LocalDir:      "uploads",
			PublicBaseURL: "/uploads",
			Cloudinary: CloudinaryConfig{
				Folder: "employees",
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads .env (if present) and layers defaults, an optional YAML file and
// the environment, in that order of increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc maps flat environment names onto nested koanf paths.
// Unknown variables map to "" and are dropped.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}

		parts := strings.Split(raw, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
