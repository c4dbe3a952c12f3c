package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string `mapstructure:"env"`            // current application environment (local, dev, prod etc)
	TelegramToken string `mapstructure:"-"`              // Telegram API token loaded from environment
	CatalogPath   string `mapstructure:"catalog_path"`   // path to the constitution catalog JSON
	QuestionsPath string `mapstructure:"questions_path"` // path to the quiz question bank JSON
	DB            DB     `mapstructure:"database"`       // database configuration section
}

// DB contains database-related configuration parameters. An empty URL means
// no database: learning state is then kept in memory only.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("catalog_path", "assets/data/constitution.json")
	v.SetDefault("questions_path", "assets/data/questions.json")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramToken = v.GetString("telegram_api_token")
	if cfg.TelegramToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	// Optional: without it the bot runs on the in-memory store.
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
