package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Server   HTTPServer     `yaml:"server" env-prefix:"SERVER_"`
	Storage  StorageConfig  `yaml:"storage" env-prefix:"STORAGE_"`
	SQLite   SQLiteConfig   `yaml:"sqlite" env-prefix:"SQLITE_"`
	Postgres PostgresConfig `yaml:"postgres" env-prefix:"PG_"`
}

type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"8080"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" env-default:"60s"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"DRIVER" env-default:"sqlite"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"PATH" env-default:"teams.db"`
}

type PostgresConfig struct {
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"5432"`
	User     string `yaml:"user" env:"USER" env-default:"postgres"`
	Password string `yaml:"password" env:"PASSWORD" env-default:"postgres"`
	DbName   string `yaml:"dbname" env:"DBNAME" env-default:"teams_db"`
	SslMode  string `yaml:"sslmode" env:"SSLMODE" env-default:"disable"`
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DbName, c.SslMode)
}

// Load reads CONFIG_PATH when set, otherwise the environment (after a local .env file, if present).
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, cfg.validate()
	}

	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	return &cfg, cfg.validate()
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
}
