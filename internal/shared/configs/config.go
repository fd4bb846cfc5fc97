package configs

import "time"

const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"

	ArchiveDriverNone  = "none"
	ArchiveDriverFile  = "file"
	ArchiveDriverMinio = "minio"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Store       StoreConfig       `mapstructure:"store" validate:"required"`
	Archive     ArchiveConfig     `mapstructure:"archive" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StoreConfig selects and configures the event store engine.
type StoreConfig struct {
	Driver             string `mapstructure:"driver" validate:"required,oneof=memory sqlite postgres"`
	SQLitePath         string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	PostgresURL        string `mapstructure:"postgres_url" validate:"required_if=Driver postgres"`
	MaxConflictRetries int    `mapstructure:"max_conflict_retries" validate:"min=0,max=10"`
}

// ArchiveConfig selects where raw batches are kept.
type ArchiveConfig struct {
	Driver  string      `mapstructure:"driver" validate:"required,oneof=none file minio"`
	RootDir string      `mapstructure:"root_dir" validate:"required_if=Driver file"`
	Minio   MinioConfig `mapstructure:"minio"`
}

type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// IngestionConfig holds validation limits and the batch deadline.
type IngestionConfig struct {
	MaxDurationMs   int64         `mapstructure:"max_duration_ms" validate:"required,min=1"`
	FutureTolerance time.Duration `mapstructure:"future_tolerance" validate:"min=0"`
	BatchTimeout    time.Duration `mapstructure:"batch_timeout" validate:"min=0"`
	MaxBatchBytes   int64         `mapstructure:"max_batch_bytes" validate:"required,min=1"`
}

// AggregationConfig holds query defaults.
type AggregationConfig struct {
	HealthyThreshold float64 `mapstructure:"healthy_threshold" validate:"gt=0"`
	DefaultTopLimit  int     `mapstructure:"default_top_limit" validate:"required,min=1"`
}
