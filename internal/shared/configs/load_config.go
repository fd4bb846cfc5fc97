package configs

import (
	"fmt"
	"strings"
	"time"

	"factory-monitoring/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "FACTORY"

// LoadConfig reads configuration from file and validates it.
// Any key can be overridden by an environment variable, e.g. FACTORY_STORE_DRIVER.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setDefaults also registers every overridable key, since AutomaticEnv only
// applies to keys viper already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", StoreDriverMemory)
	v.SetDefault("store.sqlite_path", "")
	v.SetDefault("store.postgres_url", "")
	v.SetDefault("store.max_conflict_retries", 3)
	v.SetDefault("archive.driver", ArchiveDriverNone)
	v.SetDefault("archive.root_dir", "")
	v.SetDefault("archive.minio.endpoint", "")
	v.SetDefault("archive.minio.bucket", "")
	v.SetDefault("archive.minio.access_key", "")
	v.SetDefault("archive.minio.secret_key", "")
	v.SetDefault("archive.minio.region", "")
	v.SetDefault("archive.minio.use_ssl", false)
	v.SetDefault("ingestion.max_duration_ms", int64(6*time.Hour/time.Millisecond))
	v.SetDefault("ingestion.future_tolerance", 15*time.Minute)
	v.SetDefault("ingestion.batch_timeout", 30*time.Second)
	v.SetDefault("ingestion.max_batch_bytes", 2*1024*1024)
	v.SetDefault("aggregation.healthy_threshold", 2.0)
	v.SetDefault("aggregation.default_top_limit", 10)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "gt":
		msg = fmt.Sprintf("%s (gt=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
