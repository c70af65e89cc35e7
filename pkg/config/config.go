package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/client"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
)

type Config struct {
	MongoURI          string        `validate:"required,startswith=mongodb"`
	MongoDatabaseName string        `validate:"required"`
	MongoConnTimeout  time.Duration `validate:"gt=0"`

	Port        string `validate:"required"`
	Environment string `validate:"oneof=production development"`

	AccessTokenSecret string        `validate:"required"`
	SessionTTL        time.Duration `validate:"gt=0"`

	CORSOrigins []string `validate:"min=1,dive,url"`

	// Empty broker list disables booking event publishing.
	KafkaBrokers []string `validate:"-"`
	KafkaTopic   string   `validate:"required"`

	MaxRequestSize int `validate:"gt=0"`

	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`

	Log    *logger.Logger `validate:"-"`
	Client *client.Client `validate:"-"`
}

func Load(serviceName string) *Config {
	// Optional .env file, real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:          resolveMongoURI(),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port:        getEnvStr(EnvPort, DefaultPort),
		Environment: getEnvStr(EnvEnvironment, DefaultEnvironment),

		AccessTokenSecret: getEnvStr(EnvAccessTokenSecret, ""),
		SessionTTL:        getEnvDuration(EnvSessionTTL, DefaultSessionTTL),

		CORSOrigins: splitAndTrim(getEnvStr(EnvCORSOrigins, DefaultCORSOrigins)),

		KafkaBrokers: splitAndTrim(getEnvStr(EnvKafkaBrokers, "")),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) IsProduction() bool {
	return cfg.Environment == EnvironmentProduction
}

func (cfg *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		var messages []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, verr := range verrs {
				messages = append(messages, fmt.Sprintf("%s failed on '%s'", verr.Field(), verr.Tag()))
			}
			return fmt.Errorf("configuration validation failed: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("configuration validation failed: Port must be between 1 and 65535, got: %s", cfg.Port)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"environment", cfg.Environment,
		"token_secret_set", cfg.AccessTokenSecret != "",
		"session_ttl", cfg.SessionTTL,
		"cors_origins", cfg.CORSOrigins,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_topic", cfg.KafkaTopic,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}

// resolveMongoURI prefers an explicit MONGO_URI; otherwise DB_NAME/DB_PASS
// credentials select the managed Atlas cluster.
func resolveMongoURI() string {
	if uri := os.Getenv(EnvMongoURI); uri != "" {
		return uri
	}

	name := os.Getenv(EnvDBName)
	pass := os.Getenv(EnvDBPass)
	if name != "" && pass != "" {
		return fmt.Sprintf(atlasURIFormat, name, pass)
	}

	return DefaultMongoURI
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
