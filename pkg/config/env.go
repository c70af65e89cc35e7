package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvDBName            = "DB_NAME"
	EnvDBPass            = "DB_PASS"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvEnvironment = "ENVIRONMENT"

	EnvAccessTokenSecret = "ACCESS_TOKEN_SECRET"
	EnvSessionTTL        = "SESSION_TTL"

	EnvCORSOrigins = "CORS_ORIGINS"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
