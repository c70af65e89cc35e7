package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "staySphereDB"
	DefaultMongoConnTimeout  = 10 * time.Second

	// Managed Atlas cluster used when only DB_NAME/DB_PASS credentials are given.
	atlasURIFormat = "mongodb+srv://%s:%s@cluster0.cnltwph.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0"

	DefaultPort        = "5000"
	DefaultLogLevel    = "info"
	DefaultEnvironment = EnvironmentDevelopment

	DefaultSessionTTL = 7 * 24 * time.Hour

	DefaultCORSOrigins = "http://localhost:5173,http://localhost:5174"

	DefaultKafkaTopic = "staysphere.booking-events"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
