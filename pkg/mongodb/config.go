package mongodb

import "time"

// Config holds MongoDB connection settings.
type Config struct {
	URI             string        `env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	Database        string        `env:"MONGODB_DATABASE" env-default:"simple_contacts"`
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" env-default:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" env-default:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" env-default:"300s"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" env-default:"3"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" env-default:"5s"`
}
