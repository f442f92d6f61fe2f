package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	Logger    LoggerConfig
	Providers ProvidersConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress     string
	LookupdAddress  string
	BookingTopic    string
	BookingChannel  string
	DispatchedTopic string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// APIKeyConfig contains the key used by internal service callers
type APIKeyConfig struct {
	BookingServiceKey string
}

// LoggerConfig contains structured logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ProviderConfig contains connection settings for one external provider
type ProviderConfig struct {
	BaseURL   string
	TimeoutMs int
}

// ProvidersConfig groups the three environmental data providers
type ProvidersConfig struct {
	Weather ProviderConfig
	Traffic ProviderConfig
	Route   ProviderConfig
	// CacheTTLMinutes bounds how long weather/traffic responses are reused
	CacheTTLMinutes int
}
