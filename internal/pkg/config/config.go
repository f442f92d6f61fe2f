package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/movesure/dispatch/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "dispatch-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnv("NSQ_NSQD_ADDRESS", "localhost:4150")
	configs.NSQ.LookupdAddress = GetEnv("NSQ_LOOKUPD_ADDRESS", "")
	configs.NSQ.BookingTopic = GetEnv("NSQ_BOOKING_TOPIC", "booking.completed")
	configs.NSQ.BookingChannel = GetEnv("NSQ_BOOKING_CHANNEL", "dispatch-service")
	configs.NSQ.DispatchedTopic = GetEnv("NSQ_DISPATCHED_TOPIC", "notification.created")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// API key config
	configs.APIKey.BookingServiceKey = GetEnv("BOOKING_SERVICE_API_KEY", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/dispatch.log")

	// Provider config
	configs.Providers.Weather.BaseURL = GetEnv("WEATHER_PROVIDER_URL", "")
	configs.Providers.Weather.TimeoutMs = GetEnvAsInt("WEATHER_PROVIDER_TIMEOUT_MS", 2500)
	configs.Providers.Traffic.BaseURL = GetEnv("TRAFFIC_PROVIDER_URL", "")
	configs.Providers.Traffic.TimeoutMs = GetEnvAsInt("TRAFFIC_PROVIDER_TIMEOUT_MS", 2500)
	configs.Providers.Route.BaseURL = GetEnv("ROUTE_PROVIDER_URL", "")
	configs.Providers.Route.TimeoutMs = GetEnvAsInt("ROUTE_PROVIDER_TIMEOUT_MS", 3000)
	configs.Providers.CacheTTLMinutes = GetEnvAsInt("PROVIDER_CACHE_TTL_MINUTES", 10)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
