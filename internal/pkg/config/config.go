package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// InitConfig loads configuration from an env file (local only) and the
// process environment.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ridelink")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
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
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "ridelink")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Pricing config
	configs.Pricing.BaseFare = GetEnvAsFloat("PRICING_BASE_FARE", 2.0)
	configs.Pricing.PerKmRate = GetEnvAsFloat("PRICING_PER_KM_RATE", 1.2)
	configs.Pricing.MinFare = GetEnvAsFloat("PRICING_MIN_FARE", 2.0)
	configs.Pricing.MaxFare = GetEnvAsFloat("PRICING_MAX_FARE", 500.0)
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "USD")
	configs.Pricing.PickupDelayMin = GetEnvAsFloat("PRICING_PICKUP_DELAY_MIN", 5.0)
	configs.Pricing.AvgSpeedKmPerHr = GetEnvAsFloat("PRICING_AVG_SPEED_KM_PER_HR", 30.0)

	// Geocoding config
	configs.Geocoding.BaseURL = GetEnv("GEOCODING_BASE_URL", "")
	configs.Geocoding.APIKey = GetEnv("GEOCODING_API_KEY", "")
	configs.Geocoding.Timeout = GetEnvAsInt("GEOCODING_TIMEOUT", 10)

	// Rides config
	configs.Rides.MaxNotesLength = GetEnvAsInt("RIDES_MAX_NOTES_LENGTH", 500)
	configs.Rides.SharedMaxOtherRides = GetEnvAsInt("RIDES_SHARED_MAX_OTHER_RIDES", 3)
	configs.Rides.MatchLockTTL = GetEnvAsInt("RIDES_MATCH_LOCK_TTL", 10)

	return configs
}

// GetEnv retrieves an environment variable with a fallback default
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float64
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
