package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Pricing   PricingConfig
	Geocoding GeocodingConfig
	Rides     RidesConfig
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
	Driver    string
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

// NSQConfig contains NSQ daemon connection configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PricingConfig drives the fare and ETA estimation functions
type PricingConfig struct {
	BaseFare        float64 `json:"base_fare"`
	PerKmRate       float64 `json:"per_km_rate"`
	MinFare         float64 `json:"min_fare"`
	MaxFare         float64 `json:"max_fare"`
	Currency        string  `json:"currency"`
	PickupDelayMin  float64 `json:"pickup_delay_min"`    // fixed dispatch overhead in minutes
	AvgSpeedKmPerHr float64 `json:"avg_speed_km_per_hr"` // used for travel time estimates
}

// GeocodingConfig contains the geocoding provider configuration
type GeocodingConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // in seconds
}

// RidesConfig contains rides service specific configuration
type RidesConfig struct {
	MaxNotesLength      int `json:"max_notes_length"`
	SharedMaxOtherRides int `json:"shared_max_other_rides"`
	MatchLockTTL        int `json:"match_lock_ttl"` // seconds
}
