package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Dispatch DispatchConfig
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
	Host      string
	Port      int
	Password  string
	DB        int
	PoolSize  int
	OpTimeout int // per-operation timeout in milliseconds
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT validation configuration for socket auth
type JWTConfig struct {
	Secret string
	Issuer string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DispatchConfig contains dispatch core configuration.
//
// Radius overrides per category are first-class here: INTERCITY_TAXI gets a
// widened search radius because long-distance drivers are sparse.
type DispatchConfig struct {
	SearchRadiusM       float64 // default query radius in meters
	IntercityRadiusM    float64 // widened radius for INTERCITY_TAXI
	CandidateLimit      int     // max candidates returned per query
	ClaimTTLSec         int     // claim token expiry
	OrderTimeoutSec     int     // pending order expiry threshold
	OrderSweepSec       int     // pending-order sweep interval
	SocketSweepSec      int     // dead-socket sweep interval
	StaleSweepSec       int     // stale-position sweep interval
	StalePositionSec    int     // position age before forced eviction
	SocketBindingTTLSec int     // socket binding key expiry
}

// RadiusFor returns the effective search radius in meters for a category.
func (c DispatchConfig) RadiusFor(category string) float64 {
	if category == OrderTypeIntercityTaxi {
		return c.IntercityRadiusM
	}
	return c.SearchRadiusM
}
