package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	IoTec    IoTecConfig
	Poller   PollerConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
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

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// IoTecConfig contains the mobile-money provider configuration
type IoTecConfig struct {
	AuthURL        string // identity endpoint for the client-credentials grant
	BaseURL        string // collections API base URL
	ClientID       string
	ClientSecret   string
	WalletID       string
	Currency       string // default currency for collection requests
	RequestTimeout int    // outbound request timeout in seconds
}

// PollerConfig contains the client-side status poll loop configuration
type PollerConfig struct {
	Interval    int // seconds between status checks
	MaxAttempts int // attempt ceiling before the loop gives up
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
