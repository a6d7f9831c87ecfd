package models

import "time"

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	APIKey     APIKeyConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
	LiqPay     LiqPayConfig
	Storefront StorefrontConfig
	Payments   PaymentsConfig
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
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
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
	Issuer     string
	Expiration int // minutes
}

// APIKeyConfig holds API keys accepted on internal routes
type APIKeyConfig struct {
	Support string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LiqPayConfig contains LiqPay merchant credentials and endpoints
type LiqPayConfig struct {
	PublicKey   string
	PrivateKey  string
	Version     int
	CheckoutURL string
	Language    string
	PayTypes    string
	Sandbox     bool
}

// Configured reports whether both merchant keys are present
func (c LiqPayConfig) Configured() bool {
	return c.PublicKey != "" && c.PrivateKey != ""
}

// StorefrontConfig contains public URLs used to build redirect targets
type StorefrontConfig struct {
	SiteURL  string
	APIURL   string
	Currency string
}

// PaymentsConfig contains order reconciliation settings
type PaymentsConfig struct {
	OrderLockTTL      time.Duration
	OrderLockRetries  int
	OrderLockBaseWait time.Duration
}
