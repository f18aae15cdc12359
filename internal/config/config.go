package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Jack28cas/zeroshade/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// StarknetConfig holds Starknet RPC configuration
type StarknetConfig struct {
	RPCURL               string        `mapstructure:"rpc_url"`
	ChainID              domain.Chain  `mapstructure:"chain_id"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	MaxRetries           uint64        `mapstructure:"max_retries"`
	BlockHeadTTL         time.Duration `mapstructure:"block_head_ttl"`
	BlockHeadStaleWindow time.Duration `mapstructure:"block_head_stale_window"`
}

// ContractsConfig holds the deployed contract addresses
type ContractsConfig struct {
	TokenFactory string `mapstructure:"token_factory"`
	Launchpad    string `mapstructure:"launchpad"`
	// Settlement token of the launchpad. Reserved: no backend component reads it yet
	PaymentToken string `mapstructure:"payment_token"`
}

// ReconcileConfig holds the launchpad creator reconciliation settings
type ReconcileConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	RatePerSecond float64 `mapstructure:"rate_per_second"` // 0 = unlimited
	MaxPerCycle   int     `mapstructure:"max_per_cycle"`   // 0 = every stored token
}

// MonitorConfig holds token monitor configuration
type MonitorConfig struct {
	Enabled          bool            `mapstructure:"enabled"`
	Interval         time.Duration   `mapstructure:"interval"`
	EventBlockWindow uint64          `mapstructure:"event_block_window"`
	EventChunkSize   int             `mapstructure:"event_chunk_size"`
	WorkerPoolSize   int             `mapstructure:"worker_pool_size"`
	Reconcile        ReconcileConfig `mapstructure:"reconcile"`
}

// DeployerConfig holds the token deployment script configuration
type DeployerConfig struct {
	ScriptPath       string        `mapstructure:"script_path"`
	WorkDir          string        `mapstructure:"work_dir"`
	Account          string        `mapstructure:"account"`
	Keystore         string        `mapstructure:"keystore"`
	KeystorePassword string        `mapstructure:"keystore_password"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Starknet   StarknetConfig  `mapstructure:"starknet"`
	Contracts  ContractsConfig `mapstructure:"contracts"`
	Monitor    MonitorConfig   `mapstructure:"monitor"`
	Deployer   DeployerConfig  `mapstructure:"deployer"`
	Auth       AuthConfig      `mapstructure:"auth"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 360) // deployments may take minutes
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("starknet.rpc_url", domain.DEFAULT_STARKNET_RPC_URL)
	v.SetDefault("starknet.chain_id", string(domain.ChainStarknetSepolia))
	v.SetDefault("starknet.request_timeout", "30s")
	v.SetDefault("starknet.max_retries", 3)
	v.SetDefault("starknet.block_head_ttl", "10s")
	v.SetDefault("starknet.block_head_stale_window", "2m")
	v.SetDefault("contracts.token_factory", domain.DEFAULT_TOKEN_FACTORY_ADDRESS)
	v.SetDefault("contracts.launchpad", domain.DEFAULT_LAUNCHPAD_ADDRESS)
	v.SetDefault("contracts.payment_token", domain.DEFAULT_PAYMENT_TOKEN_ADDRESS)
	v.SetDefault("monitor.enabled", true)
	v.SetDefault("monitor.interval", "30s")
	v.SetDefault("monitor.event_block_window", domain.DEFAULT_LAUNCHPAD_BLOCK_WINDOW)
	v.SetDefault("monitor.event_chunk_size", domain.DEFAULT_EVENT_CHUNK_SIZE)
	v.SetDefault("monitor.worker_pool_size", 1)
	v.SetDefault("monitor.reconcile.enabled", true)
	v.SetDefault("monitor.reconcile.rate_per_second", 5)
	v.SetDefault("monitor.reconcile.max_per_cycle", 0)
	v.SetDefault("deployer.script_path", "scripts/deploy_token.sh")
	v.SetDefault("deployer.work_dir", ".")
	v.SetDefault("deployer.timeout", "5m")

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !domain.IsValidChain(config.Starknet.ChainID) {
		return nil, fmt.Errorf("unsupported starknet.chain_id: %s", config.Starknet.ChainID)
	}
	if config.Monitor.Interval <= 0 {
		return nil, errors.New("monitor.interval must be positive")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ZEROSHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// legacyEnvAliases maps config keys to the unprefixed variables used by the
// deployment scripts, checked after the ZEROSHADE_ variable
var legacyEnvAliases = map[string]string{
	"server.port":                "PORT",
	"starknet.rpc_url":           "RPC_URL",
	"deployer.account":           "ACCOUNT",
	"deployer.keystore":          "KEYSTORE",
	"deployer.keystore_password": "KEYSTORE_PASSWORD",
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Starknet
		"starknet.rpc_url",
		"starknet.chain_id",
		"starknet.request_timeout",
		"starknet.max_retries",
		"starknet.block_head_ttl",
		"starknet.block_head_stale_window",
		// Contracts
		"contracts.token_factory",
		"contracts.launchpad",
		"contracts.payment_token",
		// Monitor
		"monitor.enabled",
		"monitor.interval",
		"monitor.event_block_window",
		"monitor.event_chunk_size",
		"monitor.worker_pool_size",
		"monitor.reconcile.enabled",
		"monitor.reconcile.rate_per_second",
		"monitor.reconcile.max_per_cycle",
		// Deployer
		"deployer.script_path",
		"deployer.work_dir",
		"deployer.account",
		"deployer.keystore",
		"deployer.keystore_password",
		"deployer.timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		if alias, ok := legacyEnvAliases[key]; ok {
			envKey := "ZEROSHADE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
			_ = v.BindEnv(key, envKey, alias)
			continue
		}
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// AuthEnabled reports whether any authentication method is configured
func (c *AuthConfig) AuthEnabled() bool {
	return c.JWTPublicKey != "" || len(c.APIKeys) > 0
}
