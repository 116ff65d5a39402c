// Package config handles configuration for the server: defaults, an optional
// JSON file, environment variables (optionally seeded from a .env file) and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds runtime settings for the animal catalog server.
//
// Fields:
//   - DBDriver: "postgres" (production) or "sqlite" (local development).
//   - DBHost / DBPort / DBUser / DBPassword / DBName / DBSSLMode: PostgreSQL connection.
//   - SQLitePath: database file used when DBDriver is "sqlite".
//   - ListenPort: HTTP port of the REST API.
//   - GRPCHealthAddr: bind address of the gRPC health service; empty disables it.
//   - TokenSecret: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidity: lifetime of issued access tokens.
//   - BcryptCost: work factor for password hashing.
//   - CORSAllowedOrigins: origins allowed to call the API from a browser.
//   - LogLevel / LogFormat: slog level name and "json" or "text".
//   - S3*: object storage used for animal image uploads; empty bucket disables uploads.
type Config struct {
	DBDriver   string `env:"DB_DRIVER"`
	DBHost     string `env:"DB_HOST"`
	DBPort     int    `env:"DB_PORT"`
	DBUser     string `env:"DB_USERNAME"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_DATABASE"`
	DBSSLMode  string `env:"DB_SSLMODE"`
	SQLitePath string `env:"SQLITE_PATH"`

	ListenPort     int    `env:"PORT"`
	GRPCHealthAddr string `env:"GRPC_HEALTH_ADDR"`

	TokenSecret   string        `env:"JWT_SECRET"`
	TokenValidity time.Duration `env:"JWT_TTL"`
	BcryptCost    int           `env:"BCRYPT_COST"`

	CORSAllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	S3RootUser      string `env:"S3_ROOT_USER"`
	S3RootPassword  string `env:"S3_ROOT_PASSWORD"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3Region        string `env:"S3_REGION"`
	S3BaseEndpoint  string `env:"S3_BASE_ENDPOINT"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret and database credentials are insecure and must be
// overridden in production.
func (c *Config) LoadDefaults() {
	c.DBDriver = DriverPostgres
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "animalcatalog"
	c.DBSSLMode = "disable"
	c.SQLitePath = "animalcatalog.db"
	c.ListenPort = 3000
	c.GRPCHealthAddr = ":50051"
	c.TokenSecret = "secretKey"
	c.TokenValidity = 60 * time.Minute
	c.BcryptCost = 10
	c.CORSAllowedOrigins = []string{"http://localhost:5173"}
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config from os.Args and the process environment.
// It panics on unreadable or malformed configuration sources.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// ListenAddr is the HTTP bind address.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.ListenPort)
}

// DatabaseDSN returns the data source name for the configured driver.
func (c *Config) DatabaseDSN() string {
	if c.DBDriver == DriverSQLite {
		return "file:" + c.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}

// SQLDriverName is the database/sql driver registered for DBDriver.
func (c *Config) SQLDriverName() string {
	if c.DBDriver == DriverSQLite {
		return "sqlite"
	}
	return "pgx"
}

// ImageUploadsEnabled reports whether object storage is configured.
func (c *Config) ImageUploadsEnabled() bool {
	return c.S3Bucket != ""
}

// Validate reports every problem that would keep the server from starting.
func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("database host and name are required"))
		}
		if c.DBPort <= 0 || c.DBPort > 65535 {
			errs = append(errs, fmt.Errorf("invalid database port %d", c.DBPort))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite path is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.DBDriver))
	}

	if c.ListenPort <= 0 || c.ListenPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid listen port %d", c.ListenPort))
	}
	if c.TokenSecret == "" {
		errs = append(errs, errors.New("token secret is required"))
	}
	if c.TokenValidity <= 0 {
		errs = append(errs, errors.New("token validity must be positive"))
	}

	return errors.Join(errs...)
}
