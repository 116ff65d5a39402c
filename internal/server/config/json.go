package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/animalcatalog/internal/flagx"
	"github.com/dmitrijs2005/animalcatalog/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from zero values so a partial file only overrides
// what it names. Durations accept "15m" or integer nanoseconds.
type JsonConfig struct {
	DBDriver           *string         `json:"db_driver"`
	DBHost             *string         `json:"db_host"`
	DBPort             *int            `json:"db_port"`
	DBUser             *string         `json:"db_user"`
	DBPassword         *string         `json:"db_password"`
	DBName             *string         `json:"db_name"`
	DBSSLMode          *string         `json:"db_sslmode"`
	SQLitePath         *string         `json:"sqlite_path"`
	ListenPort         *int            `json:"listen_port"`
	GRPCHealthAddr     *string         `json:"grpc_health_addr"`
	TokenSecret        *string         `json:"token_secret"`
	TokenValidity      *timex.Duration `json:"token_validity"`
	BcryptCost         *int            `json:"bcrypt_cost"`
	CORSAllowedOrigins []string        `json:"cors_allowed_origins"`
	LogLevel           *string         `json:"log_level"`
	LogFormat          *string         `json:"log_format"`
	S3RootUser         *string         `json:"s3_root_user"`
	S3RootPassword     *string         `json:"s3_root_password"`
	S3Bucket           *string         `json:"s3_bucket"`
	S3Region           *string         `json:"s3_region"`
	S3BaseEndpoint     *string         `json:"s3_base_endpoint"`
	S3PublicBaseURL    *string         `json:"s3_public_base_url"`
}

// parseJson overlays config with the JSON file named by -c/-config, if any.
// Unreadable files and invalid JSON panic.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	set(&config.DBDriver, c.DBDriver)
	set(&config.DBHost, c.DBHost)
	set(&config.DBPort, c.DBPort)
	set(&config.DBUser, c.DBUser)
	set(&config.DBPassword, c.DBPassword)
	set(&config.DBName, c.DBName)
	set(&config.DBSSLMode, c.DBSSLMode)
	set(&config.SQLitePath, c.SQLitePath)
	set(&config.ListenPort, c.ListenPort)
	set(&config.GRPCHealthAddr, c.GRPCHealthAddr)
	set(&config.TokenSecret, c.TokenSecret)
	if c.TokenValidity != nil {
		config.TokenValidity = c.TokenValidity.Duration
	}
	set(&config.BcryptCost, c.BcryptCost)
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	set(&config.LogLevel, c.LogLevel)
	set(&config.LogFormat, c.LogFormat)
	set(&config.S3RootUser, c.S3RootUser)
	set(&config.S3RootPassword, c.S3RootPassword)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&config.S3PublicBaseURL, c.S3PublicBaseURL)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
