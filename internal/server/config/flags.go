package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/animalcatalog/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-p int      HTTP listen port
//	-g string   gRPC health bind address ("" disables)
//	-d string   database driver: postgres | sqlite
//	-f string   SQLite database file
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-l string   log level
//	-b string   S3 bucket for image uploads
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// layers (-c, -env) do not trip the parser.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-p", "-g", "-d", "-f", "-s", "-t", "-l", "-b", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.ListenPort, "p", config.ListenPort, "HTTP listen port")
	fs.StringVar(&config.GRPCHealthAddr, "g", config.GRPCHealthAddr, "gRPC health address")
	fs.StringVar(&config.DBDriver, "d", config.DBDriver, "database driver (postgres|sqlite)")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "SQLite database file")
	fs.StringVar(&config.TokenSecret, "s", config.TokenSecret, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
		}
	})
}
