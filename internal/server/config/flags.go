package config

import (
	"flag"

	"github.com/dmitrijs2005/mnemos/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-h string     HTTP bind address (e.g., ":8000")
//	-d string     PostgreSQL DSN
//	-w duration   how long to wait for the database at startup
//	-l string     log format: text, json or zap
//	-z string     time zone for server-assigned dates
//	-u string     S3 user
//	-p string     S3 password
//	-b string     S3 bucket; empty disables snapshots
//	-g string     S3 region
//	-e string     S3 endpoint (e.g., "http://127.0.0.1:9000")
//	-k string     snapshot object key
//
// Only these flags are parsed; flagx.FilterArgs drops everything else.
// It panics on malformed values.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-h", "-d", "-w", "-l", "-z", "-u", "-p", "-b", "-g", "-e", "-k"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "gRPC address and port")
	fs.StringVar(&config.HTTPAddr, "h", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.DatabaseWait, "w", config.DatabaseWait, "database wait timeout")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format (text|json|zap)")
	fs.StringVar(&config.TimeZone, "z", config.TimeZone, "time zone (IANA name)")
	fs.StringVar(&config.S3User, "u", config.S3User, "S3 user")
	fs.StringVar(&config.S3Password, "p", config.S3Password, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3Endpoint, "e", config.S3Endpoint, "S3 endpoint")
	fs.StringVar(&config.S3Key, "k", config.S3Key, "snapshot object key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
