package config

import (
	"github.com/dmitrijs2005/mnemos/internal/flagx"
	"github.com/dmitrijs2005/mnemos/internal/timex"
)

// FileConfig is the on-disk form of Config. Durations accept strings such
// as "30s" or integer nanoseconds.
type FileConfig struct {
	GRPCAddr     string         `json:"grpc_addr" yaml:"grpc_addr"`
	HTTPAddr     string         `json:"http_addr" yaml:"http_addr"`
	DatabaseDSN  string         `json:"database_dsn" yaml:"database_dsn"`
	DatabaseWait timex.Duration `json:"database_wait" yaml:"database_wait"`
	LogFormat    string         `json:"log_format" yaml:"log_format"`
	TimeZone     string         `json:"time_zone" yaml:"time_zone"`
	S3User       string         `json:"s3_user" yaml:"s3_user"`
	S3Password   string         `json:"s3_password" yaml:"s3_password"`
	S3Bucket     string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region     string         `json:"s3_region" yaml:"s3_region"`
	S3Endpoint   string         `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3Key        string         `json:"s3_key" yaml:"s3_key"`
}

// parseFile overlays values from the file named by -c/-config. Keys missing
// from the file keep their current values. It panics when the file cannot be
// read or decoded.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	c := FileConfig{
		GRPCAddr:     config.GRPCAddr,
		HTTPAddr:     config.HTTPAddr,
		DatabaseDSN:  config.DatabaseDSN,
		DatabaseWait: timex.Duration{Duration: config.DatabaseWait},
		LogFormat:    config.LogFormat,
		TimeZone:     config.TimeZone,
		S3User:       config.S3User,
		S3Password:   config.S3Password,
		S3Bucket:     config.S3Bucket,
		S3Region:     config.S3Region,
		S3Endpoint:   config.S3Endpoint,
		S3Key:        config.S3Key,
	}

	if err := flagx.DecodeFile(path, &c); err != nil {
		panic(err)
	}

	config.GRPCAddr = c.GRPCAddr
	config.HTTPAddr = c.HTTPAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.DatabaseWait = c.DatabaseWait.Duration
	config.LogFormat = c.LogFormat
	config.TimeZone = c.TimeZone
	config.S3User = c.S3User
	config.S3Password = c.S3Password
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3Endpoint = c.S3Endpoint
	config.S3Key = c.S3Key
}
