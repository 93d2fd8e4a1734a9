package config

import (
	"github.com/dmitrijs2005/mnemos/internal/flagx"
	"github.com/dmitrijs2005/mnemos/internal/timex"
)

// FileConfig is a DTO used exclusively for file decoding. Intervals may be
// written as strings like "3s" or as integer nanoseconds.
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	CacheDSN            string         `json:"cache_dsn" yaml:"cache_dsn"`
	TimeZone            string         `json:"time_zone" yaml:"time_zone"`
	Debug               bool           `json:"debug" yaml:"debug"`
}

// parseFile overlays Config with values from the file named by -c/-config.
// Keys absent from the file keep their current values. Panics on read or
// decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	fc := FileConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		OnlineCheckInterval: timex.Duration{Duration: cfg.OnlineCheckInterval},
		CacheDSN:            cfg.CacheDSN,
		TimeZone:            cfg.TimeZone,
		Debug:               cfg.Debug,
	}
	if err := flagx.DecodeFile(path, &fc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	cfg.CacheDSN = fc.CacheDSN
	cfg.TimeZone = fc.TimeZone
	cfg.Debug = fc.Debug
}
