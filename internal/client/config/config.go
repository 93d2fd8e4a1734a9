package config

import "time"

// Config holds runtime settings for the Mnemos CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the server gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - CacheDSN: SQLite file holding the offline snapshot.
//   - TimeZone: IANA zone that defines "today"; empty means Local.
//   - Debug: verbose logging to stderr.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	CacheDSN            string
	TimeZone            string
	Debug               bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.CacheDSN = "mnemos.db"
	c.TimeZone = ""
	c.Debug = false
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones. args exclude the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
