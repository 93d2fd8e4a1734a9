package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the server
//	-i int      online check interval in seconds
//	-f string   offline cache file
//	-z string   time zone (IANA name)
//	-v          verbose logging
//
// Args are filtered with flagx.FilterArgs so unrelated flags do not break
// parsing.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-f", "-z", "-v"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.CacheDSN, "f", cfg.CacheDSN, "offline cache file")
	fs.StringVar(&cfg.TimeZone, "z", cfg.TimeZone, "time zone (IANA name)")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
