package config

import (
	"flag"
	"os"
	"time"

	"github.com/askarpov/loginward/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-b string   credential store backend ("memory" or "postgres")
//	-d string   PostgreSQL DSN
//	-s string   session token HMAC secret key
//	-t int      session token validity, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components (notably the
// -c/-config flags owned by the JSON overlay).
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.Backend, "b", config.Backend, "credential store backend (memory|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Apply the minute-granular -t value only when the flag was actually
	// passed, so a finer-grained TTL from the JSON or env overlay survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
		}
	})
}
