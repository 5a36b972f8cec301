package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/flagx"
)

// GlobalFlags lists the flags owned by the config layer. The CLI strips
// them before parsing its own per-command flags.
var GlobalFlags = []string{"-a", "-d", "-s", "-t", "-l", "-b", "-g", "-e", "-c", "-config", "--config"}

// parseFlags overlays cfg with command-line flags.
//
// The view secret has no flag: command lines leak through ps and shell
// history. Set it via UNSPOKEN_VIEW_SECRET or the JSON file.
//
// Supported flags:
//
//	-a string   HTTP listen address (e.g. ":8501")
//	-d string   database DSN (SQLite path or postgres:// URL)
//	-s string   view pass signing key
//	-t int      view pass lifetime, minutes
//	-l string   log level
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-l", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SessionKey, "s", cfg.SessionKey, "view pass signing key")
	ttl := fs.Int("t", int(cfg.SessionTTL.Minutes()), "view pass lifetime (in minutes)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*ttl) * time.Minute
		}
	})
	return nil
}
