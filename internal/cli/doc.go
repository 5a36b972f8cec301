// Package cli implements unspoken-cli, a terminal front end over the same
// letter store the web server uses.
//
// Usage:
//
//	unspoken-cli [global flags] <command> [command flags]
//
// Commands: write, search, stats, random, all, remind, backup, version, help.
// Global flags are the configuration flags (-d, -p, -c, ...); see package
// config.
package cli
