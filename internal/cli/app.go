package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/unspoken/internal/backup"
	"github.com/dmitrijs2005/unspoken/internal/config"
	"github.com/dmitrijs2005/unspoken/internal/logging"
	"github.com/dmitrijs2005/unspoken/internal/models"
	"github.com/dmitrijs2005/unspoken/internal/repositories/repomanager"
	"github.com/dmitrijs2005/unspoken/internal/services"
)

// ErrAccessDenied is returned by the all command on a wrong secret.
var ErrAccessDenied = errors.New("access denied")

// ErrUnknownCommand is returned for a command name the CLI does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Exporter uploads a snapshot of letters and returns where it went.
type Exporter interface {
	Export(ctx context.Context, items []models.Letter) (string, error)
}

type App struct {
	config   *config.Config
	letters  *services.LetterService
	gate     *services.AccessGate
	exporter Exporter
	logger   logging.Logger
	closer   io.Closer
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the store named by c and wires the CLI to the terminal.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewLogger(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	m, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:   c,
		letters:  services.NewLetterService(m.Letters()),
		gate:     services.NewAccessGate(c.ViewSecret),
		exporter: backup.NewS3Exporter(c),
		logger:   logger,
		closer:   m,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Run executes one command. args start with the command name; global
// configuration flags must already be stripped.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "write":
		return a.Write(ctx, rest)
	case "search":
		return a.Search(ctx, rest)
	case "stats":
		return a.Stats(ctx)
	case "random":
		return a.Random(ctx)
	case "all":
		return a.All(ctx)
	case "remind":
		return a.Remind(ctx)
	case "backup":
		return a.Backup(ctx)
	case "version":
		a.Version()
		return nil
	case "help", "-h", "-help", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: unspoken-cli [global flags] <command> [flags]

Commands:
  write  -feeling F [-message M]   save a letter (prompts for the message when omitted)
  search -feeling F                list letters tagged with F, newest first
  stats                            letters per feeling
  random                           show one random letter
  all                              list every letter (asks for the view secret)
  remind                           print a reminder when it is a good time to write
  backup                           upload a JSON snapshot of all letters to S3 (asks for the view secret)
  version                          print build information
  help                             show this message

Global flags: -d dsn, -c config.json, -l level, -b bucket, -g region, -e endpoint
The view secret is read from UNSPOKEN_VIEW_SECRET or the config file.
`)
}
