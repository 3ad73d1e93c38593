package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/atomicstack/chopsticks/internal/app"
	"github.com/atomicstack/chopsticks/internal/runner"
	"github.com/atomicstack/chopsticks/internal/store"
)

// Version is reported by --version.
var Version = "dev"

// ErrExit reports that help or version output was printed and the program
// should stop without error.
var ErrExit = errors.New("exit requested")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envDataDir  = "CHOPSTICKS_DATA_DIR"
	envShell    = "CHOPSTICKS_SHELL"
	envNoMouse  = "CHOPSTICKS_NO_MOUSE"
	envLogFile  = "CHOPSTICKS_LOG_FILE"
	envLogLevel = "CHOPSTICKS_LOG_LEVEL"
	envTrace    = "CHOPSTICKS_TRACE"

	logFileName = "chopsticks.log"
)

// Load parses configuration from CLI arguments and environment variables.
func Load(ctx context.Context) (Config, error) {
	return LoadArgs(ctx, os.Args[1:], os.Stdout)
}

// LoadArgs parses args, falling back to the environment and then to defaults.
// Help and version output go to out.
func LoadArgs(ctx context.Context, args []string, out io.Writer) (Config, error) {
	var (
		cfg     Config
		noMouse bool
		ran     bool
	)

	cmd := &cli.Command{
		Name:      "chopsticks",
		Usage:     "store, fuzzy-search and run shell snippets",
		Version:   Version,
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "directory holding " + store.FileName,
				Sources:     cli.EnvVars(envDataDir),
				Value:       store.DefaultDataDir(),
				Destination: &cfg.App.DataDir,
			},
			&cli.StringFlag{
				Name:        "shell",
				Usage:       "shell used to run snippets as <shell> -c <cmd>",
				Sources:     cli.EnvVars(envShell),
				Value:       runner.DefaultShell,
				Destination: &cfg.App.Shell,
			},
			&cli.BoolFlag{
				Name:        "no-mouse",
				Usage:       "disable mouse capture (wheel selection)",
				Sources:     cli.EnvVars(envNoMouse),
				Destination: &noMouse,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/" + logFileName + ")",
				Sources:     cli.EnvVars(envLogFile),
				Destination: &cfg.Logging.FilePath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error)",
				Sources:     cli.EnvVars(envLogLevel),
				Value:       "info",
				Destination: &cfg.Logging.Level,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "enable structured trace logging",
				Sources:     cli.EnvVars(envTrace),
				Destination: &cfg.Logging.Trace,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ran = true
			cfg.Args = c.Args().Slice()
			return nil
		},
	}

	if err := cmd.Run(ctx, append([]string{"chopsticks"}, args...)); err != nil {
		return Config{}, err
	}
	if !ran {
		return Config{}, ErrExit
	}

	cfg.App.NoMouse = noMouse
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		cfg.Logging.FilePath = filepath.Join(cfg.App.DataDir, logFileName)
	}
	cfg.Flags = map[string]string{
		"dataDir":  cfg.App.DataDir,
		"shell":    cfg.App.Shell,
		"noMouse":  strconv.FormatBool(cfg.App.NoMouse),
		"logFile":  cfg.Logging.FilePath,
		"logLevel": cfg.Logging.Level,
		"trace":    strconv.FormatBool(cfg.Logging.Trace),
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad(ctx context.Context) Config {
	cfg, err := Load(ctx)
	if errors.Is(err, ErrExit) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return errors.New("data dir must not be empty")
	}
	if strings.TrimSpace(cfg.App.Shell) == "" {
		return errors.New("shell must not be empty")
	}
	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
