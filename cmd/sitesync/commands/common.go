package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitesync/internal/config"
	"git.home.luguber.info/inful/sitesync/internal/site"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Business profile path" default:"business.yaml"`
	Root    string           `short:"r" help:"Directory containing the managed HTML pages" default:"web"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Sync  SyncCmd  `cmd:"" default:"1" help:"Copy business facts from the profile into the site pages"`
	Check CheckCmd `cmd:"" help:"Report which pages are stale without writing anything"`
	Init  InitCmd  `cmd:"" help:"Initialize a starter business profile"`
	Watch WatchCmd `cmd:"" help:"Re-run sync whenever the business profile changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the slog level from the verbose flag and the
// SITESYNC_LOG_LEVEL environment variable; the flag wins.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("SITESYNC_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RunSync loads the profile and patches the managed pages. Shared by the
// sync and watch commands.
func RunSync(configPath, root string) error {
	profile, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	_, err = site.Sync(profile, root, time.Now(), os.Stdout)
	return err
}
