package commands

import (
	"fmt"
	"os"
	"time"

	"git.home.luguber.info/inful/sitesync/internal/config"
	"git.home.luguber.info/inful/sitesync/internal/site"
)

// CheckCmd implements the 'check' command: a dry run that exits non-zero
// when any managed page is stale. Useful as a CI guard.
type CheckCmd struct{}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	profile, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	summary, err := site.Check(profile, root.Root, time.Now(), os.Stdout)
	if err != nil {
		return err
	}
	if len(summary.Stale) > 0 {
		return fmt.Errorf("%d pages are stale", len(summary.Stale))
	}
	return nil
}
