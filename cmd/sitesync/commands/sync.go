package commands

import (
	"fmt"
)

// SyncCmd implements the 'sync' command, the default when no subcommand is
// given.
type SyncCmd struct{}

func (s *SyncCmd) Run(_ *Global, root *CLI) error {
	// Friendly user-facing messages go to stdout; logs go to stderr.
	fmt.Println("Starting sitesync")
	return RunSync(root.Config, root.Root)
}
