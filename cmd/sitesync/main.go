package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitesync/cmd/sitesync/commands"
	"git.home.luguber.info/inful/sitesync/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sitesync"),
		kong.Description("Sync business facts from business.yaml into the site's HTML pages."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
