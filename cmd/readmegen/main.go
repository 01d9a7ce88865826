package main

import (
	"log/slog"

	"git.home.luguber.info/inful/readmegen/cmd/readmegen/commands"
	"git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("readmegen"),
		kong.Description("Generate localized README files for an app package from its manifest, doc/ tree and translation catalogs."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	err := ctx.Run(global, &cli)

	adapter := errors.NewCLIErrorAdapter(cli.Verbose, nil)
	adapter.HandleError(err)
}
