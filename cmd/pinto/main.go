package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/pinto/cli"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	app struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	cli.Version = Version
	cli.CommitSHA = CommitSHA

	ctx := kong.Parse(&app,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("pinto"),
		kong.Description("An interactive composer for plain-text ledger transactions."),
		kong.UsageOnError(),
		kong.Bind(&app.Globals),
	)

	err := ctx.Run()

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		_, _ = fmt.Fprintln(ctx.Stderr, cmdErr.Message)
		os.Exit(cmdErr.ExitCode)
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
