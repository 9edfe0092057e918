package cli

import "github.com/robinvdvleuten/pinto/match"

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Directory     string `help:"Transaction directory. Falls back to the PINTO_DIR environment variable." short:"d" env:"PINTO_DIR" placeholder:"DIR"`
	Threshold     int    `help:"Minimum fuzzy match score (0-100)." default:"70"`
	MaxCandidates int    `help:"Maximum number of fuzzy match candidates offered." default:"5"`
	Telemetry     bool   `help:"Show timing telemetry for operations."`
}

func (g *Globals) matchConfig() match.Config {
	return match.Config{Threshold: g.Threshold, MaxCandidates: g.MaxCandidates}
}

type Commands struct {
	Globals

	Add        AddCmd        `cmd:"" help:"Compose a transaction and insert it into the journal."`
	Templates  TemplatesCmd  `cmd:"" help:"Search transaction templates."`
	Accounts   AccountsCmd   `cmd:"" help:"Search previously used accounts."`
	Payees     PayeesCmd     `cmd:"" help:"Search previously used payees."`
	CheckDates CheckDatesCmd `cmd:"" name:"check-dates" help:"Check that journal transactions are in date order."`
	Doctor     DoctorCmd     `cmd:"" help:"Doctor utilities for debugging the workspace."`
}
