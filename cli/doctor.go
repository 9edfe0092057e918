package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/pinto/template"
)

// DoctorCmd provides doctor utilities for debugging the workspace.
type DoctorCmd struct {
	Templates DoctorTemplatesCmd `cmd:"" help:"Dump every template as parsed and as resolved."`
}

// DoctorTemplatesCmd resolves each template against today and dumps the
// outcome, making template mistakes visible without composing an entry.
type DoctorTemplatesCmd struct{}

func (cmd *DoctorTemplatesCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := withTelemetry(ctx, globals, "doctor templates")
	defer report()

	ws, err := openWorkspace(runCtx, globals)
	if err != nil {
		return err
	}

	today := time.Now()
	broken := 0

	for _, label := range ws.Templates.Labels() {
		tmpl, err := ws.Templates.Get(label)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(ctx.Stdout, successStyle.Render(label))

		seed, pending, err := template.Resolve(tmpl, today)
		if err != nil {
			printError(ctx.Stdout, err.Error())
			broken++
			continue
		}

		repr.Println(seed)
		if len(pending) > 0 {
			repr.Println(pending)
		}
	}

	if broken > 0 {
		return &CommandError{
			Message:  fmt.Sprintf("%d broken template(s)", broken),
			ExitCode: 1,
		}
	}

	printInfof(ctx.Stdout, "%d template(s) resolved", ws.Templates.Len())
	return nil
}
