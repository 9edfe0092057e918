package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/pinto/corpus"
	"github.com/robinvdvleuten/pinto/journal"
	"github.com/robinvdvleuten/pinto/telemetry"
	"github.com/robinvdvleuten/pinto/template"
)

const (
	journalFilename   = "transactions.beancount"
	templatesFilename = "templates.yaml"
)

// withTelemetry prepares the run context for a command. The returned report
// function is a no-op unless --telemetry was passed.
func withTelemetry(ctx *kong.Context, globals *Globals, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !globals.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)
	timer := collector.Start(name)

	return runCtx, func() {
		timer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr)
	}
}

// Workspace is the loaded state of one transaction directory: the journal
// with its scanned transactions, the corpus extracted from them, and the
// template store. It is loaded once per command invocation.
type Workspace struct {
	Dir          string
	Journal      *journal.File
	Text         string
	Transactions []journal.Transaction
	Corpus       *corpus.Corpus
	Templates    *template.Store
}

// openWorkspace resolves the transaction directory and loads everything a
// command needs. The directory comes from --directory or PINTO_DIR; without
// either the command cannot run.
func openWorkspace(ctx context.Context, globals *Globals) (*Workspace, error) {
	if globals.Directory == "" {
		return nil, commandErrorf("no transaction directory; pass --directory or set PINTO_DIR")
	}

	timer := telemetry.FromContext(ctx).Start("load workspace")
	defer timer.End()

	ws := &Workspace{
		Dir:     globals.Directory,
		Journal: journal.NewFile(filepath.Join(globals.Directory, journalFilename)),
	}

	readTimer := timer.Child("read journal")
	text, err := ws.Journal.Read()
	readTimer.End()
	if err != nil {
		return nil, err
	}
	ws.Text = text

	scanTimer := timer.Child("scan journal")
	txns, err := journal.Scan(text)
	scanTimer.End()
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", ws.Journal.Path, err)
	}
	ws.Transactions = txns
	ws.Corpus = corpus.Extract(txns)

	templatesTimer := timer.Child("load templates")
	store, err := template.Load(filepath.Join(globals.Directory, templatesFilename))
	templatesTimer.End()
	if err != nil {
		return nil, err
	}
	ws.Templates = store

	return ws, nil
}
