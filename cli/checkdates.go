package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/pinto/journal"
)

type CheckDatesCmd struct {
	Watch bool `help:"Keep watching the journal and re-check on every change." short:"w"`
}

func (cmd *CheckDatesCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := withTelemetry(ctx, globals, "check-dates")
	defer report()

	ws, err := openWorkspace(runCtx, globals)
	if err != nil {
		return err
	}

	violations := checkDates(ctx, ws.Transactions)
	if !cmd.Watch {
		if violations > 0 {
			return &CommandError{
				Message:  fmt.Sprintf("%d transaction(s) out of date order", violations),
				ExitCode: 1,
			}
		}
		return nil
	}

	return cmd.watch(ctx, ws.Journal)
}

// watch re-checks the journal whenever it changes on disk, until
// interrupted. Events are debounced because editors save in several steps,
// and the path is re-added after each event to survive atomic replaces.
func (cmd *CheckDatesCmd) watch(ctx *kong.Context, file *journal.File) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(file.Path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file.Path, err)
	}

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(file.Path))

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	recheck := make(chan struct{}, 1)

	for {
		select {
		case <-signalCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case recheck <- struct{}{}:
				default:
				}
			})

		case <-recheck:
			// Re-add in case the file was replaced by rename.
			_ = watcher.Add(file.Path)

			text, err := file.Read()
			if err != nil {
				printError(ctx.Stderr, err.Error())
				continue
			}
			txns, err := journal.Scan(text)
			if err != nil {
				printError(ctx.Stderr, err.Error())
				continue
			}
			checkDates(ctx, txns)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

// checkDates reports every out-of-order transaction and returns how many
// there were.
func checkDates(ctx *kong.Context, txns []journal.Transaction) int {
	violations := journal.CheckOrder(txns)
	for _, violation := range violations {
		printError(ctx.Stdout, violation.String())
	}

	if len(violations) == 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("%d transaction(s) in date order", len(txns)))
	}

	return len(violations)
}
