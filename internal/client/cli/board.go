package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/client/tracker"
)

// Stats prints the aggregates of the cached list.
func (a *App) Stats(ctx context.Context) error {
	fmt.Fprintln(a.out, renderStats(a.tracker.Stats()))
	return nil
}

// Board prints the cached list grouped into the selected lanes.
func (a *App) Board(ctx context.Context) error {
	lanes := a.tracker.Board(a.boardColumns(ctx))
	fmt.Fprintln(a.out, renderBoard(lanes))
	return nil
}

// Columns shows or changes the board lanes:
//
//	columns               list lanes, selected ones marked
//	columns reset         back to the defaults
//	columns k1 k2 ...     select exactly these lanes, in this order
func (a *App) Columns(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, renderColumnOptions(a.boardColumns(ctx)))
		return nil
	}

	if len(args) == 1 && strings.EqualFold(args[0], "reset") {
		if err := a.prefs.ResetBoardColumns(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Board columns reset to "+strings.Join(tracker.DefaultColumnKeys(), ", "))
		return nil
	}

	cols := tracker.SanitizeColumns(args)
	if len(cols) < len(args) {
		fmt.Fprintln(a.out, warnStyle.Render("Ignored unknown or repeated columns; valid keys: "+columnKeys()))
	}
	if err := a.prefs.SetBoardColumns(ctx, cols); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Board columns: "+strings.Join(cols, ", "))
	return nil
}

// boardColumns returns the saved lanes, or the defaults when none are saved.
func (a *App) boardColumns(ctx context.Context) []string {
	cols, ok, err := a.prefs.BoardColumns(ctx)
	if err != nil {
		a.log.Warn(ctx, "loading board columns", "error", err)
	}
	if err != nil || !ok {
		return tracker.DefaultColumnKeys()
	}
	return tracker.SanitizeColumns(cols)
}

func columnKeys() string {
	opts := tracker.ColumnOptions()
	keys := make([]string, len(opts))
	for i, c := range opts {
		keys[i] = c.Key
	}
	return strings.Join(keys, ", ")
}
