package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/schedule"
)

func (a *App) Due(_ context.Context, _ []string) error {
	view := a.study.ViewDate()
	groups := a.study.Due()
	if len(groups) == 0 {
		fmt.Fprintf(a.out, "Nothing to study on %s\n", view)
		return nil
	}

	today := a.study.Today()
	fmt.Fprintf(a.out, "Study list for %s\n", view)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s (%d)\n", g.Category, len(g.Items))
		for _, it := range g.Items {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", it.ID, it.Name, dueMark(it, today))
		}
	}
	return w.Flush()
}

func dueMark(it models.Item, today calendar.Day) string {
	switch {
	case schedule.ReviewedToday(it, today):
		return "done"
	case it.NextReviewDate == nil:
		return "new"
	default:
		return ""
	}
}

func (a *App) Stats(_ context.Context, _ []string) error {
	s := a.study.Stats()
	w := tabwriter.NewWriter(a.out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "Active:\t%d\n", s.Active)
	fmt.Fprintf(w, "Due on %s:\t%d\n", a.study.ViewDate(), s.Due)
	fmt.Fprintf(w, "Reviewed today:\t%d\n", s.ReviewedToday)
	fmt.Fprintf(w, "Never reviewed:\t%d\n", s.New)
	return w.Flush()
}

func (a *App) Today(ctx context.Context, _ []string) error {
	return a.moveView(ctx, a.study.Today())
}

func (a *App) Next(ctx context.Context, _ []string) error {
	return a.moveView(ctx, a.study.ViewDate().AddDays(1))
}

func (a *App) Prev(ctx context.Context, _ []string) error {
	return a.moveView(ctx, a.study.ViewDate().AddDays(-1))
}

func (a *App) Goto(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("goto <YYYY-MM-DD>")
	}
	loc, err := a.config.Location()
	if err != nil {
		return err
	}
	day, err := calendar.ParseIn(args[0], loc)
	if err != nil {
		return err
	}
	return a.moveView(ctx, day)
}

// moveView changes the view date and prints its study list. Resets that
// were persisted are reported even when some others failed.
func (a *App) moveView(ctx context.Context, day calendar.Day) error {
	a.setView(ctx, day)
	return a.Due(ctx, nil)
}

// setView moves the view and reports how many items due today were reset.
// Reset failures are printed and do not stop the caller.
func (a *App) setView(ctx context.Context, day calendar.Day) {
	n, err := a.study.SetViewDate(ctx, day)
	if n > 0 {
		fmt.Fprintf(a.out, "%d item(s) due today were reset for review\n", n)
	}
	if err != nil {
		printlnFn("Error:", a.describeError(err))
	}
}

func (a *App) Reload(ctx context.Context, _ []string) error {
	if err := a.study.Load(ctx); err != nil {
		return err
	}
	if a.syncMode(ctx) {
		fmt.Fprintf(a.out, "Loaded %d item(s)\n", len(a.study.Items()))
		a.setView(ctx, a.study.Today())
	}
	return nil
}

// syncMode aligns the mode with where the collection came from and reports
// whether it is live.
func (a *App) syncMode(ctx context.Context) bool {
	if !a.study.Offline() {
		a.setMode(ctx, ModeOnline)
		return true
	}
	a.setMode(ctx, ModeOffline)
	fmt.Fprintf(a.out, "Server unreachable, showing data cached at %s (read-only)\n",
		a.study.SyncedAt().Local().Format(time.DateTime))
	return false
}
