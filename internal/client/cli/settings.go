package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

func (a *App) Settings(_ context.Context, _ []string) error {
	s := a.study.Settings()
	fmt.Fprintf(a.out, "confident: %d days\nmedium:    %d days\nwtf:       %d days\n",
		s.ConfidentDays, s.MediumDays, s.WtfDays)
	return nil
}

func (a *App) SetSettings(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usageError("set-settings <confident> <medium> <wtf>")
	}
	var v [3]int
	for k, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number of days", common.ErrValidation, arg)
		}
		v[k] = n
	}

	s := models.Settings{ConfidentDays: v[0], MediumDays: v[1], WtfDays: v[2]}
	if err := a.study.UpdateSettings(ctx, s); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Settings saved")
	return nil
}

func (a *App) Categories(_ context.Context, _ []string) error {
	counts := make(map[string]int)
	for _, it := range a.study.Items() {
		counts[it.Category]++
	}
	for _, c := range a.study.Categories() {
		fmt.Fprintf(a.out, "%s (%d)\n", c, counts[c])
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("add-category <name>")
	}
	name := strings.Join(args, " ")
	if err := a.study.AddCategory(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s\n", name)
	return nil
}

func (a *App) RenameCategory(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("rename-category <old> <new>")
	}
	if err := a.study.RenameCategory(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Renamed %s to %s\n", args[0], args[1])
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("delete-category <name>")
	}
	name := strings.Join(args, " ")
	if err := a.study.DeleteCategory(ctx, name); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", name)
	return nil
}
