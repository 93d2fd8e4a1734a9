package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/client/services"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

func (a *App) Show(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show <id>")
	}
	it, err := a.study.Item(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", it.ID)
	fmt.Fprintf(w, "Name:\t%s\n", it.Name)
	fmt.Fprintf(w, "Category:\t%s\n", it.Category)
	fmt.Fprintf(w, "Created:\t%s\n", it.CreatedAt)
	if it.NextReviewDate != nil {
		fmt.Fprintf(w, "Next review:\t%s (%s)\n", *it.NextReviewDate, relDays(*it.NextReviewDate, a.study.Today()))
	} else {
		fmt.Fprintf(w, "Next review:\tnot scheduled\n")
	}
	fmt.Fprintf(w, "Reviewed:\t%t\n", it.IsReviewed)
	if len(it.ReviewDates) > 0 {
		dates := make([]string, len(it.ReviewDates))
		for k, d := range it.ReviewDates {
			dates[k] = d.String()
		}
		fmt.Fprintf(w, "History:\t%s\n", strings.Join(dates, ", "))
	}
	var attached []string
	if it.HasLink() {
		attached = append(attached, "link")
	}
	if it.HasImage() {
		attached = append(attached, "image")
	}
	if len(attached) > 0 {
		fmt.Fprintf(w, "Attachments:\t%s\n", strings.Join(attached, ", "))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	a.printContent("Problem", it.Problem)
	a.printContent("Answer", it.Answer)
	if it.SideNote != "" {
		fmt.Fprintf(a.out, "\nNote:\n%s\n", it.SideNote)
	}
	return nil
}

func (a *App) printContent(title string, c models.Content) {
	fmt.Fprintf(a.out, "\n%s:\n", title)
	if c.Text != "" {
		fmt.Fprintln(a.out, c.Text)
	}
	if c.URL != "" {
		fmt.Fprintf(a.out, "Link: %s\n", c.URL)
	}
	for _, img := range c.Images {
		fmt.Fprintf(a.out, "Image: %s\n", img)
	}
}

// relDays describes d relative to today.
func relDays(d, today calendar.Day) string {
	switch n := d.Sub(today); {
	case n == 0:
		return "today"
	case n == 1:
		return "tomorrow"
	case n == -1:
		return "yesterday"
	case n < 0:
		return fmt.Sprintf("%d days ago", -n)
	default:
		return fmt.Sprintf("in %d days", n)
	}
}

func (a *App) Review(ctx context.Context, args []string) error {
	const usage = usageError("review <id> <confident|medium|wtf|custom> [days]")
	if len(args) < 2 || len(args) > 3 {
		return usage
	}
	grade, err := models.ParseGrade(args[1])
	if err != nil {
		return err
	}

	// Without days a custom grade uses the wtf interval.
	days := 0
	if len(args) == 3 {
		if days, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("%w: days must be a number", common.ErrValidation)
		}
	}

	it, err := a.study.Review(ctx, args[0], grade, days)
	if err != nil {
		return err
	}
	next := *it.NextReviewDate
	fmt.Fprintf(a.out, "%s reviewed (%s), next review on %s (%s)\n", it.Name, grade, next, relDays(next, a.study.Today()))
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("add")
	}
	draft := models.Item{Category: common.DefaultCategory}
	if err := a.readItem(&draft); err != nil {
		return err
	}
	it, err := a.study.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s\n", it.ID)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("edit <id>")
	}
	it, err := a.study.Item(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Press Enter to keep the current value.")
	if err := a.readItem(&it); err != nil {
		return err
	}
	if _, err := a.study.Edit(ctx, it.ID, it); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s\n", it.ID)
	return nil
}

// readItem prompts for the content fields of it, offering the current
// values as defaults.
func (a *App) readItem(it *models.Item) error {
	var err error
	text := func(prompt, current string) string {
		if err != nil {
			return current
		}
		var v string
		v, err = GetTextWithDefault(a.reader, prompt, current, a.out)
		return v
	}
	block := func(prompt, current string) string {
		if err != nil {
			return current
		}
		var v string
		if v, err = GetMultiline(a.reader, prompt, a.out); err == nil && v == "" {
			v = current
		}
		return v
	}
	lines := func(prompt string, current []string) []string {
		if err != nil {
			return current
		}
		var v []string
		if v, err = GetLines(a.reader, prompt, a.out); err == nil && len(v) == 0 {
			v = current
		}
		return v
	}

	it.Name = text("Name", it.Name)
	it.Category = text("Category", it.Category)
	it.Problem.Text = block("Problem", it.Problem.Text)
	it.Problem.URL = text("Problem link", it.Problem.URL)
	it.Problem.Images = lines("Problem images, one per line", it.Problem.Images)
	it.Answer.Text = block("Answer", it.Answer.Text)
	it.Answer.URL = text("Answer link", it.Answer.URL)
	it.Answer.Images = lines("Answer images, one per line", it.Answer.Images)
	it.SideNote = text("Side note", it.SideNote)
	return err
}

func (a *App) Archive(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("archive <id>")
	}
	it, err := a.study.Item(args[0])
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Archive %q? It will disappear from every list.", it.Name), a.out)
	if err != nil {
		return err
	}
	err = a.study.Archive(ctx, it.ID, ok)
	if errors.Is(err, services.ErrNotConfirmed) {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Archived %s\n", it.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("delete <id>")
	}
	it, err := a.study.Item(args[0])
	if err != nil {
		return err
	}
	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete %q permanently?", it.Name), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.study.Delete(ctx, it.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", it.ID)
	return nil
}
