package cli

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/client/config"
	"github.com/dmitrijs2005/mnemos/internal/client/services"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/schedule"
)

var t0 = calendar.MustParse("2024-06-25")

// fakeStudy is an in-memory StudyService that records mutating calls.
type fakeStudy struct {
	today      calendar.Day
	view       calendar.Day
	items      []models.Item
	settings   models.Settings
	categories []string

	offline     bool
	stayOffline bool
	loads       int
	loadErr     error
	pingErr     error
	err         error // returned by every mutation when set
	resets      int
	setViewErr  error

	calls      []string
	archived   bool
	lastGrade  models.Grade
	lastDays   int
	lastDraft  models.Item
	lastEdit   models.Item
	lastConfig models.Settings
}

var _ services.StudyService = (*fakeStudy)(nil)

func newFakeStudy() *fakeStudy {
	return &fakeStudy{
		today:      t0,
		view:       t0,
		settings:   models.DefaultSettings(),
		categories: []string{common.DefaultCategory, "Go"},
		items: []models.Item{
			{ID: "a1", Name: "Closures", Category: "Go", CreatedAt: t0.AddDays(-3)},
			{ID: "b2", Name: "Channels", Category: "Go", CreatedAt: t0.AddDays(-3),
				NextReviewDate: calendar.Ptr(t0.AddDays(2)), ReviewDates: []calendar.Day{t0.AddDays(-1)}},
		},
	}
}

func (f *fakeStudy) record(c string) error {
	f.calls = append(f.calls, c)
	return f.err
}

func (f *fakeStudy) Load(context.Context) error {
	f.loads++
	if f.loadErr != nil {
		return f.loadErr
	}
	f.offline = f.stayOffline
	return nil
}
func (f *fakeStudy) Ping(context.Context) error { return f.pingErr }
func (f *fakeStudy) Offline() bool              { return f.offline }
func (f *fakeStudy) SyncedAt() time.Time        { return time.Date(2024, 6, 24, 20, 0, 0, 0, time.UTC) }
func (f *fakeStudy) Today() calendar.Day        { return f.today }
func (f *fakeStudy) ViewDate() calendar.Day     { return f.view }

func (f *fakeStudy) SetViewDate(_ context.Context, day calendar.Day) (int, error) {
	f.calls = append(f.calls, "view "+day.String())
	f.view = day
	return f.resets, f.setViewErr
}

func (f *fakeStudy) Due() []schedule.CategoryGroup {
	return schedule.GroupByCategory(schedule.SelectDueItems(f.items, f.view), f.today)
}

func (f *fakeStudy) Stats() schedule.Stats { return schedule.Summary(f.items, f.view, f.today) }
func (f *fakeStudy) Items() []models.Item  { return slices.Clone(f.items) }

func (f *fakeStudy) Item(id string) (models.Item, error) {
	k := models.FindItem(f.items, id)
	if k < 0 {
		return models.Item{}, common.ErrorNotFound
	}
	return f.items[k].Clone(), nil
}

func (f *fakeStudy) Create(_ context.Context, draft models.Item) (models.Item, error) {
	f.lastDraft = draft
	if err := f.record("create"); err != nil {
		return models.Item{}, err
	}
	draft.ID = "new1"
	f.items = append(f.items, draft)
	return draft, nil
}

func (f *fakeStudy) Edit(_ context.Context, id string, changes models.Item) (models.Item, error) {
	f.lastEdit = changes
	if err := f.record("edit " + id); err != nil {
		return models.Item{}, err
	}
	return changes, nil
}

func (f *fakeStudy) Review(_ context.Context, id string, grade models.Grade, days int) (models.Item, error) {
	f.lastGrade, f.lastDays = grade, days
	if err := f.record("review " + id); err != nil {
		return models.Item{}, err
	}
	it, err := f.Item(id)
	if err != nil {
		return models.Item{}, err
	}
	return schedule.ApplyReview(it, grade, f.settings, f.today, days)
}

func (f *fakeStudy) Archive(_ context.Context, id string, confirmed bool) error {
	if !confirmed {
		return services.ErrNotConfirmed
	}
	f.archived = true
	return f.record("archive " + id)
}

func (f *fakeStudy) Delete(_ context.Context, id string) error { return f.record("delete " + id) }

func (f *fakeStudy) Settings() models.Settings { return f.settings }

func (f *fakeStudy) UpdateSettings(_ context.Context, s models.Settings) error {
	f.lastConfig = s
	if err := s.Validate(); err != nil {
		return err
	}
	return f.record("settings")
}

func (f *fakeStudy) Categories() []string { return slices.Clone(f.categories) }

func (f *fakeStudy) AddCategory(_ context.Context, name string) error {
	return f.record("add-category " + name)
}

func (f *fakeStudy) RenameCategory(_ context.Context, oldName, newName string) error {
	return f.record("rename-category " + oldName + " " + newName)
}

func (f *fakeStudy) DeleteCategory(_ context.Context, name string) error {
	return f.record("delete-category " + name)
}

// newTestApp builds an App reading input and writing everything, including
// REPL messages, into the returned buffer.
func newTestApp(t *testing.T, input string) (*App, *fakeStudy, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer

	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&out, a...) }
	t.Cleanup(func() { printlnFn = orig })

	study := newFakeStudy()
	app := &App{
		config: &config.Config{OnlineCheckInterval: time.Hour},
		study:  study,
		logger: logging.Nop(),
		reader: rdr(input),
		out:    &out,
	}
	return app, study, &out
}
