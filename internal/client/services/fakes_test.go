package services

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/client/client"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/models"
)

var t0 = calendar.MustParse("2024-06-25")

// fakeClient is an in-memory server. failUpdate makes UpdateItem fail for
// the listed ids.
type fakeClient struct {
	items      []models.Item
	settings   models.Settings
	categories []string

	loadErr    error
	failUpdate map[string]error
	calls      []string
}

func newFakeClient(items ...models.Item) *fakeClient {
	return &fakeClient{
		items:      items,
		settings:   models.DefaultSettings(),
		categories: []string{common.DefaultCategory},
		failUpdate: map[string]error{},
	}
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(context.Context) error {
	f.calls = append(f.calls, "Ping")
	return f.loadErr
}

func (f *fakeClient) GetAllItems(context.Context) ([]models.Item, error) {
	f.calls = append(f.calls, "GetAllItems")
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := []models.Item{}
	for _, it := range f.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

func (f *fakeClient) CreateItem(_ context.Context, in models.Item) (models.Item, error) {
	f.calls = append(f.calls, "CreateItem")
	in.ID = "new"
	in.CreatedAt = t0
	in.ReviewDates = []calendar.Day{}
	if in.Category == "" {
		in.Category = common.DefaultCategory
	}
	f.items = append(f.items, in)
	return in, nil
}

func (f *fakeClient) UpdateItem(_ context.Context, id string, in models.Item) (models.Item, error) {
	f.calls = append(f.calls, "UpdateItem:"+id)
	if err, ok := f.failUpdate[id]; ok {
		return models.Item{}, err
	}
	k := models.FindItem(f.items, id)
	if k < 0 {
		return models.Item{}, common.ErrorNotFound
	}
	f.items[k] = in.Clone()
	return in, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, id string) error {
	f.calls = append(f.calls, "DeleteItem:"+id)
	k := models.FindItem(f.items, id)
	if k < 0 {
		return common.ErrorNotFound
	}
	f.items = slices.Delete(f.items, k, k+1)
	return nil
}

func (f *fakeClient) GetSettings(context.Context) (models.Settings, error) {
	f.calls = append(f.calls, "GetSettings")
	return f.settings, nil
}

func (f *fakeClient) UpdateSettings(_ context.Context, s models.Settings) (models.Settings, error) {
	f.calls = append(f.calls, "UpdateSettings")
	f.settings = s
	return s, nil
}

func (f *fakeClient) GetCategories(context.Context) ([]string, error) {
	f.calls = append(f.calls, "GetCategories")
	return slices.Clone(f.categories), nil
}

func (f *fakeClient) AddCategory(_ context.Context, name string) ([]string, error) {
	f.calls = append(f.calls, "AddCategory")
	f.categories = append(f.categories, name)
	return slices.Clone(f.categories), nil
}

func (f *fakeClient) RenameCategory(_ context.Context, oldName, newName string) ([]string, error) {
	f.calls = append(f.calls, "RenameCategory")
	for i, c := range f.categories {
		if c == oldName {
			f.categories[i] = newName
		}
	}
	return slices.Clone(f.categories), nil
}

func (f *fakeClient) DeleteCategory(_ context.Context, name string) ([]string, error) {
	f.calls = append(f.calls, "DeleteCategory")
	f.categories = slices.DeleteFunc(f.categories, func(c string) bool { return c == name })
	return slices.Clone(f.categories), nil
}

var _ client.Client = (*fakeClient)(nil)

type fakeCache struct {
	snap    *Snapshot
	saves   int
	puts    []string
	deletes []string
}

func (f *fakeCache) Load(context.Context) (*Snapshot, error) { return f.snap, nil }

func (f *fakeCache) Save(_ context.Context, s Snapshot) error {
	f.saves++
	f.snap = &s
	return nil
}

func (f *fakeCache) PutItem(_ context.Context, item models.Item) error {
	f.puts = append(f.puts, item.ID)
	return nil
}

func (f *fakeCache) DeleteItem(_ context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeCache) SaveSettings(context.Context, models.Settings) error { return nil }
func (f *fakeCache) SaveCategories(context.Context, []string) error      { return nil }

// newService returns a service whose clock reads 10:00 UTC on day.
func newService(t *testing.T, c *fakeClient, day calendar.Day) (*studyService, *fakeCache) {
	t.Helper()
	cache := &fakeCache{}
	s := NewStudyService(c, cache, logging.Nop(), time.UTC).(*studyService)
	s.now = func() time.Time { return day.Time(time.UTC).Add(10 * time.Hour) }
	s.viewDate = day
	return s, cache
}

func item(id string) models.Item {
	return models.Item{ID: id, Name: id, Category: common.DefaultCategory, CreatedAt: t0.AddDays(-10), ReviewDates: []calendar.Day{}}
}

func scheduledItem(id string, next calendar.Day, reviewed bool) models.Item {
	it := item(id)
	it.NextReviewDate = calendar.Ptr(next)
	it.IsReviewed = reviewed
	it.ReviewDates = []calendar.Day{next.AddDays(-3)}
	return it
}
