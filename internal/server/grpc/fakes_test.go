package grpc

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/services"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type fakeItems struct {
	services.Items
	listResp  []models.Item
	createIn  models.Item
	updateID  string
	deletedID string
	err       error
}

func (f *fakeItems) List(context.Context) ([]models.Item, error) {
	return f.listResp, f.err
}

func (f *fakeItems) Create(_ context.Context, in models.Item) (models.Item, error) {
	f.createIn = in
	if f.err != nil {
		return models.Item{}, f.err
	}
	in.ID = "new-id"
	return in, nil
}

func (f *fakeItems) Update(_ context.Context, id string, in models.Item) (models.Item, error) {
	f.updateID = id
	if f.err != nil {
		return models.Item{}, f.err
	}
	in.ID = id
	return in, nil
}

func (f *fakeItems) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type fakeSettings struct {
	settings models.Settings
	err      error
}

func (f *fakeSettings) Get(context.Context) (models.Settings, error) {
	return f.settings, f.err
}

func (f *fakeSettings) Update(_ context.Context, in models.Settings) (models.Settings, error) {
	if f.err != nil {
		return models.Settings{}, f.err
	}
	f.settings = in
	return in, nil
}

type fakeCategories struct {
	list []string
	err  error
}

func (f *fakeCategories) List(context.Context) ([]string, error) { return f.list, f.err }

func (f *fakeCategories) Add(_ context.Context, name string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.list = append(f.list, name)
	return f.list, nil
}

func (f *fakeCategories) Rename(_ context.Context, oldName, newName string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, c := range f.list {
		if c == oldName {
			f.list[i] = newName
		}
	}
	return f.list, nil
}

func (f *fakeCategories) Delete(_ context.Context, name string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []string{}
	for _, c := range f.list {
		if c != name {
			out = append(out, c)
		}
	}
	f.list = out
	return out, nil
}

type fakeData struct {
	data models.AppData
	err  error
}

func (f *fakeData) Export(context.Context) (models.AppData, error) { return f.data, f.err }
