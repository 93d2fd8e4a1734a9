package categories

import "context"

type Repository interface {
	List(ctx context.Context) ([]string, error)
	Find(ctx context.Context, name string) (string, error)
	Add(ctx context.Context, name string) error
	Ensure(ctx context.Context, name string) error
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, name string) error
}
