// Package items stores the offline snapshot of the active items. Items are
// kept as JSON documents in server order.
package items

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/models"
)

type Repository interface {
	// List returns the cached items in their stored order.
	List(ctx context.Context) ([]models.Item, error)

	// Put inserts or replaces one item. New items go to the end.
	Put(ctx context.Context, item models.Item) error

	// Delete removes an item. Deleting a missing item is not an error.
	Delete(ctx context.Context, id string) error

	// Clear removes every cached item.
	Clear(ctx context.Context) error
}
