package settings

import (
	"context"

	"github.com/dmitrijs2005/mnemos/internal/models"
)

type Repository interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
}
