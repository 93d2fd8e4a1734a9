package cli

import (
	"errors"

	"github.com/dmitrijs2005/mnemos/internal/client/client"
	"github.com/dmitrijs2005/mnemos/internal/client/services"
	"github.com/dmitrijs2005/mnemos/internal/common"
)

func (a *App) describeError(err error) string {
	switch {
	case errors.Is(err, services.ErrOffline):
		return "server unreachable, cached data is read-only"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, common.ErrorNotFound):
		return "no such item or category"
	default:
		return err.Error()
	}
}
