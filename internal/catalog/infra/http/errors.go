package http

import (
	"errors"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/app/service"
)

func isBadCatalogEntry(err error) bool {
	return errors.Is(err, service.ErrInvalidCatalogEntry) || errors.Is(err, service.ErrCatalogEntryAlreadyExists)
}
