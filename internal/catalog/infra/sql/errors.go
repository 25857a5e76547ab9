package sql

import (
	"errors"
	"fmt"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

func wrapAddError(err error) error {
	err = pkgsql.WrapError(err)
	if errors.Is(err, pkgsql.ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", domain.ErrCatalogEntryAlreadyExists, err)
	}

	return err
}
