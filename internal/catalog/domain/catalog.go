package domain

import (
	"errors"
)

const Name = "catalog"

var ErrCatalogEntryAlreadyExists = errors.New("catalog entry already exists")
