package sql

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const uniqueViolationCode pq.ErrorCode = "23505"

var ErrDuplicateKey = errors.New("duplicate key")

// WrapError marks unique constraint violations with ErrDuplicateKey, other errors are returned as is.
func WrapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pqErr.Constraint)
	}
	return err
}
