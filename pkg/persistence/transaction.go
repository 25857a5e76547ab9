//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

// Transaction runs fn atomically, holding the named locks until it is committed or rolled back.
type Transaction interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
}

// ExecuteWith runs fn in tx and returns its result, the zero value is returned when the transaction fails.
func ExecuteWith[T any](
	ctx context.Context,
	tx Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := tx.Execute(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	}, lockNames...)
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
