package sql

import (
	"context"
	"fmt"

	"github.com/klwxsrx/farm-expense-tracker/pkg/persistence"
)

type instanceID string

type txData struct {
	ClientTx
	instanceID instanceID
}

type transaction struct {
	id     instanceID
	client TxClient
}

func NewTransaction(client TxClient, instanceName string) persistence.Transaction {
	return &transaction{id: instanceID(instanceName), client: client}
}

// Execute runs fn within a transaction, joining the one already stored in ctx by the same instance.
func (t *transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx = txData{ClientTx: tx, instanceID: t.id}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
