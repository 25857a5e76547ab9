package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type amountRepository struct {
	db pkgsql.Client
}

func NewAmountRepository(db pkgsql.Client) domain.AmountRepository {
	return amountRepository{db: db}
}

func (r amountRepository) NextID() domain.SavedAmountID {
	return domain.SavedAmountID{UUID: uuid.New()}
}

func (r amountRepository) Add(ctx context.Context, amount *domain.SavedAmount) error {
	query, args, err := sq.
		Insert("saved_amounts").
		Columns("id", "amount").
		Values(amount.ID.UUID, amount.Amount).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return wrapAddError(err)
}

func (r amountRepository) FindAll(ctx context.Context) ([]domain.SavedAmount, error) {
	query, args, err := sq.
		Select("id", "amount").
		From("saved_amounts").
		OrderBy("amount ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxSavedAmount
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SavedAmount, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.SavedAmount{
			ID:     domain.SavedAmountID{UUID: row.ID},
			Amount: row.Amount,
		})
	}

	return result, nil
}

type sqlxSavedAmount struct {
	ID     uuid.UUID `db:"id"`
	Amount float64   `db:"amount"`
}
