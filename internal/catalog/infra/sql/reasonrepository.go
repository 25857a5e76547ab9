package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/catalog/domain"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type reasonRepository struct {
	db pkgsql.Client
}

func NewReasonRepository(db pkgsql.Client) domain.ReasonRepository {
	return reasonRepository{db: db}
}

func (r reasonRepository) NextID() domain.ReasonID {
	return domain.ReasonID{UUID: uuid.New()}
}

func (r reasonRepository) Add(ctx context.Context, reason *domain.Reason) error {
	query, args, err := sq.
		Insert("reasons").
		Columns("id", "reason").
		Values(reason.ID.UUID, reason.Reason).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return wrapAddError(err)
}

func (r reasonRepository) FindAll(ctx context.Context) ([]domain.Reason, error) {
	query, args, err := sq.
		Select("id", "reason").
		From("reasons").
		OrderBy("reason ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxReason
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Reason, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.Reason{
			ID:     domain.ReasonID{UUID: row.ID},
			Reason: row.Reason,
		})
	}

	return result, nil
}

type sqlxReason struct {
	ID     uuid.UUID `db:"id"`
	Reason string    `db:"reason"`
}
