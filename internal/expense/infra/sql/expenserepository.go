package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

const expensesTable = "expenses"

type expenseRepository struct {
	db pkgsql.Client
}

func NewExpenseRepository(db pkgsql.Client) domain.ExpenseRepository {
	return expenseRepository{db: db}
}

func (r expenseRepository) NextID() domain.ExpenseID {
	return domain.ExpenseID{UUID: uuid.New()}
}

func (r expenseRepository) Add(ctx context.Context, expense *domain.Expense) error {
	query, args, err := sq.
		Insert(expensesTable).
		Columns("id", "expender", "reason", "amount", "crop").
		Values(expense.ID.UUID, expense.Expender, expense.Reason, expense.Amount, expense.Crop).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r expenseRepository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	query, args, err := sq.
		Select("id", "expender", "reason", "amount", "crop", "created_at").
		From(expensesTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxExpense
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r expenseRepository) UpdateCrop(ctx context.Context, id domain.ExpenseID, crop string) error {
	query, args, err := sq.
		Update(expensesTable).
		Set("crop", crop).
		Where(sq.Eq{"id": id.UUID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

func (r expenseRepository) Delete(ctx context.Context, id domain.ExpenseID) error {
	query, args, err := sq.
		Delete(expensesTable).
		Where(sq.Eq{"id": id.UUID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r expenseRepository) DailyTotals(ctx context.Context) ([]domain.DailyCropTotal, error) {
	query, args, err := sq.
		Select("crop", "DATE(created_at) AS date", "SUM(amount) AS total").
		From(expensesTable).
		GroupBy("crop", "DATE(created_at)").
		OrderBy("date ASC", "crop ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxDailyCropTotal
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DailyCropTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.DailyCropTotal{
			Crop:  row.Crop,
			Date:  row.Date,
			Total: row.Total,
		})
	}

	return result, nil
}

type (
	sqlxExpense struct {
		ID        uuid.UUID `db:"id"`
		Expender  string    `db:"expender"`
		Reason    string    `db:"reason"`
		Amount    float64   `db:"amount"`
		Crop      string    `db:"crop"`
		CreatedAt time.Time `db:"created_at"`
	}

	sqlxDailyCropTotal struct {
		Crop  string    `db:"crop"`
		Date  time.Time `db:"date"`
		Total float64   `db:"total"`
	}
)

func (e sqlxExpense) toDomain() domain.Expense {
	return domain.Expense{
		ID:        domain.ExpenseID{UUID: e.ID},
		Expender:  e.Expender,
		Reason:    e.Reason,
		Amount:    e.Amount,
		Crop:      e.Crop,
		CreatedAt: e.CreatedAt,
	}
}
