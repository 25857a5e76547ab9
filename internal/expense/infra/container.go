package infra

import (
	"github.com/klwxsrx/farm-expense-tracker/data/sql/expense"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/domain"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/infra/sql"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	pkgsql "github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type SQLContainer struct {
	ExpenseRepo lazy.Loader[domain.ExpenseRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().Register(expense.Migrations)

		return SQLContainer{
			ExpenseRepo: lazy.New(func() (domain.ExpenseRepository, error) {
				return sql.NewExpenseRepository(db.MustLoad()), nil
			}),
		}, nil
	})
}
