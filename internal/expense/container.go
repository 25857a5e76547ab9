package expense

import (
	authapi "github.com/klwxsrx/farm-expense-tracker/internal/auth/api"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/app/service"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/infra"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/infra/auth"
	"github.com/klwxsrx/farm-expense-tracker/internal/expense/infra/http"
	"github.com/klwxsrx/farm-expense-tracker/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/farm-expense-tracker/pkg/http"
	"github.com/klwxsrx/farm-expense-tracker/pkg/lazy"
	"github.com/klwxsrx/farm-expense-tracker/pkg/sql"
)

type DependencyContainer struct {
	authGate                 lazy.Loader[pkghttp.HandlerOption]
	recordExpenseHandler     lazy.Loader[http.RecordExpenseHandler]
	listExpensesHandler      lazy.Loader[http.ListExpensesHandler]
	expenseTrendHandler      lazy.Loader[http.ExpenseTrendHandler]
	changeExpenseCropHandler lazy.Loader[http.ChangeExpenseCropHandler]
	deleteExpenseHandler     lazy.Loader[http.DeleteExpenseHandler]
}

func NewDependencyContainer(
	authGate lazy.Loader[pkghttp.HandlerOption],
	userService lazy.Loader[authapi.UserService],
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) DependencyContainer {
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)
	expenses := expenseServiceProvider(userService, sqlContainer)

	return DependencyContainer{
		authGate: authGate,
		recordExpenseHandler: lazy.New(func() (http.RecordExpenseHandler, error) {
			return http.NewRecordExpenseHandler(expenses.MustLoad()), nil
		}),
		listExpensesHandler: lazy.New(func() (http.ListExpensesHandler, error) {
			return http.NewListExpensesHandler(expenses.MustLoad()), nil
		}),
		expenseTrendHandler: lazy.New(func() (http.ExpenseTrendHandler, error) {
			return http.NewExpenseTrendHandler(expenses.MustLoad()), nil
		}),
		changeExpenseCropHandler: lazy.New(func() (http.ChangeExpenseCropHandler, error) {
			return http.NewChangeExpenseCropHandler(expenses.MustLoad()), nil
		}),
		deleteExpenseHandler: lazy.New(func() (http.DeleteExpenseHandler, error) {
			return http.NewDeleteExpenseHandler(expenses.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	authGate := c.authGate.MustLoad()

	registry.Register(c.recordExpenseHandler.MustLoad(), authGate)
	registry.Register(c.listExpensesHandler.MustLoad(), authGate)
	registry.Register(c.expenseTrendHandler.MustLoad(), authGate)
	registry.Register(c.changeExpenseCropHandler.MustLoad(), authGate)
	registry.Register(c.deleteExpenseHandler.MustLoad(), authGate)
}

func expenseServiceProvider(
	userService lazy.Loader[authapi.UserService],
	sqlContainer lazy.Loader[infra.SQLContainer],
) lazy.Loader[service.Expense] {
	return lazy.New(func() (service.Expense, error) {
		return service.NewExpense(
			sqlContainer.MustLoad().ExpenseRepo.MustLoad(),
			auth.NewUserDirectory(userService.MustLoad()),
		), nil
	})
}
